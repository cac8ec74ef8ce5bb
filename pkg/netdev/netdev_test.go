// Copyright (c) 2025, Hosttopo Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package netdev

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	dev Device
	err error
}

func (r fakeRecord) convert() (Device, error) {
	return r.dev, r.err
}

type fakeList struct {
	records []fakeRecord
	pos     int
	closes  int
}

func (l *fakeList) next() (record, bool) {
	if l.pos >= len(l.records) {
		return nil, false
	}
	r := l.records[l.pos]
	l.pos++
	return r, true
}

func (l *fakeList) close() error {
	l.closes++
	return nil
}

// withFakeList swaps the platform backend for a fake and restores it.
func withFakeList(t *testing.T, l *fakeList, err error) {
	t.Helper()
	orig := acquireList
	acquireList = func() (list, error) {
		if err != nil {
			return nil, err
		}
		return l, nil
	}
	t.Cleanup(func() { acquireList = orig })
}

func TestEnumerate(t *testing.T) {
	l := &fakeList{records: []fakeRecord{
		{dev: Device{Name: "eth0", Index: 2}},
		{dev: Device{Name: "lo", Index: 1, Flags: []string{"up", "loopback"}}},
	}}
	withFakeList(t, l, nil)

	devices, err := Enumerate()
	require.NoError(t, err)
	require.Len(t, devices, 2)

	// Traversal order is preserved as-is.
	assert.Equal(t, "eth0", devices[0].Name)
	assert.Equal(t, "lo", devices[1].Name)
	assert.Equal(t, 1, l.closes)
}

func TestEnumerateSkipsUnconvertibleRecords(t *testing.T) {
	l := &fakeList{records: []fakeRecord{
		{dev: Device{Name: "eth0"}},
		{err: fmt.Errorf("unsupported address family 17")},
		{dev: Device{Name: "eth1"}},
	}}
	withFakeList(t, l, nil)

	devices, err := Enumerate()
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "eth0", devices[0].Name)
	assert.Equal(t, "eth1", devices[1].Name)
}

func TestEnumerateReleasesOnFirstRecordFailure(t *testing.T) {
	l := &fakeList{records: []fakeRecord{
		{err: errors.New("malformed record")},
	}}
	withFakeList(t, l, nil)

	devices, err := Enumerate()
	require.NoError(t, err)
	assert.Empty(t, devices)
	assert.Equal(t, 1, l.closes, "list must be released exactly once")
}

func TestEnumerateAcquisitionFailure(t *testing.T) {
	cause := errors.New("operation not permitted")
	withFakeList(t, nil, cause)

	devices, err := Enumerate()
	require.Error(t, err)
	assert.Nil(t, devices)

	var enumErr *EnumerationError
	require.ErrorAs(t, err, &enumErr)
	assert.ErrorIs(t, err, cause)
}

func TestEnumerateNoDeduplication(t *testing.T) {
	// The result reflects exactly what the OS reported, duplicates included.
	l := &fakeList{records: []fakeRecord{
		{dev: Device{Name: "eth0", Index: 2}},
		{dev: Device{Name: "eth0", Index: 2}},
	}}
	withFakeList(t, l, nil)

	devices, err := Enumerate()
	require.NoError(t, err)
	assert.Len(t, devices, 2)
}

func TestEnumerateIndependentAcquisitions(t *testing.T) {
	acquisitions := 0
	orig := acquireList
	acquireList = func() (list, error) {
		acquisitions++
		return &fakeList{}, nil
	}
	t.Cleanup(func() { acquireList = orig })

	_, err := Enumerate()
	require.NoError(t, err)
	_, err = Enumerate()
	require.NoError(t, err)
	assert.Equal(t, 2, acquisitions)
}

func TestEnumerateIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	devices, err := Enumerate()
	if err != nil {
		// Restricted environments may refuse the enumeration syscall.
		t.Skipf("enumeration unavailable: %v", err)
	}

	for _, d := range devices {
		if d.Name == "" {
			t.Errorf("device %d has empty name", d.Index)
		}
		if d.Index < 0 {
			t.Errorf("device %s has negative index %d", d.Name, d.Index)
		}
		for _, a := range d.Addrs {
			if a.IP == "" {
				t.Errorf("device %s has empty address", d.Name)
			}
		}
	}
}
