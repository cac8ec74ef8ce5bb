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

package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/hosttopo/hosttopo/pkg/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSerializer records the last value passed to Serialize.
type captureSerializer struct {
	data any
	err  error
}

func (c *captureSerializer) Serialize(_ context.Context, data any) error {
	c.data = data
	return c.err
}

func TestNewReport(t *testing.T) {
	report := NewReport()

	require.NotNil(t, report)
	assert.NotNil(t, report.Devices)
	assert.Empty(t, report.Devices)
}

func TestHostProber_Probe(t *testing.T) {
	cs := &captureSerializer{}
	prober := &HostProber{
		Version:    "1.0.0",
		Serializer: cs,
	}

	err := prober.Probe(t.Context())
	require.NoError(t, err)

	report, ok := cs.data.(*Report)
	require.True(t, ok, "serialized value should be a *Report")

	assert.Equal(t, header.KindReport, report.Kind)
	assert.Equal(t, FullAPIVersion, report.APIVersion)
	assert.Equal(t, "1.0.0", report.Metadata["version"])
	assert.NotEmpty(t, report.Metadata["id"])
	assert.NotEmpty(t, report.Metadata["timestamp"])
	assert.NotEmpty(t, report.Metadata["source-host"])
	assert.GreaterOrEqual(t, report.CPUs, 1)
}

func TestHostProber_Collect(t *testing.T) {
	prober := &HostProber{Version: "1.0.0"}

	report, err := prober.Collect(t.Context())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.GreaterOrEqual(t, report.CPUs, 1)
	assert.NotNil(t, report.Devices)
}

func TestHostProber_CancelledContext(t *testing.T) {
	prober := &HostProber{Version: "1.0.0"}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	report, err := prober.Collect(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}

func TestHostProber_ExpiredDeadline(t *testing.T) {
	cs := &captureSerializer{}
	prober := &HostProber{Version: "1.0.0", Serializer: cs}

	ctx, cancel := context.WithTimeout(t.Context(), 0)
	defer cancel()

	err := prober.Probe(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, cs.data, "nothing should be serialized after a missed deadline")
}

func TestHostProber_SerializerError(t *testing.T) {
	want := errors.New("sink closed")
	prober := &HostProber{
		Version:    "1.0.0",
		Serializer: &captureSerializer{err: want},
	}

	err := prober.Probe(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, want)
}

func TestHostProber_DefaultSerializer(t *testing.T) {
	prober := &HostProber{Version: "1.0.0"}

	err := prober.Probe(t.Context())
	require.NoError(t, err)

	// The fallback serializer is per-call; concurrent probes must not race
	// on the field.
	assert.Nil(t, prober.Serializer)
}
