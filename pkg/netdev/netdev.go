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
	"fmt"
	"log/slog"
)

// EnumerationError reports a failure to begin interface enumeration.
// It is returned only when the initial OS call to acquire the interface
// snapshot fails; per-record conversion failures never surface.
type EnumerationError struct {
	Cause error
}

// Error implements the error interface.
func (e *EnumerationError) Error() string {
	return fmt.Sprintf("interface enumeration failed: %v", e.Cause)
}

// Unwrap returns the OS cause for errors.Is and errors.As support.
func (e *EnumerationError) Unwrap() error {
	return e.Cause
}

// list is an acquired snapshot of interface records. next yields records in
// traversal order until the list is exhausted. close releases the snapshot
// and must be called exactly once, with the whole list, regardless of how
// far the traversal advanced.
type list interface {
	next() (record, bool)
	close() error
}

// record is one raw interface record, valid only until the owning list is
// closed. convert copies it into an owned Device.
type record interface {
	convert() (Device, error)
}

// acquireList obtains the platform interface snapshot. Overridden in tests.
var acquireList = newPlatformList

// Enumerate returns a point-in-time snapshot of the host's network devices.
// It fails only if the OS refuses to produce the interface list; individual
// records that cannot be converted are skipped. The result preserves the
// OS traversal order with no deduplication and no sorting, and two calls in
// quick succession may legitimately differ.
func Enumerate() ([]Device, error) {
	l, err := acquireList()
	if err != nil {
		return nil, &EnumerationError{Cause: err}
	}
	defer func() {
		if cerr := l.close(); cerr != nil {
			slog.Debug("failed to release interface list", "error", cerr)
		}
	}()

	var devices []Device
	for {
		r, ok := l.next()
		if !ok {
			break
		}

		d, err := r.convert()
		if err != nil {
			slog.Debug("skipping interface record", "error", err)
			continue
		}
		devices = append(devices, d)
	}

	return devices, nil
}
