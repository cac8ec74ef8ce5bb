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

//go:build windows

package cpu

import (
	"errors"
	"log/slog"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                           = windows.NewLazySystemDLL("kernel32.dll")
	procGetLogicalProcessorInformation = kernel32.NewProc("GetLogicalProcessorInformation")
)

// systemLogicalProcessorInformation mirrors SYSTEM_LOGICAL_PROCESSOR_INFORMATION.
// The data field covers the 16-byte union (ProcessorCore, NumaNode, Cache,
// Reserved); its uint64 elements keep the struct aligned the way the kernel
// lays it out.
type systemLogicalProcessorInformation struct {
	processorMask uintptr
	relationship  int32
	data          [2]uint64
}

func newPlatformEstimator() Estimator {
	return topologyEstimator{}
}

// topologyEstimator counts logical processors from the per-core topology
// records instead of a flat processor count.
type topologyEstimator struct{}

// Estimate implements Estimator.
func (topologyEstimator) Estimate() int {
	records, err := logicalProcessorRecords()
	if err != nil {
		slog.Debug("GetLogicalProcessorInformation failed, using runtime count", "error", err)
		return runtime.NumCPU()
	}
	if n := coresFromRecords(records); n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// logicalProcessorRecords fetches the logical processor information table
// with the documented two-call sequence: query the required buffer length,
// allocate, then issue the call again with the sized buffer.
func logicalProcessorRecords() ([]processorRecord, error) {
	var length uint32
	ret, _, err := procGetLogicalProcessorInformation.Call(0, uintptr(unsafe.Pointer(&length)))
	if ret != 0 {
		return nil, nil
	}
	if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
		return nil, err
	}

	recSize := uint32(unsafe.Sizeof(systemLogicalProcessorInformation{}))
	if length == 0 || length%recSize != 0 {
		return nil, nil
	}

	buf := make([]systemLogicalProcessorInformation, length/recSize)
	ret, _, err = procGetLogicalProcessorInformation.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&length)),
	)
	if ret == 0 {
		return nil, err
	}

	records := make([]processorRecord, 0, len(buf))
	for _, info := range buf {
		records = append(records, processorRecord{
			Relationship: info.relationship,
			Mask:         uint64(info.processorMask),
		})
	}
	return records, nil
}
