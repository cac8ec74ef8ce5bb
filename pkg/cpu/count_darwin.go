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

//go:build darwin

package cpu

import (
	"log/slog"
	"runtime"

	"golang.org/x/sys/unix"
)

func newPlatformEstimator() Estimator {
	return sysctlEstimator{}
}

// sysctlEstimator reads the logical CPU count from the hw.logicalcpu sysctl.
type sysctlEstimator struct{}

// Estimate implements Estimator.
func (sysctlEstimator) Estimate() int {
	n, err := unix.SysctlUint32("hw.logicalcpu")
	if err != nil || n == 0 {
		slog.Debug("hw.logicalcpu sysctl failed, using runtime count", "error", err)
		return runtime.NumCPU()
	}
	return int(n)
}
