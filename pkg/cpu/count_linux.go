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

//go:build linux

package cpu

import (
	"log/slog"
	"runtime"

	"golang.org/x/sys/unix"
)

func newPlatformEstimator() Estimator {
	return &cgroupEstimator{
		quotaPath:  cgroupQuotaPath,
		periodPath: cgroupPeriodPath,
		cpusetPath: cgroupCPUSetPath,
		fallback:   affinityCount,
	}
}

// affinityCount returns the number of CPUs in the scheduling affinity mask
// of the current process, clamped by the runtime count. The runtime count is
// the fallback when the syscall fails.
func affinityCount() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		slog.Debug("sched_getaffinity failed, using runtime count", "error", err)
		return runtime.NumCPU()
	}

	n := set.Count()
	if n < 1 || n > runtime.NumCPU() {
		return runtime.NumCPU()
	}
	return n
}
