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

// Package cpu estimates the number of logical cores usable by the current
// process.
//
// The raw processor count reported by the OS is the wrong number inside a
// container: a process constrained by a cgroup CPU quota or a cpuset would
// oversubscribe its thread pools if it sized them from the machine total.
// This package reconciles the available sources of truth and returns the
// most specific constraint that applies.
//
// # Resolution Order (Linux)
//
// 1. CFS quota: ceil(cpu.cfs_quota_us / cpu.cfs_period_us), when both are
// positive. A quota of -1, a missing file, or malformed content means "not
// constrained by quota" and falls through.
//
// 2. Cpuset: the cardinality of the CPU set in cpuset.cpus, which supports
// single IDs and inclusive ranges ("0-3,7" is five CPUs). An empty or
// unreadable cpuset falls through.
//
// 3. Scheduling affinity: the number of CPUs in the process affinity mask,
// with runtime.NumCPU as the last resort.
//
// Quota is checked before cpuset because quota expresses willing concurrency
// while cpuset expresses a pinned core set; quota is the more specific
// constraint when both exist.
//
// # Other Platforms
//
// On Windows the count is derived from the logical processor information
// table: records tagged as processor cores contribute the set bits of their
// affinity masks, which counts hyperthreaded logical processors without
// double-counting caches or packages. On Darwin the hw.logicalcpu sysctl is
// used. Everywhere else the runtime count is returned as-is.
//
// # Usage
//
//	workers := cpu.Count()
//
// Count never fails and always returns at least 1. Each call is an
// independent snapshot; nothing is cached and no topology changes are
// observed.
package cpu
