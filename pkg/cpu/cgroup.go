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

package cpu

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/hosttopo/hosttopo/pkg/parser"
)

var (
	cgroupQuotaPath  = "/sys/fs/cgroup/cpu/cpu.cfs_quota_us"
	cgroupPeriodPath = "/sys/fs/cgroup/cpu/cpu.cfs_period_us"
	cgroupCPUSetPath = "/sys/fs/cgroup/cpuset/cpuset.cpus"
)

// cgroupEstimator resolves the effective core count for a process that may
// be running inside a cgroup. Constraint sources are tried most specific
// first: CFS quota, then cpuset, then the unconstrained fallback. A missing,
// unreadable, or malformed constraint file is not an error; it means the
// constraint does not apply and the next tier is consulted.
type cgroupEstimator struct {
	quotaPath  string
	periodPath string
	cpusetPath string

	// fallback produces the raw logical processor count when no cgroup
	// constraint applies.
	fallback func() int
}

// Estimate implements Estimator.
func (e *cgroupEstimator) Estimate() int {
	if n, ok := e.quotaCores(); ok {
		return n
	}
	if n, ok := e.cpusetCores(); ok {
		return n
	}
	return e.fallback()
}

// quotaCores derives a core count from the CFS quota/period pair, rounded up
// to the nearest whole core. A quota of -1 means the cgroup is not
// constrained by quota.
func (e *cgroupEstimator) quotaCores() (int, bool) {
	p := parser.NewParser()

	quota, err := p.GetInt64(e.quotaPath)
	if err != nil {
		slog.Debug("no CFS quota constraint", "path", e.quotaPath, "error", err)
		return 0, false
	}
	if quota <= 0 {
		return 0, false
	}

	period, err := p.GetInt64(e.periodPath)
	if err != nil || period <= 0 {
		slog.Debug("no usable CFS period", "path", e.periodPath, "error", err)
		return 0, false
	}

	n := int((quota + period - 1) / period)
	if n < 1 {
		return 0, false
	}
	return n, true
}

// cpusetCores derives a core count from the cardinality of the cgroup
// cpuset. An empty set is treated as invalid.
func (e *cgroupEstimator) cpusetCores() (int, bool) {
	line, err := parser.NewParser().GetFirstLine(e.cpusetPath)
	if err != nil {
		slog.Debug("no cpuset constraint", "path", e.cpusetPath, "error", err)
		return 0, false
	}

	ids, err := ParseCPUSet(line)
	if err != nil {
		slog.Debug("malformed cpuset expression", "path", e.cpusetPath, "error", err)
		return 0, false
	}
	if len(ids) == 0 {
		return 0, false
	}
	return len(ids), true
}

// ParseCPUSet parses a cgroup cpuset expression into the sorted set of CPU
// IDs it enumerates. The expression is a comma-separated list of single IDs
// and inclusive ranges, e.g. "0-3,7" yields [0 1 2 3 7].
func ParseCPUSet(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	set := make(map[int]struct{})
	for tok := range strings.SplitSeq(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		lo, hi, found := strings.Cut(tok, "-")
		first, err := strconv.Atoi(lo)
		if err != nil || first < 0 {
			return nil, fmt.Errorf("invalid cpu id %q", tok)
		}

		last := first
		if found {
			last, err = strconv.Atoi(hi)
			if err != nil || last < first {
				return nil, fmt.Errorf("invalid cpu range %q", tok)
			}
		}

		for id := first; id <= last; id++ {
			set[id] = struct{}{}
		}
	}

	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
