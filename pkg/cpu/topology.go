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

import "math/bits"

// Logical processor relationship tags as reported by the Windows topology
// table. Only processor-core records contribute to the logical core count.
const (
	relationProcessorCore    = 0
	relationNumaNode         = 1
	relationCache            = 2
	relationProcessorPackage = 3
)

// processorRecord is a platform-neutral projection of one logical processor
// information record: the relationship tag plus the processor affinity mask.
type processorRecord struct {
	Relationship int32
	Mask         uint64
}

// coresFromRecords sums the set bits of every processor-core record's
// affinity mask. Each set bit identifies one logical processor, so
// hyperthreads are counted exactly once; cache, NUMA node, and package
// records describe the same processors at a different granularity and are
// excluded.
func coresFromRecords(records []processorRecord) int {
	n := 0
	for _, r := range records {
		if r.Relationship != relationProcessorCore {
			continue
		}
		n += bits.OnesCount64(r.Mask)
	}
	return n
}
