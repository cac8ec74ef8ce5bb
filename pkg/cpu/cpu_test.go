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
	"runtime"
	"testing"
)

func TestCountAtLeastOne(t *testing.T) {
	if got := Count(); got < 1 {
		t.Errorf("Count() = %d, want >= 1", got)
	}
}

func TestCountClampsEstimator(t *testing.T) {
	orig := defaultEstimator
	t.Cleanup(func() { defaultEstimator = orig })

	for _, bad := range []int{0, -1, -100} {
		defaultEstimator = estimatorFunc(func() int { return bad })
		if got := Count(); got != 1 {
			t.Errorf("Count() with estimate %d = %d, want 1", bad, got)
		}
	}

	defaultEstimator = estimatorFunc(func() int { return 16 })
	if got := Count(); got != 16 {
		t.Errorf("Count() = %d, want 16", got)
	}
}

func TestPlatformEstimatorSane(t *testing.T) {
	got := newPlatformEstimator().Estimate()
	if got < 1 {
		t.Errorf("platform estimate = %d, want >= 1", got)
	}
	if got > runtime.NumCPU() {
		t.Logf("platform estimate %d exceeds runtime count %d", got, runtime.NumCPU())
	}
}

type estimatorFunc func() int

func (f estimatorFunc) Estimate() int { return f() }
