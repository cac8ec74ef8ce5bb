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

//go:build !linux && !darwin && !windows

package cpu

import "runtime"

func newPlatformEstimator() Estimator {
	return runtimeEstimator{}
}

// runtimeEstimator reports the runtime count; platforms without container
// constraints or a topology table have no better source.
type runtimeEstimator struct{}

// Estimate implements Estimator.
func (runtimeEstimator) Estimate() int {
	return runtime.NumCPU()
}
