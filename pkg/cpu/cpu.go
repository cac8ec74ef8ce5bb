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

// Estimator estimates the number of logical cores usable by the current
// process. Implementations are stateless and safe for concurrent use;
// every call is an independent point-in-time snapshot.
type Estimator interface {
	Estimate() int
}

// defaultEstimator is selected once at process start based on the build
// platform; call sites never branch on GOOS themselves.
var defaultEstimator Estimator = newPlatformEstimator()

// Count returns the effective logical core count available to the current
// process. It never fails and always returns at least 1.
func Count() int {
	n := defaultEstimator.Estimate()
	if n < 1 {
		return 1
	}
	return n
}
