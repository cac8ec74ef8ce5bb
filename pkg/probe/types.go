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

package probe

import (
	"context"

	"github.com/hosttopo/hosttopo/pkg/header"
	"github.com/hosttopo/hosttopo/pkg/netdev"
)

// FullAPIVersion is the API version stamped on every report header.
const FullAPIVersion = "topology.hosttopo.io/v1"

// Prober defines the interface for collecting host topology reports.
// Implementations gather the effective CPU count and network device
// inventory and serialize the results.
type Prober interface {
	Probe(ctx context.Context) error
}

// NewReport creates a new Report instance with an initialized Devices slice.
func NewReport() *Report {
	return &Report{
		Devices: make([]netdev.Device, 0),
	}
}

// Report represents a collected topology report from a host.
// It contains metadata, the effective logical CPU count, and the
// enumerated network devices.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// CPUs is the effective logical CPU count for this host.
	CPUs int `json:"cpus" yaml:"cpus"`

	// Devices contains the enumerated network devices.
	Devices []netdev.Device `json:"devices" yaml:"devices"`
}
