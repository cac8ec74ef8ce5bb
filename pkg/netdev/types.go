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

package netdev

import (
	"net"
	"strings"
)

// Device is an owned, process-memory description of one network interface,
// independent of OS memory lifetime once constructed.
type Device struct {
	Name         string `json:"name" yaml:"name"`
	Index        int    `json:"index" yaml:"index"`
	MTU          int    `json:"mtu,omitempty" yaml:"mtu,omitempty"`
	HardwareAddr string `json:"hardwareAddr,omitempty" yaml:"hardwareAddr,omitempty"`

	// Flags holds the interface state bits by name (up, loopback,
	// broadcast, pointtopoint, multicast, running).
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`

	// Addrs holds the addresses assigned to the device in the order the
	// OS reported them.
	Addrs []Addr `json:"addrs,omitempty" yaml:"addrs,omitempty"`
}

// Addr is one address assigned to a device.
type Addr struct {
	IP        string `json:"ip" yaml:"ip"`
	PrefixLen int    `json:"prefixLen" yaml:"prefixLen"`
}

// flagNames converts interface flag bits into their names.
func flagNames(f net.Flags) []string {
	s := f.String()
	if s == "0" || s == "" {
		return nil
	}
	return strings.Split(s, "|")
}
