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

//go:build !linux && !windows

package netdev

import (
	"fmt"
	"net"
)

// ifaceList wraps the stdlib interface table on platforms without a
// dedicated backend.
type ifaceList struct {
	ifaces []net.Interface
	pos    int
}

func newPlatformList() (list, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	return &ifaceList{ifaces: ifaces}, nil
}

func (l *ifaceList) next() (record, bool) {
	if l.pos >= len(l.ifaces) {
		return nil, false
	}
	r := &ifaceRecord{iface: l.ifaces[l.pos]}
	l.pos++
	return r, true
}

func (l *ifaceList) close() error {
	l.ifaces = nil
	l.pos = 0
	return nil
}

// ifaceRecord is one stdlib interface entry.
type ifaceRecord struct {
	iface net.Interface
}

// convert copies the interface entry into an owned Device. Address lookup
// is per interface here; a lookup failure fails the record, not the walk.
func (r *ifaceRecord) convert() (Device, error) {
	addrs, err := r.iface.Addrs()
	if err != nil {
		return Device{}, fmt.Errorf("failed to read addresses of %s: %w", r.iface.Name, err)
	}

	d := Device{
		Name:  r.iface.Name,
		Index: r.iface.Index,
		MTU:   r.iface.MTU,
		Flags: flagNames(r.iface.Flags),
	}
	if len(r.iface.HardwareAddr) > 0 {
		d.HardwareAddr = r.iface.HardwareAddr.String()
	}

	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		ones, _ := ipnet.Mask.Size()
		d.Addrs = append(d.Addrs, Addr{IP: ipnet.IP.String(), PrefixLen: ones})
	}

	return d, nil
}
