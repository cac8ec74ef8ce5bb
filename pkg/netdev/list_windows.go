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

//go:build windows

package netdev

import (
	"fmt"
	"net"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// IP_ADAPTER_ADDRESSES interface types and flags not exported by the
// windows package.
const (
	ifTypeSoftwareLoopback = 24
	ifOperStatusUp         = 1
	ipAdapterNoMulticast   = 0x00000010
)

// adapterList walks the intrusive linked list returned by
// GetAdaptersAddresses. The head of the list is the buffer itself; close
// releases the whole buffer, never the traversal position.
type adapterList struct {
	buf []byte
	cur *windows.IpAdapterAddresses
}

func newPlatformList() (list, error) {
	// Start at the size recommended by the API documentation and grow on
	// ERROR_BUFFER_OVERFLOW; the required length is written back through
	// the size pointer.
	size := uint32(15000)
	for range 3 {
		buf := make([]byte, size)
		head := (*windows.IpAdapterAddresses)(unsafe.Pointer(&buf[0]))

		err := windows.GetAdaptersAddresses(
			windows.AF_UNSPEC,
			windows.GAA_FLAG_INCLUDE_PREFIX,
			0,
			head,
			&size,
		)
		if err == nil {
			if size == 0 {
				return &adapterList{}, nil
			}
			return &adapterList{buf: buf, cur: head}, nil
		}
		if err != windows.ERROR_BUFFER_OVERFLOW || size <= uint32(len(buf)) {
			return nil, os.NewSyscallError("getadaptersaddresses", err)
		}
	}
	return nil, os.NewSyscallError("getadaptersaddresses", windows.ERROR_BUFFER_OVERFLOW)
}

func (l *adapterList) next() (record, bool) {
	if l.cur == nil {
		return nil, false
	}
	aa := l.cur
	l.cur = aa.Next
	return &adapterRecord{aa: aa}, true
}

// close releases the adapter buffer; records must not be converted after.
func (l *adapterList) close() error {
	l.buf = nil
	l.cur = nil
	return nil
}

// adapterRecord is one adapter entry, valid until the list is closed.
type adapterRecord struct {
	aa *windows.IpAdapterAddresses
}

// convert copies the adapter entry into an owned Device.
func (r *adapterRecord) convert() (Device, error) {
	aa := r.aa

	name := windows.UTF16PtrToString(aa.FriendlyName)
	if name == "" {
		return Device{}, fmt.Errorf("adapter %d carries no name", aa.IfIndex)
	}

	index := int(aa.IfIndex)
	if index == 0 {
		// IPv6-only adapters report a zero IPv4 index.
		index = int(aa.Ipv6IfIndex)
	}

	d := Device{
		Name:  name,
		Index: index,
		MTU:   int(aa.Mtu),
		Flags: flagNames(adapterFlags(aa)),
	}

	if n := int(aa.PhysicalAddressLength); n > 0 && n <= len(aa.PhysicalAddress) {
		d.HardwareAddr = net.HardwareAddr(aa.PhysicalAddress[:n]).String()
	}

	for ua := aa.FirstUnicastAddress; ua != nil; ua = ua.Next {
		ip := sockaddrIP(ua.Address.Sockaddr)
		if ip == nil {
			continue
		}
		d.Addrs = append(d.Addrs, Addr{
			IP:        ip.String(),
			PrefixLen: int(ua.OnLinkPrefixLength),
		})
	}

	return d, nil
}

// sockaddrIP extracts the IP from a raw socket address; unsupported
// families yield nil.
func sockaddrIP(sa *syscall.RawSockaddrAny) net.IP {
	if sa == nil {
		return nil
	}
	switch sa.Addr.Family {
	case windows.AF_INET:
		v4 := (*syscall.RawSockaddrInet4)(unsafe.Pointer(sa))
		return net.IPv4(v4.Addr[0], v4.Addr[1], v4.Addr[2], v4.Addr[3])
	case windows.AF_INET6:
		v6 := (*syscall.RawSockaddrInet6)(unsafe.Pointer(sa))
		ip := make(net.IP, net.IPv6len)
		copy(ip, v6.Addr[:])
		return ip
	}
	return nil
}

func adapterFlags(aa *windows.IpAdapterAddresses) net.Flags {
	var f net.Flags
	if aa.OperStatus == ifOperStatusUp {
		f |= net.FlagUp | net.FlagRunning
	}
	if aa.IfType == ifTypeSoftwareLoopback {
		f |= net.FlagLoopback
	}
	if aa.Flags&ipAdapterNoMulticast == 0 {
		f |= net.FlagMulticast
	}
	return f
}
