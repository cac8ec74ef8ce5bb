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

//go:build linux

package netdev

import (
	"encoding/binary"
	"fmt"
	"net"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// netlinkList walks the RTM_GETLINK dump in kernel traversal order.
// Addresses from the RTM_GETADDR dump are grouped by interface index when
// the snapshot is acquired, so both dumps belong to the same borrow.
type netlinkList struct {
	msgs  []syscall.NetlinkMessage
	addrs map[uint32][]Addr
	pos   int
}

func newPlatformList() (list, error) {
	linkTab, err := syscall.NetlinkRIB(unix.RTM_GETLINK, unix.AF_UNSPEC)
	if err != nil {
		return nil, os.NewSyscallError("netlinkrib", err)
	}
	msgs, err := syscall.ParseNetlinkMessage(linkTab)
	if err != nil {
		return nil, os.NewSyscallError("parsenetlinkmessage", err)
	}

	addrTab, err := syscall.NetlinkRIB(unix.RTM_GETADDR, unix.AF_UNSPEC)
	if err != nil {
		return nil, os.NewSyscallError("netlinkrib", err)
	}
	addrMsgs, err := syscall.ParseNetlinkMessage(addrTab)
	if err != nil {
		return nil, os.NewSyscallError("parsenetlinkmessage", err)
	}

	return &netlinkList{msgs: msgs, addrs: groupAddrs(addrMsgs)}, nil
}

func (l *netlinkList) next() (record, bool) {
	for l.pos < len(l.msgs) {
		m := l.msgs[l.pos]
		l.pos++

		switch m.Header.Type {
		case unix.NLMSG_DONE:
			return nil, false
		case unix.RTM_NEWLINK:
			return &netlinkRecord{msg: m, addrs: l.addrs}, true
		}
	}
	return nil, false
}

// close drops the dump buffers so no record can outlive the snapshot.
func (l *netlinkList) close() error {
	l.msgs = nil
	l.addrs = nil
	l.pos = 0
	return nil
}

// netlinkRecord is one RTM_NEWLINK message, valid until the list is closed.
type netlinkRecord struct {
	msg   syscall.NetlinkMessage
	addrs map[uint32][]Addr
}

// convert copies the link record into an owned Device.
func (r *netlinkRecord) convert() (Device, error) {
	if len(r.msg.Data) < unix.SizeofIfInfomsg {
		return Device{}, fmt.Errorf("link message truncated: %d bytes", len(r.msg.Data))
	}
	ifi := (*unix.IfInfomsg)(unsafe.Pointer(&r.msg.Data[0]))

	attrs, err := syscall.ParseNetlinkRouteAttr(&r.msg)
	if err != nil {
		return Device{}, fmt.Errorf("failed to parse link attributes: %w", err)
	}

	d := Device{
		Index: int(ifi.Index),
		Flags: flagNames(linkFlags(ifi.Flags)),
		Addrs: append([]Addr(nil), r.addrs[uint32(ifi.Index)]...),
	}

	for _, attr := range attrs {
		switch attr.Attr.Type {
		case unix.IFLA_IFNAME:
			d.Name = unix.ByteSliceToString(attr.Value)
		case unix.IFLA_MTU:
			if len(attr.Value) >= 4 {
				d.MTU = int(binary.NativeEndian.Uint32(attr.Value))
			}
		case unix.IFLA_ADDRESS:
			if hw := net.HardwareAddr(attr.Value); len(hw) > 0 {
				d.HardwareAddr = hw.String()
			}
		}
	}

	if d.Name == "" {
		return Device{}, fmt.Errorf("link record %d carries no name", ifi.Index)
	}
	return d, nil
}

// groupAddrs folds the RTM_GETADDR dump into per-interface address lists.
// Addresses of unsupported families are dropped.
func groupAddrs(msgs []syscall.NetlinkMessage) map[uint32][]Addr {
	out := make(map[uint32][]Addr)

loop:
	for i := range msgs {
		m := &msgs[i]
		switch m.Header.Type {
		case unix.NLMSG_DONE:
			break loop
		case unix.RTM_NEWADDR:
		default:
			continue
		}

		if len(m.Data) < unix.SizeofIfAddrmsg {
			continue
		}
		ifa := (*unix.IfAddrmsg)(unsafe.Pointer(&m.Data[0]))

		attrs, err := syscall.ParseNetlinkRouteAttr(m)
		if err != nil {
			continue
		}

		ip := addrIP(ifa.Family, attrs)
		if ip == nil {
			continue
		}

		out[ifa.Index] = append(out[ifa.Index], Addr{
			IP:        ip.String(),
			PrefixLen: int(ifa.Prefixlen),
		})
	}
	return out
}

// addrIP prefers IFA_LOCAL over IFA_ADDRESS; on point-to-point links the
// latter is the peer address.
func addrIP(family uint8, attrs []syscall.NetlinkRouteAttr) net.IP {
	var value []byte
	for _, attr := range attrs {
		switch attr.Attr.Type {
		case unix.IFA_LOCAL:
			value = attr.Value
		case unix.IFA_ADDRESS:
			if value == nil {
				value = attr.Value
			}
		}
	}

	switch family {
	case unix.AF_INET:
		if len(value) == net.IPv4len {
			return net.IPv4(value[0], value[1], value[2], value[3])
		}
	case unix.AF_INET6:
		if len(value) == net.IPv6len {
			ip := make(net.IP, net.IPv6len)
			copy(ip, value)
			return ip
		}
	}
	return nil
}

func linkFlags(raw uint32) net.Flags {
	var f net.Flags
	if raw&unix.IFF_UP != 0 {
		f |= net.FlagUp
	}
	if raw&unix.IFF_BROADCAST != 0 {
		f |= net.FlagBroadcast
	}
	if raw&unix.IFF_LOOPBACK != 0 {
		f |= net.FlagLoopback
	}
	if raw&unix.IFF_POINTOPOINT != 0 {
		f |= net.FlagPointToPoint
	}
	if raw&unix.IFF_MULTICAST != 0 {
		f |= net.FlagMulticast
	}
	if raw&unix.IFF_RUNNING != 0 {
		f |= net.FlagRunning
	}
	return f
}
