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
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// newAddrMessage builds an RTM_NEWADDR message carrying one route attribute,
// laid out the way the kernel emits it: ifaddrmsg header followed by a
// 4-byte-aligned rtattr.
func newAddrMessage(index uint32, family, prefixLen uint8, attrType uint16, value []byte) syscall.NetlinkMessage {
	data := make([]byte, unix.SizeofIfAddrmsg)
	data[0] = family
	data[1] = prefixLen
	binary.NativeEndian.PutUint32(data[4:8], index)

	attrLen := unix.SizeofRtAttr + len(value)
	attr := make([]byte, (attrLen+unix.RTA_ALIGNTO-1)&^(unix.RTA_ALIGNTO-1))
	binary.NativeEndian.PutUint16(attr[0:2], uint16(attrLen))
	binary.NativeEndian.PutUint16(attr[2:4], attrType)
	copy(attr[unix.SizeofRtAttr:], value)
	data = append(data, attr...)

	return syscall.NetlinkMessage{
		Header: syscall.NlMsghdr{
			Len:  uint32(syscall.NLMSG_HDRLEN + len(data)),
			Type: unix.RTM_NEWADDR,
		},
		Data: data,
	}
}

func TestGroupAddrs(t *testing.T) {
	msgs := []syscall.NetlinkMessage{
		newAddrMessage(2, unix.AF_INET, 24, unix.IFA_LOCAL, []byte{192, 168, 1, 10}),
		newAddrMessage(1, unix.AF_INET, 8, unix.IFA_ADDRESS, []byte{127, 0, 0, 1}),
		// Unsupported family is dropped.
		newAddrMessage(2, unix.AF_PACKET, 0, unix.IFA_ADDRESS, []byte{1, 2, 3, 4}),
	}

	grouped := groupAddrs(msgs)
	require.Len(t, grouped, 2)

	require.Len(t, grouped[2], 1)
	assert.Equal(t, Addr{IP: "192.168.1.10", PrefixLen: 24}, grouped[2][0])

	require.Len(t, grouped[1], 1)
	assert.Equal(t, Addr{IP: "127.0.0.1", PrefixLen: 8}, grouped[1][0])
}

func TestGroupAddrsStopsAtDone(t *testing.T) {
	msgs := []syscall.NetlinkMessage{
		newAddrMessage(1, unix.AF_INET, 8, unix.IFA_LOCAL, []byte{127, 0, 0, 1}),
		{Header: syscall.NlMsghdr{Type: unix.NLMSG_DONE}},
		newAddrMessage(2, unix.AF_INET, 24, unix.IFA_LOCAL, []byte{10, 0, 0, 1}),
	}

	grouped := groupAddrs(msgs)
	require.Len(t, grouped, 1)
	assert.Contains(t, grouped, uint32(1))
}

func TestAddrIP(t *testing.T) {
	v6 := net.ParseIP("fe80::1").To16()

	tests := []struct {
		name     string
		family   uint8
		attrs    []syscall.NetlinkRouteAttr
		expected string
	}{
		{
			name:   "ipv4 local",
			family: unix.AF_INET,
			attrs: []syscall.NetlinkRouteAttr{
				{Attr: syscall.RtAttr{Type: unix.IFA_LOCAL}, Value: []byte{10, 0, 0, 1}},
			},
			expected: "10.0.0.1",
		},
		{
			name:   "local preferred over peer address",
			family: unix.AF_INET,
			attrs: []syscall.NetlinkRouteAttr{
				{Attr: syscall.RtAttr{Type: unix.IFA_ADDRESS}, Value: []byte{10, 0, 0, 2}},
				{Attr: syscall.RtAttr{Type: unix.IFA_LOCAL}, Value: []byte{10, 0, 0, 1}},
			},
			expected: "10.0.0.1",
		},
		{
			name:   "ipv6 address",
			family: unix.AF_INET6,
			attrs: []syscall.NetlinkRouteAttr{
				{Attr: syscall.RtAttr{Type: unix.IFA_ADDRESS}, Value: v6},
			},
			expected: "fe80::1",
		},
		{
			name:   "truncated value",
			family: unix.AF_INET,
			attrs: []syscall.NetlinkRouteAttr{
				{Attr: syscall.RtAttr{Type: unix.IFA_LOCAL}, Value: []byte{10, 0}},
			},
			expected: "",
		},
		{
			name:     "no address attributes",
			family:   unix.AF_INET,
			attrs:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := addrIP(tt.family, tt.attrs)
			if tt.expected == "" {
				assert.Nil(t, ip)
				return
			}
			require.NotNil(t, ip)
			assert.Equal(t, tt.expected, ip.String())
		})
	}
}

func TestLinkFlags(t *testing.T) {
	f := linkFlags(unix.IFF_UP | unix.IFF_BROADCAST | unix.IFF_MULTICAST | unix.IFF_RUNNING)
	assert.Equal(t, net.FlagUp|net.FlagBroadcast|net.FlagMulticast|net.FlagRunning, f)

	assert.Equal(t, net.FlagLoopback, linkFlags(unix.IFF_LOOPBACK))
	assert.Equal(t, net.Flags(0), linkFlags(0))
}
