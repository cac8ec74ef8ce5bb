/*
Copyright © 2025 Hosttopo Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hosttopo/hosttopo/pkg/header"
	"github.com/hosttopo/hosttopo/pkg/netdev"
	"github.com/hosttopo/hosttopo/pkg/probe"
)

func devicesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "devices",
		EnableShellCompletion: true,
		Usage:                 "Enumerate network devices",
		Description: `Enumerate the network interfaces visible to this process including:
  - Interface name and index
  - MTU and hardware address
  - Interface flags (up, loopback, multicast, ...)
  - Assigned IP addresses with prefix lengths

Interfaces that cannot be converted are skipped. The inventory can be
output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			devices, err := netdev.Enumerate()
			if err != nil {
				return fmt.Errorf("failed to enumerate network devices: %w", err)
			}

			w, err := newWriterFromCmd(cmd)
			if err != nil {
				return err
			}
			defer w.Close()

			resp := struct {
				header.Header `json:",inline" yaml:",inline"`

				Devices []netdev.Device `json:"devices" yaml:"devices"`
			}{Devices: devices}
			resp.Init(header.KindDevices, probe.FullAPIVersion, version)

			return w.Serialize(ctx, resp)
		},
	}
}
