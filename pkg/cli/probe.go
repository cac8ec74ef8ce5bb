/*
Copyright © 2025 Hosttopo Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hosttopo/hosttopo/pkg/defaults"
	"github.com/hosttopo/hosttopo/pkg/probe"
)

func probeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "probe",
		EnableShellCompletion: true,
		Usage:                 "Capture a full host topology report",
		Description: `Capture a complete topology report for this host including:
  - Effective logical CPU count
  - Network device inventory

Collectors run in parallel. The report can be output in JSON, YAML,
or table format.`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for report collection",
				Value: defaults.ProbeTimeout,
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w, err := newWriterFromCmd(cmd)
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			prober := &probe.HostProber{
				Version:    version,
				Serializer: w,
			}

			return prober.Probe(ctx)
		},
	}
}
