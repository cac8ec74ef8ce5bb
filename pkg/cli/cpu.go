/*
Copyright © 2025 Hosttopo Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hosttopo/hosttopo/pkg/cpu"
	"github.com/hosttopo/hosttopo/pkg/header"
	"github.com/hosttopo/hosttopo/pkg/probe"
)

func cpuCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cpu",
		EnableShellCompletion: true,
		Usage:                 "Report the effective logical CPU count",
		Description: `Report the number of logical CPUs actually available to this process.

The estimate reconciles, in order of precedence:
  - Cgroup CFS quota (ceil of quota/period)
  - Cpuset restriction cardinality
  - Scheduler affinity mask
  - Raw processor count

The count can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print only the count",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count := cpu.Count()

			if cmd.Bool("quiet") {
				fmt.Println(count)
				return nil
			}

			w, err := newWriterFromCmd(cmd)
			if err != nil {
				return err
			}
			defer w.Close()

			resp := struct {
				header.Header `json:",inline" yaml:",inline"`

				CPUs int `json:"cpus" yaml:"cpus"`
			}{CPUs: count}
			resp.Init(header.KindCPU, probe.FullAPIVersion, version)

			return w.Serialize(ctx, resp)
		},
	}
}
