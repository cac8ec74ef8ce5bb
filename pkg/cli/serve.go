/*
Copyright © 2025 Hosttopo Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hosttopo/hosttopo/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve host topology over HTTP",
		Description: `Start an HTTP server exposing the host topology API:

  GET /v1/topology - full report
  GET /v1/cpu      - effective logical CPU count
  GET /v1/devices  - network device inventory
  GET /health      - liveness
  GET /ready       - readiness
  GET /metrics     - Prometheus metrics

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port",
				Sources: cli.EnvVars("PORT"),
				Value:   8080,
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Listen address (defaults to all interfaces)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			cfg.Name = name
			cfg.Version = version
			cfg.Port = int(cmd.Int("port"))
			cfg.Address = cmd.String("address")

			return server.RunWithConfig(cfg)
		},
	}
}
