package api

import (
	"log/slog"

	"github.com/hosttopo/hosttopo/pkg/logging"
	"github.com/hosttopo/hosttopo/pkg/server"
)

const (
	name           = "hosttopod"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/hosttopo/hosttopo/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve configures logging and runs the topology API server until shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = version

	if err := server.RunWithConfig(cfg); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
