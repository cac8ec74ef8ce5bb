// Package api provides the HTTP API layer for the hosttopo daemon.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application identity and logging before delegating
// lifecycle management.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/hosttopo/hosttopo/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/topology - Full host report
//   - GET /v1/cpu      - Effective logical CPU count
//   - GET /v1/devices  - Network device inventory
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/hosttopo/hosttopo/pkg/api.version=1.0.0'"
package api
