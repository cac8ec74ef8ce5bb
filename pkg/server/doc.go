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

// Package server implements the HTTP API for host topology data.
//
// # Endpoints
//
//   - GET /v1/topology: Full host report (CPU count and network devices)
//   - GET /v1/cpu: Effective logical CPU count only
//   - GET /v1/devices: Network device inventory only
//   - GET /health: Liveness check
//   - GET /ready: Readiness check
//   - GET /metrics: Prometheus metrics
//
// # Middleware
//
// API endpoints are wrapped with a middleware chain providing, in order:
// Prometheus instrumentation, API version negotiation, request ID
// propagation, panic recovery, token bucket rate limiting, and request
// logging. System endpoints (/health, /ready, /metrics) bypass the chain.
//
// # Configuration
//
// Config fields can be overridden with environment variables:
//
//   - PORT: Listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown timeout
//   - RATE_LIMIT: Requests per second (burst is 2x)
//
// # Usage
//
//	cfg := server.NewConfig()
//	cfg.Version = version
//	if err := server.RunWithConfig(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// RunWithConfig blocks until SIGINT or SIGTERM, then shuts down
// gracefully within the configured timeout.
package server
