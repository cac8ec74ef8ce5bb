/*
Copyright © 2025 Hosttopo Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the hosttopo command line interface.
//
// Commands:
//
//   - cpu: report the effective logical CPU count
//   - devices: enumerate network devices
//   - probe: capture a full topology report
//   - serve: expose the topology API over HTTP
//
// All data commands share --output and --format flags and serialize
// through pkg/serializer. Logging is configured before any command
// runs via the --log-level flag or the LOG_LEVEL environment variable.
package cli
