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

// Package probe collects host topology reports.
//
// # Overview
//
// The probe package orchestrates parallel collection of the effective
// logical CPU count and the network device inventory, and produces a
// structured report that can be serialized for analysis or served over
// the HTTP API.
//
// # Usage
//
// Basic report with defaults (stdout JSON):
//
//	prober := &probe.HostProber{
//	    Version: "v1.0.0",
//	}
//
//	ctx := context.Background()
//	if err := prober.Probe(ctx); err != nil {
//	    log.Fatalf("probe failed: %v", err)
//	}
//
// Custom output serializer:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "report.yaml")
//	defer w.Close()
//
//	prober := &probe.HostProber{
//	    Version:    "v1.0.0",
//	    Serializer: w,
//	}
//
//	if err := prober.Probe(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Parallel Collection
//
// HostProber runs all collectors concurrently using errgroup:
//  1. Metadata collection (hostname, version)
//  2. Effective CPU count (quota, affinity, topology aware)
//  3. Network device enumeration
//
// CPU estimation cannot fail. If device enumeration fails, the probe
// returns an error and no report is emitted.
//
// # Observability
//
// The prober exports Prometheus metrics:
//   - hosttopo_probe_collection_duration_seconds: Total time to collect a report
//   - hosttopo_probe_collector_duration_seconds{collector}: Per-collector timing
//   - hosttopo_probe_cpus, hosttopo_probe_devices: Last observed values
package probe
