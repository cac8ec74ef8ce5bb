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

package probe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Probe collection metrics
	probeCollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hosttopo_probe_collection_duration_seconds",
			Help:    "Time taken to collect a complete host report",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)

	probeCollectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hosttopo_probe_collection_total",
			Help: "Total number of report collection attempts",
		},
		[]string{"status"}, // success or error
	)

	probeCollectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hosttopo_probe_collector_duration_seconds",
			Help:    "Time taken by individual collectors",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"collector"}, // metadata, cpu, netdev
	)

	probeCPUCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hosttopo_probe_cpus",
			Help: "Effective logical CPU count in the last collected report",
		},
	)

	probeDeviceCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hosttopo_probe_devices",
			Help: "Number of network devices in the last collected report",
		},
	)
)
