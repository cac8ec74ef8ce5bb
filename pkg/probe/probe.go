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
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/hosttopo/hosttopo/pkg/cpu"
	hterrors "github.com/hosttopo/hosttopo/pkg/errors"
	"github.com/hosttopo/hosttopo/pkg/header"
	"github.com/hosttopo/hosttopo/pkg/netdev"
	"github.com/hosttopo/hosttopo/pkg/serializer"

	"golang.org/x/sync/errgroup"
)

// HostProber collects topology data from the current host.
// It coordinates the CPU and network device collectors in parallel,
// then serializes the resulting report.
type HostProber struct {
	// Version is the prober version.
	Version string

	// Serializer is the serializer to use for output. If nil, a default stdout JSON serializer is used.
	Serializer serializer.Serializer
}

// Probe collects the host topology and serializes the report.
// Collectors run concurrently using errgroup. If device enumeration
// fails, the entire operation returns an error.
func (p *HostProber) Probe(ctx context.Context) error {
	report, err := p.collect(ctx)
	if err != nil {
		return err
	}

	s := p.Serializer
	if s == nil {
		s = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := s.Serialize(ctx, report); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Collect gathers the host topology without serializing it.
// The server handlers use this to build API responses.
func (p *HostProber) Collect(ctx context.Context) (*Report, error) {
	return p.collect(ctx)
}

func (p *HostProber) collect(ctx context.Context) (*Report, error) {
	slog.Debug("starting host probe")

	// Track overall collection duration
	start := time.Now()
	defer func() {
		probeCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	report := NewReport()

	// Collect metadata
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		collectorStart := time.Now()
		defer func() {
			probeCollectorDuration.WithLabelValues("metadata").Observe(time.Since(collectorStart).Seconds())
		}()
		hostname, err := os.Hostname()
		if err != nil {
			slog.Warn("failed to resolve hostname", slog.String("error", err.Error()))
			hostname = "unknown"
		}
		mu.Lock()
		report.Init(header.KindReport, FullAPIVersion, p.Version)
		report.Metadata["source-host"] = hostname
		mu.Unlock()
		slog.Debug("obtained host metadata", slog.String("host", hostname), slog.String("version", p.Version))
		return nil
	})

	// Collect effective CPU count
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		collectorStart := time.Now()
		defer func() {
			probeCollectorDuration.WithLabelValues("cpu").Observe(time.Since(collectorStart).Seconds())
		}()
		slog.Debug("estimating effective cpu count")
		count := cpu.Count()
		mu.Lock()
		report.CPUs = count
		mu.Unlock()
		return nil
	})

	// Collect network devices
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		collectorStart := time.Now()
		defer func() {
			probeCollectorDuration.WithLabelValues("netdev").Observe(time.Since(collectorStart).Seconds())
		}()
		slog.Debug("enumerating network devices")
		devices, err := netdev.Enumerate()
		if err != nil {
			slog.Error("failed to enumerate network devices", slog.String("error", err.Error()))
			return hterrors.Wrap(hterrors.ErrCodeSyscallFailed, "failed to enumerate network devices", err)
		}
		mu.Lock()
		report.Devices = devices
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		probeCollectionTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	probeCollectionTotal.WithLabelValues("success").Inc()
	probeCPUCount.Set(float64(report.CPUs))
	probeDeviceCount.Set(float64(len(report.Devices)))

	slog.Debug("probe collection complete",
		slog.Int("cpus", report.CPUs),
		slog.Int("devices", len(report.Devices)))

	return report, nil
}
