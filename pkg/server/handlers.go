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

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hosttopo/hosttopo/pkg/cpu"
	hterrors "github.com/hosttopo/hosttopo/pkg/errors"
	"github.com/hosttopo/hosttopo/pkg/header"
	"github.com/hosttopo/hosttopo/pkg/netdev"
	"github.com/hosttopo/hosttopo/pkg/probe"
	"github.com/hosttopo/hosttopo/pkg/serializer"
)

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes: []string{
			"GET /v1/topology",
			"GET /v1/cpu",
			"GET /v1/devices",
			"GET /health",
			"GET /ready",
			"GET /metrics",
		},
	}

	s.mu.RLock()
	resp.Ready = s.ready
	s.mu.RUnlock()

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// handleTopology handles GET /v1/topology and returns the full host report.
func (s *Server) handleTopology(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, hterrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.ProbeTimeout)
	defer cancel()

	report, err := s.prober.Collect(ctx)
	if err != nil {
		slog.Error("topology collection failed", "error", err.Error())
		WriteError(w, r, http.StatusServiceUnavailable, hterrors.ErrCodeUnavailable,
			"Failed to collect host topology", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, report)
}

// handleCPU handles GET /v1/cpu and returns the effective logical CPU count.
func (s *Server) handleCPU(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, hterrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	resp := CPUResponse{CPUs: cpu.Count()}
	resp.Init(header.KindCPU, probe.FullAPIVersion, s.config.Version)

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// handleDevices handles GET /v1/devices and returns the network device inventory.
func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, hterrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	devices, err := netdev.Enumerate()
	if err != nil {
		slog.Error("device enumeration failed", "error", err.Error())
		WriteError(w, r, http.StatusServiceUnavailable, hterrors.ErrCodeSyscallFailed,
			"Failed to enumerate network devices", true, nil)
		return
	}

	resp := DevicesResponse{Devices: devices}
	resp.Init(header.KindDevices, probe.FullAPIVersion, s.config.Version)

	serializer.RespondJSON(w, http.StatusOK, resp)
}
