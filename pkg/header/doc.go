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

// Package header provides common header types for hosttopo data structures.
//
// The Header carries Kubernetes-style resource metadata (Kind, APIVersion,
// timestamp, unique id, tool version) on every probe result, so consumers
// collecting snapshots from a fleet can identify and order them.
//
// Create a header for a probe result:
//
//	h := header.New(
//	    header.WithKind(header.KindReport),
//	    header.WithAPIVersion("v1"),
//	)
//
// Or initialize in place with generated metadata:
//
//	var h header.Header
//	h.Init(header.KindReport, "v1", version)
package header
