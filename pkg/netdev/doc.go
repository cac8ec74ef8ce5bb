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

// Package netdev enumerates the network interfaces of the current host.
//
// Enumeration acquires an OS-provided snapshot of interface records, walks
// it in traversal order, and converts each record into an owned Device
// value. The snapshot is borrowed from the OS for the duration of one call
// and released exactly once on every exit path; ownership of the converted
// devices belongs to the caller.
//
// # Error Handling
//
// Only the initial acquisition can fail, surfaced as *EnumerationError
// carrying the OS cause. A record that cannot be converted (unsupported
// address family, malformed data) is dropped with a debug log and does not
// abort the walk. This swallow-and-continue policy is deliberate: a partial
// view of the interfaces is more useful to the caller than no view.
//
// # Platform Backends
//
//   - Linux: rtnetlink link and address dumps
//   - Windows: the GetAdaptersAddresses adapter list
//   - everywhere else: the stdlib interface table
//
// Each call is an independent point-in-time snapshot; results are not
// cached, deduplicated, or sorted, and no topology-change notification is
// provided.
package netdev
