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

// Package parser provides utilities for reading kernel pseudo-files.
//
// Pseudo-files under /proc and /sys/fs/cgroup are small text files with a
// single value or a short list of entries. The parser reads a file whole,
// validates its encoding and size, and exposes line, first-line, and
// integer accessors:
//
//	p := parser.NewParser()
//	quota, err := p.GetInt64("/sys/fs/cgroup/cpu/cpu.cfs_quota_us")
//
// Callers that treat a missing or malformed file as "no information" should
// absorb the returned error rather than propagate it; the parser itself
// never distinguishes the two cases.
package parser
