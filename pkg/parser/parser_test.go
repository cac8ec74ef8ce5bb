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

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "testfile")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetLines(t *testing.T) {
	p := NewParser()

	path := writeTestFile(t, "first\nsecond\n\n# comment\nthird\n")
	lines, err := p.GetLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, lines)
}

func TestGetLinesKeepComments(t *testing.T) {
	p := NewParser(WithSkipComments(false))

	path := writeTestFile(t, "value\n# note\n")
	lines, err := p.GetLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"value", "# note"}, lines)
}

func TestGetLinesCustomDelimiter(t *testing.T) {
	p := NewParser(WithDelimiter(","))

	path := writeTestFile(t, "0-3,7,9-11")
	lines, err := p.GetLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"0-3", "7", "9-11"}, lines)
}

func TestGetLinesErrors(t *testing.T) {
	p := NewParser()

	_, err := p.GetLines("")
	assert.Error(t, err)

	_, err = p.GetLines(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	path := writeTestFile(t, "\xff\xfe invalid")
	_, err = p.GetLines(path)
	assert.Error(t, err)

	small := NewParser(WithMaxSize(4))
	path = writeTestFile(t, "this is longer than four bytes")
	_, err = small.GetLines(path)
	assert.Error(t, err)
}

func TestGetFirstLine(t *testing.T) {
	p := NewParser()

	path := writeTestFile(t, "100000\n")
	line, err := p.GetFirstLine(path)
	require.NoError(t, err)
	assert.Equal(t, "100000", line)

	empty := writeTestFile(t, "\n\n")
	_, err = p.GetFirstLine(empty)
	assert.Error(t, err)
}

func TestGetInt64(t *testing.T) {
	p := NewParser()

	path := writeTestFile(t, "-1\n")
	v, err := p.GetInt64(path)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)

	path = writeTestFile(t, "not-a-number\n")
	_, err = p.GetInt64(path)
	assert.Error(t, err)
}
