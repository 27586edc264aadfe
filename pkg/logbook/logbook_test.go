// Copyright (c) 2025, Sysmond Authors.
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

package logbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysmond/sysmond/pkg/sample"
)

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysmond.log")
	b := New(path)

	require.NoError(t, b.Append("first"))
	require.NoError(t, b.Append("second"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(content))
}

func TestAppendPreservesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysmond.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0644))

	b := New(path)
	require.NoError(t, b.Append("this run"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous run\nthis run\n", string(content))
}

func TestResetTruncatesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysmond.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0644))

	b := New(path)
	require.NoError(t, b.Reset())
	require.NoError(t, b.Append("fresh"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(content))
}

func TestResetMissingFile(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "never-written.log"))
	assert.NoError(t, b.Reset())
}

func TestAppendUnwritablePath(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "missing-dir", "sysmond.log"))
	assert.Error(t, b.Append("line"))
}

func TestWriteStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysmond.log")
	b := New(path)

	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, b.WriteStart("atlas", start, 10, "a1b2c3"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "atlas")
	assert.Contains(t, lines[0], "2025-03-14 09:00:00")
	assert.Contains(t, lines[0], "10 minutes")
	assert.Contains(t, lines[0], "a1b2c3")
	assert.Equal(t, sample.Header, lines[1])
}
