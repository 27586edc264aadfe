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
	"fmt"
	"os"
	"time"

	"github.com/sysmond/sysmond/pkg/sample"
)

const fileMode = 0o644

// Book is the append-only sample log. Every write is a complete
// open-append-close cycle; no file handle is held between writes, so
// external rotation or inspection between writes always observes a
// consistent file.
type Book struct {
	path string
}

// New creates a Book writing to the given path. The file is not touched
// until Reset or the first Append.
func New(path string) *Book {
	return &Book{path: path}
}

// Path returns the log file path.
func (b *Book) Path() string {
	return b.path
}

// Reset removes any pre-existing log content. Called once at startup
// when append mode is off; a missing file is not an error.
func (b *Book) Reset() error {
	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to reset log file %q: %w", b.path, err)
	}
	return nil
}

// Append writes one line plus a terminator and releases the handle
// before returning.
func (b *Book) Append(line string) error {
	f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", b.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("failed to write log file %q: %w", b.path, err)
	}
	return nil
}

// WriteStart writes the two fixed startup lines: the banner naming the
// host, local start time, effective interval, and run ID, followed by
// the column header.
func (b *Book) WriteStart(host string, start time.Time, intervalMinutes int, runID string) error {
	banner := fmt.Sprintf("sysmond started on %s at %s, sampling every %d minutes (run %s)",
		host, start.Format(sample.TimeFormat), intervalMinutes, runID)
	if err := b.Append(banner); err != nil {
		return err
	}
	return b.Append(sample.Header)
}
