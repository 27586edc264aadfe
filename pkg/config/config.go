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

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Built-in defaults used when no config file exists or a key is absent.
const (
	DefaultLogfilePath     = "/spare/tmp/sysmond.log"
	DefaultAppendMode      = true
	DefaultIntervalMinutes = 10
)

// Recognized configuration keys.
const (
	keyLogfile  = "logfile"
	keyAppend   = "append"
	keyInterval = "interval"
)

// maxFileSize caps the config file read, the same guard the sample log
// parser applies elsewhere.
const maxFileSize = 1 << 20 // 1MB

var intervalRe = regexp.MustCompile(`^[0-9]+$`)

// Config holds the resolved daemon configuration. All fields are valid
// after Resolve returns: either validated user values or the defaults.
// Immutable once created.
type Config struct {
	// LogfilePath is the sample log destination.
	LogfilePath string

	// AppendMode preserves prior log content across runs when true;
	// when false the log is truncated once at startup.
	AppendMode bool

	// IntervalMinutes is the wait between samples, always positive.
	IntervalMinutes int
}

// LineError records a single configuration problem: the line number
// (1-based), the offending text, and the reason it was rejected.
// Resolution never stops on a LineError; it accumulates them.
type LineError struct {
	Line   int
	Text   string
	Reason string
}

// Error implements the error interface.
func (e LineError) Error() string {
	if e.Line == 0 {
		return e.Reason
	}
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Text, e.Reason)
}

// Resolve loads configuration from the file at path, starting from the
// built-in defaults. A missing or unreadable file is not fatal: the
// defaults are returned with one error entry and the caller decides
// whether to proceed.
//
// File grammar: blank lines and lines starting with '#' are ignored;
// every other line must be key=value with exactly one '=' delimiter.
// Recognized keys are logfile (any non-empty value, taken verbatim),
// append (literal yes or no), and interval (digits only, positive).
// A malformed line contributes one error and the most recently accepted
// value for that key is retained; resolution always completes. An empty
// returned error slice is the success indicator.
func Resolve(path string) (*Config, []LineError) {
	cfg := &Config{
		LogfilePath:     DefaultLogfilePath,
		AppendMode:      DefaultAppendMode,
		IntervalMinutes: DefaultIntervalMinutes,
	}

	var errs []LineError

	b, err := os.ReadFile(path)
	if err != nil {
		errs = append(errs, LineError{
			Reason: fmt.Sprintf("cannot read config file %q, using defaults: %v", path, err),
		})
		return cfg, errs
	}

	if len(b) > maxFileSize {
		errs = append(errs, LineError{
			Reason: fmt.Sprintf("config file %q exceeds maximum size of %d bytes, using defaults", path, maxFileSize),
		})
		return cfg, errs
	}

	if !utf8.Valid(b) {
		errs = append(errs, LineError{
			Reason: fmt.Sprintf("config file %q is not valid UTF-8, using defaults", path),
		})
		return cfg, errs
	}

	for i, raw := range strings.Split(string(b), "\n") {
		line := strings.TrimSpace(raw)
		num := i + 1

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Exactly one split point: a missing '=' or a second '=' is a
		// syntax error for this line.
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			errs = append(errs, LineError{Line: num, Text: line, Reason: "illegal line, expected key=value"})
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case keyLogfile:
			if value == "" {
				errs = append(errs, LineError{Line: num, Text: line, Reason: "logfile value must not be empty"})
				continue
			}
			cfg.LogfilePath = value

		case keyAppend:
			switch value {
			case "yes":
				cfg.AppendMode = true
			case "no":
				cfg.AppendMode = false
			default:
				errs = append(errs, LineError{Line: num, Text: line, Reason: "append value must be yes or no"})
			}

		case keyInterval:
			if !intervalRe.MatchString(value) {
				errs = append(errs, LineError{Line: num, Text: line, Reason: "interval value must be numeric"})
				continue
			}
			n, convErr := strconv.Atoi(value)
			if convErr != nil || n <= 0 {
				errs = append(errs, LineError{Line: num, Text: line, Reason: "interval value must be a positive number of minutes"})
				continue
			}
			cfg.IntervalMinutes = n

		default:
			errs = append(errs, LineError{Line: num, Text: line, Reason: fmt.Sprintf("illegal line, unknown key %q", key)})
		}
	}

	return cfg, errs
}
