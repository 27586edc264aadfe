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

// Package logging wraps the standard library slog package with sysmond
// defaults: structured JSON output to stderr, module and version context
// on every record, LOG_LEVEL environment based verbosity, and source
// location tracking for debug logs.
//
// Set the default logger early in main():
//
//	logging.SetDefaultStructuredLogger("sysmond", version)
//	slog.Info("starting", "interval", cfg.IntervalMinutes)
//
// The sample log file written by pkg/logbook is a separate, operator-facing
// artifact with a fixed format; this package carries diagnostics only.
package logging
