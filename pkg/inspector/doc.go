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

// Package inspector collects instantaneous host activity facts: process
// table size, logged-in sessions, and load average.
//
// # Sources
//
// The Inspector reads through three capability interfaces so that tests
// can substitute deterministic fixtures:
//
//	type ProcessSource interface {
//	    Count(ctx context.Context) (int, error)
//	}
//
// Production sources are backed by gopsutil and read the live process
// table, utmp session records, and the kernel load-average exposure.
//
// # Degradation
//
// A sample never fails because a facility is unavailable: the affected
// field reports its zero value and a warning is logged. Only context
// cancellation aborts collection.
//
// # Counting conventions
//
// The reported counts reproduce a long-standing convention rather than
// an idealized one: the process count includes the header row of a
// process listing, and sessions with the literal "(unknown)" origin
// reduce the deduplicated user count by exactly one. The remote-session
// count is deduplicated independently, so it is not guaranteed to be
// less than or equal to the adjusted user count.
package inspector
