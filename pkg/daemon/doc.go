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

// Package daemon orchestrates the sampling lifecycle.
//
// The Controller moves through four linear states: Starting (resolve
// configuration, open the log, write the banner and header), Running
// (sample, log, aggregate, wait), Finalizing (write and echo the
// summary), and Stopped. A termination request (context cancellation,
// wired to SIGINT/SIGTERM by the CLI) cuts the inter-sample wait short
// and triggers finalization exactly once. Hang-up signals are ignored
// entirely.
//
// The loop is a single logical thread of control: each sample is logged
// before it is aggregated, and every aggregated sample contributes to
// the terminal summary. The log sink is opened and closed around every
// write; a failing sink is reported and counted but never stops the
// daemon.
//
// When a service manager is listening on the notify socket, the
// controller reports READY on entering the running state and STOPPING
// when finalization begins.
package daemon
