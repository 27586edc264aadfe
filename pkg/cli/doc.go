/*
Copyright © 2025 Sysmond Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the sysmond command line: the long-running
// sampling daemon (run), a one-shot sample for inspection (sample), and
// configuration validation (config check).
package cli
