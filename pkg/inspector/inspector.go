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

package inspector

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sysmond/sysmond/pkg/sample"
)

// Inspector collects instantaneous host activity facts and assembles
// them into a Sample. The three sources are capability seams: production
// use reads the live host, tests substitute deterministic fixtures.
// A nil source falls back to the live host implementation.
type Inspector struct {
	// Processes reports the process table size. If nil, the live
	// process table is used.
	Processes ProcessSource

	// Sessions reports logged-in sessions. If nil, live utmp data
	// is used.
	Sessions SessionSource

	// Load reports the 15-minute load average. If nil, the kernel
	// load-average exposure is used.
	Load LoadSource

	// Now returns the sample timestamp. If nil, time.Now is used.
	Now func() time.Time
}

// New creates an Inspector backed by the live host facilities.
func New() *Inspector {
	return &Inspector{
		Processes: hostProcesses{},
		Sessions:  hostSessions{},
		Load:      hostLoad{},
	}
}

// Collect gathers all host facts and returns them as a single Sample.
// The sources run concurrently; a source failure never fails the sample.
// The affected fields degrade to their zero values and the failure is
// logged. The only error returned is context cancellation.
//
// The process count reproduces the row-count convention of a process
// listing that includes its own header line, so the reported value is
// one greater than the number of process table entries.
func (i *Inspector) Collect(ctx context.Context) (*sample.Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	procs := i.Processes
	if procs == nil {
		procs = hostProcesses{}
	}
	sess := i.Sessions
	if sess == nil {
		sess = hostSessions{}
	}
	loadSrc := i.Load
	if loadSrc == nil {
		loadSrc = hostLoad{}
	}
	now := i.Now
	if now == nil {
		now = time.Now
	}

	s := &sample.Sample{Timestamp: now()}

	var sessions []Session

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := procs.Count(gctx)
		if err != nil {
			slog.Warn("process listing unavailable, degrading to zero", "error", err)
			return nil
		}
		// +1 for the listing header row.
		s.ProcessCount = n + 1
		return nil
	})

	g.Go(func() error {
		list, err := sess.Sessions(gctx)
		if err != nil {
			slog.Warn("session listing unavailable, degrading to zero", "error", err)
			return nil
		}
		sessions = list
		return nil
	})

	g.Go(func() error {
		l, err := loadSrc.Load15(gctx)
		if err != nil {
			slog.Warn("load average unavailable, degrading to zero", "error", err)
			return nil
		}
		s.LoadAverage15 = l
		return nil
	})

	// Source errors degrade rather than propagate, so Wait cannot fail;
	// cancellation is checked directly.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.UserCount = countUsers(sessions)
	s.RemoteUserCount = countRemoteUsers(sessions)
	s.GraphicalSession = graphicalSessionPresent(sessions)

	slog.Debug("sample collected",
		"processes", s.ProcessCount,
		"users", s.UserCount,
		"remote", s.RemoteUserCount,
		"graphical", s.GraphicalSession,
		"load15", s.LoadAverage15,
	)

	return s, nil
}
