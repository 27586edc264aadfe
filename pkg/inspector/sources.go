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

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"
)

// Session is one logged-in session as reported by the host: the identity
// that owns it and the origin it connected from. The origin is the raw
// utmp host field, e.g. "host.example", ":0", or "(unknown)".
type Session struct {
	User   string
	Origin string
}

// ProcessSource reports the number of entries in the process table.
type ProcessSource interface {
	Count(ctx context.Context) (int, error)
}

// SessionSource reports the currently logged-in sessions.
type SessionSource interface {
	Sessions(ctx context.Context) ([]Session, error)
}

// LoadSource reports the 15-minute load average.
type LoadSource interface {
	Load15(ctx context.Context) (float64, error)
}

// hostProcesses reads the live process table.
type hostProcesses struct{}

func (hostProcesses) Count(ctx context.Context) (int, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return len(pids), nil
}

// hostSessions reads logged-in sessions from utmp.
type hostSessions struct{}

func (hostSessions) Sessions(ctx context.Context) ([]Session, error) {
	users, err := host.UsersWithContext(ctx)
	if err != nil {
		return nil, err
	}

	sessions := make([]Session, 0, len(users))
	for _, u := range users {
		sessions = append(sessions, Session{User: u.User, Origin: u.Host})
	}
	return sessions, nil
}

// hostLoad reads the kernel load average exposure.
type hostLoad struct{}

func (hostLoad) Load15(ctx context.Context) (float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return avg.Load15, nil
}
