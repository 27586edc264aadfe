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

package sample

import (
	"fmt"
	"time"
)

// TimeFormat is the timestamp layout used in log rows.
const TimeFormat = "2006-01-02 15:04:05"

// Header is the fixed column header written once after the start banner.
const Header = "DATE/TIME  #PROCS  #USERS  #REMOTE  XUSERS?  LOADAV"

// Sample is one point-in-time measurement of host activity. Samples are
// created by the inspector, written to the log, folded into the running
// statistics, and then discarded; they are never retained.
type Sample struct {
	// Timestamp is the wall-clock time the sample was taken.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// ProcessCount is the number of process table rows, including the
	// header row of the listing convention it reproduces.
	ProcessCount int `json:"processCount" yaml:"processCount"`

	// UserCount is the number of distinct logged-in session identities
	// after the unknown-origin adjustment.
	UserCount int `json:"userCount" yaml:"userCount"`

	// RemoteUserCount is the number of distinct identities with a
	// remote-host origin, counted independently of UserCount.
	RemoteUserCount int `json:"remoteUserCount" yaml:"remoteUserCount"`

	// GraphicalSession is true when at least one session origin is a
	// numeric display designator.
	GraphicalSession bool `json:"graphicalSession" yaml:"graphicalSession"`

	// LoadAverage15 is the 15-minute load average.
	LoadAverage15 float64 `json:"loadAverage15" yaml:"loadAverage15"`
}

// Row renders the sample as one fixed-width log line, aligned to Header.
func (s *Sample) Row() string {
	xusers := "no"
	if s.GraphicalSession {
		xusers = "yes"
	}
	return fmt.Sprintf("%s  %6d  %6d  %7d  %7s  %6.2f",
		s.Timestamp.Format(TimeFormat),
		s.ProcessCount,
		s.UserCount,
		s.RemoteUserCount,
		xusers,
		s.LoadAverage15,
	)
}
