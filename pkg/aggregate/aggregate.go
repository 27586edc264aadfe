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

package aggregate

import (
	"fmt"

	"github.com/sysmond/sysmond/pkg/sample"
)

// RunningStats holds the monotonically non-decreasing totals across all
// samples taken so far. Owned by the Aggregator; never shared as
// process-wide state.
type RunningStats struct {
	SampleCount             int
	ProcessCountSum         int
	SamplesWithUsersPresent int
}

// Summary is the read-only aggregate view computed once at shutdown.
// Averages use truncating integer division.
type Summary struct {
	SampleCount             int
	AverageProcessCount     int
	PercentSamplesWithUsers int

	// NoSamples is true when the summary was requested before any
	// sample completed; averages are reported as zero in that case.
	NoSamples bool
}

// Lines renders the summary as its operator-facing lines: user-presence
// percentage first, then the average process count over N measurements.
// With no samples, a single "no measurements taken" line is returned.
func (s Summary) Lines() []string {
	if s.NoSamples {
		return []string{"no measurements taken"}
	}
	return []string{
		fmt.Sprintf("users were present during %d%% of the measurements", s.PercentSamplesWithUsers),
		fmt.Sprintf("average number of processes: %d (over %d measurements)", s.AverageProcessCount, s.SampleCount),
	}
}

// Aggregator folds completed samples into running totals and produces
// the terminal Summary on demand.
type Aggregator struct {
	stats RunningStats
}

// New creates an Aggregator with zeroed totals.
func New() *Aggregator {
	return &Aggregator{}
}

// Update folds one completed sample into the running totals: increments
// the sample count, adds the process count to its sum, and counts the
// sample toward user presence iff at least one user was logged in.
func (a *Aggregator) Update(s *sample.Sample) {
	a.stats.SampleCount++
	a.stats.ProcessCountSum += s.ProcessCount
	if s.UserCount != 0 {
		a.stats.SamplesWithUsersPresent++
	}
}

// Stats returns a copy of the current running totals.
func (a *Aggregator) Stats() RunningStats {
	return a.stats
}

// Summarize computes the terminal Summary. With zero samples it reports
// zeroed averages and sets NoSamples instead of dividing by zero.
func (a *Aggregator) Summarize() Summary {
	if a.stats.SampleCount == 0 {
		return Summary{NoSamples: true}
	}
	return Summary{
		SampleCount:             a.stats.SampleCount,
		AverageProcessCount:     a.stats.ProcessCountSum / a.stats.SampleCount,
		PercentSamplesWithUsers: (100 * a.stats.SamplesWithUsersPresent) / a.stats.SampleCount,
	}
}
