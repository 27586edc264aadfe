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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysmond/sysmond/pkg/sample"
)

func TestUpdate(t *testing.T) {
	a := New()

	a.Update(&sample.Sample{ProcessCount: 50, UserCount: 2})
	a.Update(&sample.Sample{ProcessCount: 60, UserCount: 0})
	a.Update(&sample.Sample{ProcessCount: 70, UserCount: 1})

	stats := a.Stats()
	assert.Equal(t, 3, stats.SampleCount)
	assert.Equal(t, 180, stats.ProcessCountSum)
	assert.Equal(t, 2, stats.SamplesWithUsersPresent)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		samples     []sample.Sample
		wantAvg     int
		wantPercent int
		wantCount   int
	}{
		{
			name: "truncating average",
			samples: []sample.Sample{
				{ProcessCount: 3, UserCount: 1},
				{ProcessCount: 3},
				{ProcessCount: 4},
			},
			wantAvg:     3, // 10/3 truncates
			wantPercent: 33,
			wantCount:   3,
		},
		{
			name: "all samples with users",
			samples: []sample.Sample{
				{ProcessCount: 50, UserCount: 1},
				{ProcessCount: 60, UserCount: 2},
				{ProcessCount: 70, UserCount: 3},
			},
			wantAvg:     60,
			wantPercent: 100,
			wantCount:   3,
		},
		{
			name: "no users in any sample",
			samples: []sample.Sample{
				{ProcessCount: 10},
				{ProcessCount: 20},
			},
			wantAvg:     15,
			wantPercent: 0,
			wantCount:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			for i := range tt.samples {
				a.Update(&tt.samples[i])
			}

			s := a.Summarize()
			assert.False(t, s.NoSamples)
			assert.Equal(t, tt.wantCount, s.SampleCount)
			assert.Equal(t, tt.wantAvg, s.AverageProcessCount)
			assert.Equal(t, tt.wantPercent, s.PercentSamplesWithUsers)
		})
	}
}

func TestSummarizeNoSamples(t *testing.T) {
	s := New().Summarize()

	assert.True(t, s.NoSamples)
	assert.Zero(t, s.SampleCount)
	assert.Zero(t, s.AverageProcessCount)
	assert.Zero(t, s.PercentSamplesWithUsers)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "no measurements taken")
}

func TestSummaryLines(t *testing.T) {
	a := New()
	a.Update(&sample.Sample{ProcessCount: 50, UserCount: 1})
	a.Update(&sample.Sample{ProcessCount: 60, UserCount: 1})
	a.Update(&sample.Sample{ProcessCount: 70, UserCount: 1})

	lines := a.Summarize().Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "100%")
	assert.Contains(t, lines[1], "60")
	assert.Contains(t, lines[1], "3 measurements")
}
