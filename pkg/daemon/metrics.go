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

package daemon

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sampleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sysmond_sample_duration_seconds",
			Help:    "Time taken to collect one host activity sample",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	samplesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysmond_samples_total",
			Help: "Total number of samples taken, by log sink outcome",
		},
		[]string{"status"}, // logged or sink_error
	)

	sinkWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sysmond_sink_write_failures_total",
			Help: "Total number of failed log file writes",
		},
	)

	lastProcessCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sysmond_last_process_count",
			Help: "Process count reported by the most recent sample",
		},
	)
)
