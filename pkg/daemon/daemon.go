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
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	sd "github.com/coreos/go-systemd/v22/daemon"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/sysmond/sysmond/pkg/aggregate"
	"github.com/sysmond/sysmond/pkg/config"
	"github.com/sysmond/sysmond/pkg/inspector"
	"github.com/sysmond/sysmond/pkg/logbook"
)

// State is the controller lifecycle phase. Transitions are linear:
// Starting, Running, Finalizing, Stopped. There is no restart from
// Stopped.
type State int

const (
	StateStarting State = iota
	StateRunning
	StateFinalizing
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateFinalizing:
		return "finalizing"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// sinkReportInterval throttles repeated sink failure reports so a
// persistently broken log file does not flood the operator output.
const sinkReportInterval = 30 * time.Second

// Controller orchestrates the sampling loop: it resolves configuration
// once at startup, then repeatedly samples, logs, aggregates, and waits,
// until the context is canceled, at which point it finalizes exactly
// once and returns. Zero-value fields fall back to production defaults.
type Controller struct {
	// ConfigPath is the configuration file to resolve at startup.
	// Ignored when Config is set.
	ConfigPath string

	// Config overrides file resolution, for embedding and tests.
	Config *config.Config

	// Inspector collects samples. If nil, the live host inspector
	// is used.
	Inspector *inspector.Inspector

	// Console is the operator-facing output for the terminal summary.
	// If nil, stdout is used.
	Console io.Writer

	// Interval overrides the configured sampling interval, for tests.
	Interval time.Duration

	// Once takes a single sample and finalizes immediately, for
	// smoke-testing a deployment.
	Once bool

	book    *logbook.Book
	agg     *aggregate.Aggregator
	state   State
	runID   string
	sinkRep *rate.Limiter
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	return c.state
}

// RunID returns the identifier stamped on this run's banner and logs.
// Empty until Run starts.
func (c *Controller) RunID() string {
	return c.runID
}

// Run executes the full lifecycle and blocks until finalization
// completes. Cancellation of ctx is the termination request: the
// current wait is cut short, no further sampling occurs, the summary is
// written to the log and the console, and Run returns nil. Hang-up
// signals are ignored for the whole lifetime of the process.
func (c *Controller) Run(ctx context.Context) error {
	c.setState(StateStarting)

	// Hang-up must not alter state or interrupt the wait.
	signal.Ignore(syscall.SIGHUP)

	cfg := c.Config
	if cfg == nil {
		var errs []config.LineError
		cfg, errs = config.Resolve(c.ConfigPath)
		for _, e := range errs {
			slog.Warn("config problem", "error", e.Error())
		}
	}

	interval := c.Interval
	if interval == 0 {
		interval = time.Duration(cfg.IntervalMinutes) * time.Minute
	}

	insp := c.Inspector
	if insp == nil {
		insp = inspector.New()
	}
	console := c.Console
	if console == nil {
		console = os.Stdout
	}

	c.runID = uuid.NewString()
	c.agg = aggregate.New()
	c.book = logbook.New(cfg.LogfilePath)
	c.sinkRep = rate.NewLimiter(rate.Every(sinkReportInterval), 1)

	host, err := os.Hostname()
	if err != nil {
		slog.Warn("host identity unavailable", "error", err)
		host = "unknown"
	}

	slog.Info("starting sampling loop",
		"run", c.runID,
		"host", host,
		"logfile", cfg.LogfilePath,
		"append", cfg.AppendMode,
		"intervalMinutes", cfg.IntervalMinutes,
	)

	if !cfg.AppendMode {
		if err := c.book.Reset(); err != nil {
			c.reportSinkFailure(err)
		}
	}
	if err := c.book.WriteStart(host, time.Now(), cfg.IntervalMinutes, c.runID); err != nil {
		c.reportSinkFailure(err)
	}

	c.setState(StateRunning)
	c.notify(sd.SdNotifyReady)

	for {
		if ctx.Err() != nil {
			break
		}

		start := time.Now()
		s, err := insp.Collect(ctx)
		if err != nil {
			// Termination arrived mid-collection; the partial sample
			// is discarded.
			break
		}
		sampleDuration.Observe(time.Since(start).Seconds())
		lastProcessCount.Set(float64(s.ProcessCount))

		// The log write happens before the aggregate update so the
		// summary never counts a sample the log has not seen first.
		if err := c.book.Append(s.Row()); err != nil {
			c.reportSinkFailure(err)
			samplesTotal.WithLabelValues("sink_error").Inc()
		} else {
			samplesTotal.WithLabelValues("logged").Inc()
		}
		c.agg.Update(s)

		if c.Once {
			break
		}
		if !waitInterval(ctx, interval) {
			break
		}
	}

	c.finalize(console)
	return nil
}

// finalize computes the summary, writes it to the log, echoes it to the
// console, and stops. Runs exactly once per controller; Run's linear
// flow reaches it on a single path.
func (c *Controller) finalize(console io.Writer) {
	c.setState(StateFinalizing)
	c.notify(sd.SdNotifyStopping)

	summary := c.agg.Summarize()
	for _, line := range summary.Lines() {
		if err := c.book.Append(line); err != nil {
			c.reportSinkFailure(err)
		}
		if _, err := io.WriteString(console, line+"\n"); err != nil {
			slog.Warn("failed to write summary to console", "error", err)
		}
	}

	slog.Info("summary",
		"run", c.runID,
		"samples", summary.SampleCount,
		"averageProcessCount", summary.AverageProcessCount,
		"percentSamplesWithUsers", summary.PercentSamplesWithUsers,
		"noSamples", summary.NoSamples,
	)

	c.setState(StateStopped)
}

func (c *Controller) setState(s State) {
	slog.Debug("state transition", "from", c.state.String(), "to", s.String())
	c.state = s
}

// reportSinkFailure records a failed log write and surfaces it to the
// operator, rate-limited so a persistently broken sink does not flood
// stderr. The daemon keeps running; losing the sink is not fatal.
func (c *Controller) reportSinkFailure(err error) {
	sinkWriteFailures.Inc()
	if c.sinkRep.Allow() {
		slog.Error("log write failed, continuing", "error", err)
	}
}

// notify reports daemon state to the service manager when one is
// listening; without a notify socket this is a no-op.
func (c *Controller) notify(state string) {
	if _, err := sd.SdNotify(false, state); err != nil {
		slog.Debug("service manager notification failed", "error", err)
	}
}

// waitInterval blocks for d or until ctx is canceled. Returns false
// when the wait was cut short by cancellation.
func waitInterval(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
