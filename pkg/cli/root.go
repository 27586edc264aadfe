/*
Copyright © 2025 Sysmond Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/sysmond/sysmond/pkg/logging"
)

const name = "sysmond"

var (
	// set at build time with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the sysmond command line. SIGINT and SIGTERM cancel the
// command context, which is how the daemon learns it should finalize.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "host activity sampling daemon",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			runCmd(),
			sampleCmd(),
			configCmd(),
		},
	}
}

// initLogger configures the default logger after flags are parsed so
// --log-level takes effect before any command body runs.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)
	return ctx, nil
}

// outWriter is the command output destination, honoring a Writer
// injected by tests.
func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
