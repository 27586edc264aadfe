/*
Copyright © 2025 Sysmond Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/sysmond/sysmond/pkg/inspector"
	"github.com/sysmond/sysmond/pkg/serializer"
)

func sampleCmd() *cli.Command {
	return &cli.Command{
		Name:  "sample",
		Usage: "Take a single host activity sample and print it",
		Description: "Collects one sample (process count, logged-in users, remote " +
			"sessions, graphical session presence, 15-minute load average) and " +
			"writes it to stdout or a file. Useful for checking what the daemon " +
			"would log without starting it.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format (json, yaml, or table)",
				Value:   string(serializer.FormatJSON),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (stdout if empty)",
			},
		},
		Action: sampleAction,
	}
}

func sampleAction(ctx context.Context, cmd *cli.Command) error {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return fmt.Errorf("unknown format: %s", cmd.String("format"))
	}

	s, err := inspector.New().Collect(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect sample: %w", err)
	}

	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output writer", "error", err)
		}
	}()

	return w.Serialize(ctx, s)
}
