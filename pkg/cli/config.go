/*
Copyright © 2025 Sysmond Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sysmond/sysmond/pkg/config"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect sysmond configuration",
		Commands: []*cli.Command{
			configCheckCmd(),
		},
	}
}

func configCheckCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate a configuration file and show the effective settings",
		Description: "Resolves the configuration the same way the daemon does at " +
			"startup: malformed lines are reported and the built-in defaults " +
			"fill the gaps. Exits non-zero when any line is rejected.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				Sources: cli.EnvVars("SYSMOND_CONFIG"),
				Value:   defaultConfigPath,
			},
		},
		Action: configCheckAction,
	}
}

func configCheckAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	cfg, errs := config.Resolve(path)

	out := outWriter(cmd)
	fmt.Fprintf(out, "file:     %s\n", path)
	fmt.Fprintf(out, "logfile:  %s\n", cfg.LogfilePath)
	fmt.Fprintf(out, "append:   %t\n", cfg.AppendMode)
	fmt.Fprintf(out, "interval: %d minutes\n", cfg.IntervalMinutes)

	for _, e := range errs {
		fmt.Fprintf(out, "problem:  %s\n", e.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d configuration problem(s) in %s", len(errs), path)
	}
	return nil
}
