/*
Copyright © 2025 Sysmond Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sysmond/sysmond/pkg/daemon"
)

const defaultConfigPath = "/etc/sysmond.conf"

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the sampling daemon",
		Description: "Samples host activity at the configured interval and appends " +
			"each sample to the activity log. On SIGINT or SIGTERM the daemon " +
			"writes a summary of the run to the log and to standard output, " +
			"then exits. SIGHUP is ignored.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				Sources: cli.EnvVars("SYSMOND_CONFIG"),
				Value:   defaultConfigPath,
			},
			&cli.BoolFlag{
				Name:  "once",
				Usage: "take a single sample, write the summary, and exit",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c := &daemon.Controller{
				ConfigPath: cmd.String("config"),
				Console:    outWriter(cmd),
				Once:       cmd.Bool("once"),
			}
			return c.Run(ctx)
		},
	}
}
