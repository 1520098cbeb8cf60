// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCommandeer holds the flags and logger shared by every subcommand,
// following the same commandeer-per-command shape the rest of this
// package's subcommands use.
type rootCommandeer struct {
	cmd     *cobra.Command
	verbose bool
	logger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	root := &rootCommandeer{}

	cmd := &cobra.Command{
		Use:           "gdelta",
		Short:         "Create and apply GDelta binary patches",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(root.verbose)
			if err != nil {
				return err
			}
			root.logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&root.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newEncodeCommand(root).cmd,
		newDecodeCommand(root).cmd,
	)

	root.cmd = cmd
	return cmd
}

// newLogger builds a zap logger appropriate for a CLI: human-readable
// console output, debug level only when verbose is requested.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
