package main

import (
	"github.com/spf13/cobra"

	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "estibatch",
		Short:         "Review batches of estimate source documents in a terminal wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRunCmd(flags, log))
	cmd.AddCommand(newValidateCmd(log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// commandLogger returns the shared logger, re-levelled for --verbose.
func commandLogger(flags *rootFlags, log *logger.Logger) (*logger.Logger, error) {
	if flags == nil || !flags.verbose {
		return log, nil
	}
	return logger.New(logger.Options{Level: "debug", HumanReadable: true})
}
