package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/config"
	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/logger"
)

func newValidateCmd(log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <batch.yaml>",
		Short: "Check a batch manifest without launching the wizard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := config.ParseManifest(args[0])
			if err != nil {
				log.Error(err, "manifest rejected")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d documents, manifest is valid\n",
				manifest.Name, len(manifest.Documents))
			return nil
		},
	}

	return cmd
}
