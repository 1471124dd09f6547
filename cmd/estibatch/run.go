package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/config"
	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/logger"
	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/tui/wizard"
)

func newRunCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <batch.yaml>",
		Short: "Launch the review wizard for a batch manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(args[0], flags, log)
		},
	}

	return cmd
}

func runWizard(path string, flags *rootFlags, log *logger.Logger) error {
	log, err := commandLogger(flags, log)
	if err != nil {
		return err
	}

	manifest, err := config.ParseManifest(path)
	if err != nil {
		log.Error(err, "manifest rejected")
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("run requires an interactive terminal; use \"estibatch validate\" to check a manifest")
	}

	log.WithFields(map[string]any{
		"batch":     manifest.Name,
		"documents": len(manifest.Documents),
	}).Info("starting wizard")

	m := wizard.NewModel(manifest.Name, manifest.Estimates(), wizard.Options{
		MaxVisible: manifest.Settings.MaxVisible,
		Width:      manifest.Settings.Width,
	}, log)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	log.Info("wizard closed")
	return nil
}
