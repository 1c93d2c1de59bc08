package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nao1215/neuroscan/internal/config"
	"github.com/nao1215/neuroscan/internal/preview"
	"github.com/spf13/cobra"
)

// NewPreviewCmd creates the preview command.
func NewPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the landing page in the terminal",
		Long: `Preview shows the landing page one section at a time in the terminal.

Keys:
  ←/→    switch section
  1-3    select a demo step
  tab    cycle sample scans
  space  toggle play
  q      quit

The graph, counter and theme settings of the configuration file apply.`,
		Args: cobra.NoArgs,
		RunE: runPreviewCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .neuroscan in current, XDG config or home directory)")
	cmd.Flags().Uint64("seed", 0,
		"Seed for the hero graph (0 draws a new graph)")

	return cmd
}

// runPreviewCmd starts the terminal preview.
func runPreviewCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := previewConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	m := preview.New(
		preview.WithGraph(cfg.NodeCount, cfg.MaxConnections, cfg.Seed),
		preview.WithCounterDuration(cfg.CounterDuration),
		preview.WithTokens(cfg.File.Tokens()),
	)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}

// previewConfig resolves the graph, counter and theme settings the preview uses.
func previewConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	if err := applyConfigFile(cmd, cfg); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return nil, err
		}
		cfg.Seed = seed
	}
	return cfg, nil
}
