package main

import (
	"github.com/nao1215/neuroscan/internal/report"
	"github.com/spf13/cobra"
)

// NewContentCmd creates the content command.
func NewContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Print the page copy as Markdown",
		Long: `Content prints every piece of copy the landing page shows, as Markdown:
features, statistics with their final values, the demo walkthrough, footer
links and contact details. Icon tags that have no glyph are listed at the end.

Examples:
  neuroscan content > CONTENT.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := report.NewInventoryWriter(cmd.OutOrStdout()).Write()
			return err
		},
	}
}
