package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for NeuroScan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neuroscan",
		Short: "Static site generator for the NeuroScan Pro landing page",
		Long: `NeuroScan builds the NeuroScan Pro marketing page: a hero with a decorative
neural graph, the feature grid, animated statistics, an interactive three-step
demo and the footer.

The build writes index.html and fingerprinted assets to an output directory,
verifies the result and prints a build report. The preview command shows the
same page in the terminal.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewBuildCmd())
	cmd.AddCommand(NewContentCmd())
	cmd.AddCommand(NewPreviewCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
