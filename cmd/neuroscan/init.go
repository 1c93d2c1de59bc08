package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nao1215/neuroscan/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/neuroscan.yaml
var configTemplate []byte

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .neuroscan configuration file",
		Long: `Init writes a commented .neuroscan file with the default graph, counter and
output settings. Metadata and theme overrides are included as commented
examples. Build and preview pick the file up from the current directory or
from the XDG config directory.

Examples:
  neuroscan init
  neuroscan init -o ~/.config/neuroscan/config.yaml
  neuroscan init -f`,
		RunE: runInitCmd,
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", config.DefaultConfigFile, "Path of the configuration file to write")
	flags.BoolP("force", "f", false, "Replace an existing file")

	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if err := writeConfigTemplate(path, force); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), `Created configuration file: %s

Edit it to change the page metadata, theme colors, animation timing
and the hero graph size or seed.
`, path)
	return nil
}

// writeConfigTemplate creates path and its parents. Without force an
// existing file is left untouched.
func writeConfigTemplate(path string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flag, 0o600) //nolint:gosec // path is chosen by the user
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", path)
	}
	if err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}

	if _, err := f.Write(configTemplate); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return f.Close()
}
