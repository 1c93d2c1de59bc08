package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/neuroscan/internal/config"
	"github.com/nao1215/neuroscan/internal/log"
	"github.com/nao1215/neuroscan/internal/model"
	"github.com/nao1215/neuroscan/internal/pipeline"
	"github.com/nao1215/neuroscan/internal/report"
	"github.com/spf13/cobra"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the landing page",
		Long: `Build renders the landing page and writes it to the output directory.

The build runs these steps in order:
- prepare the output directory and remove stale generated files
- write the stylesheet and script under content-hashed names
- render index.html with a freshly drawn decorative graph
- verify the rendered page (sections, links, demo panels, counters, icons)
- write robots.txt when --robots is set

Verification problems are listed in the build report but do not fail the build.

Examples:
  # Build into ./dist
  neuroscan build

  # Reproducible graph with 40 nodes
  neuroscan build --nodes 40 --seed 42

  # Markdown report written to a file
  neuroscan build -m -o build-report.md

Configuration file (.neuroscan) example:
  site:
    title: "NeuroScan Pro"
    url: "https://neuroscan.example.com"
  graph:
    nodes: 40
    seed: 42
  counter:
    duration: 1500ms`,
		Args: cobra.NoArgs,
		RunE: runBuildCmd,
	}

	cmd.Flags().StringP("dir", "d", config.DefaultOutputDir,
		"Output directory for the generated site")

	cmd.Flags().Int("nodes", config.DefaultNodeCount,
		"Number of decorative nodes in the hero graph")
	cmd.Flags().Int("max-connections", config.DefaultMaxConnections,
		"Largest number of edges drawn from each node")
	cmd.Flags().Uint64("seed", 0,
		"Seed for the hero graph (0 draws a new graph on every build)")
	cmd.Flags().Duration("counter-duration", config.DefaultCounterDuration,
		"Animation time of the statistics counters")
	cmd.Flags().Int("concurrency", config.DefaultAssetConcurrency,
		"Number of assets written in parallel")
	cmd.Flags().Bool("robots", false,
		"Write robots.txt from the robots metadata")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .neuroscan in current, XDG config or home directory)")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runBuildCmd executes the build command.
func runBuildCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runBuild(ctx, cfg, logger, cmd.OutOrStdout())
}

// buildConfig layers defaults, the configuration file and explicitly set
// flags, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	if err := applyConfigFile(cmd, cfg); err != nil {
		return nil, err
	}

	var err error
	if flags.Changed("dir") {
		if cfg.OutputDir, err = flags.GetString("dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("nodes") {
		if cfg.NodeCount, err = flags.GetInt("nodes"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-connections") {
		if cfg.MaxConnections, err = flags.GetInt("max-connections"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("counter-duration") {
		if cfg.CounterDuration, err = flags.GetDuration("counter-duration"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("robots") {
		if cfg.Robots, err = flags.GetBool("robots"); err != nil {
			return nil, err
		}
	}

	if cfg.AssetConcurrency, err = flags.GetInt("concurrency"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// applyConfigFile loads the file named by --config, or the first one found
// on the search path, into cfg. An explicit path must exist; without one a
// missing file is not an error.
func applyConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		f, err := config.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(f)
	case cfg.ConfigFilePath != "":
		return fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}
	return nil
}

// runBuild executes the pipeline and writes the report. The report is
// written even when a step fails, so partial output is visible.
func runBuild(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	logger.Info("starting build",
		"outputDir", cfg.OutputDir,
		"nodes", cfg.NodeCount,
		"maxConnections", cfg.MaxConnections,
		"seed", cfg.Seed,
	)

	buildReport := model.NewBuildReport(cfg.OutputDir)
	buildErr := pipeline.BuildPipeline(cfg, logger).Execute(ctx, buildReport)

	if err := outputReport(cfg, buildReport, stdout); err != nil {
		logger.Error("report failed", "error", err)
		if buildErr == nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if buildErr != nil {
		if errors.Is(buildErr, context.Canceled) {
			return errors.New("build cancelled")
		}
		return fmt.Errorf("build failed: %w", buildErr)
	}
	return nil
}

// outputReport writes the build report in the requested format. When a
// JSON or Markdown report goes to a file, stdout still gets the text summary.
func outputReport(cfg *config.Config, buildReport *model.BuildReport, stdout io.Writer) error {
	if cfg.ReportFile == "" {
		_, err := reportWriter(cfg, stdout).Write(buildReport)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.ReportFile), 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := reportWriter(cfg, f)
	if cfg.JSONReport || cfg.MarkdownReport {
		w = report.NewMultiWriter(w, report.NewSimpleWriter(stdout))
	}
	_, err = w.Write(buildReport)
	return err
}

func reportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}
