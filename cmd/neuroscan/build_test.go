package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/neuroscan/internal/config"
	"github.com/nao1215/neuroscan/internal/log"
	"github.com/nao1215/neuroscan/internal/model"
	"github.com/nao1215/neuroscan/internal/pipeline"
)

// writeConfig writes a configuration file into a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func parseBuildConfig(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()

	cmd := NewBuildCmd()
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return buildConfig(cmd)
}

// TestNewBuildCmd tests the build command flags.
func TestNewBuildCmd(t *testing.T) {
	t.Parallel()

	cmd := NewBuildCmd()
	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"dir", "d", config.DefaultOutputDir},
		{"nodes", "", "30"},
		{"max-connections", "", "2"},
		{"seed", "", "0"},
		{"counter-duration", "", "2s"},
		{"concurrency", "", "2"},
		{"robots", "", "false"},
		{"config", "c", ""},
		{"json", "j", "false"},
		{"markdown", "m", "false"},
		{"output", "o", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.def {
				t.Errorf("expected default %q, got %q", tt.def, flag.DefValue)
			}
		})
	}
}

// TestBuildConfig tests how defaults, the config file and flags combine.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	fileBody := `graph:
  nodes: 12
  maxConnections: 3
  seed: 99
counter:
  duration: 500ms
output:
  dir: public
  robots: true
`

	t.Run("config file overrides defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := parseBuildConfig(t, "-c", writeConfig(t, fileBody))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.NodeCount != 12 || cfg.MaxConnections != 3 || cfg.Seed != 99 {
			t.Errorf("graph settings not applied: %+v", cfg)
		}
		if cfg.CounterDuration != 500*time.Millisecond {
			t.Errorf("expected 500ms, got %s", cfg.CounterDuration)
		}
		if cfg.OutputDir != "public" || !cfg.Robots {
			t.Errorf("output settings not applied: dir %q robots %t", cfg.OutputDir, cfg.Robots)
		}
		if cfg.File == nil {
			t.Error("expected loaded file on config")
		}
	})

	t.Run("flags override the config file", func(t *testing.T) {
		t.Parallel()

		cfg, err := parseBuildConfig(t,
			"-c", writeConfig(t, fileBody),
			"--nodes", "5", "--seed", "7", "-d", "out", "--counter-duration", "0s", "--robots=false",
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.NodeCount != 5 || cfg.Seed != 7 || cfg.OutputDir != "out" {
			t.Errorf("flags not applied: %+v", cfg)
		}
		if cfg.MaxConnections != 3 {
			t.Errorf("expected file value 3 for unset flag, got %d", cfg.MaxConnections)
		}
		if cfg.CounterDuration != 0 || cfg.Robots {
			t.Errorf("explicit zero flags not applied: %+v", cfg)
		}
	})

	t.Run("report flags", func(t *testing.T) {
		t.Parallel()

		cfg, err := parseBuildConfig(t, "-c", writeConfig(t, ""), "-j", "-o", "report.json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.JSONReport || cfg.MarkdownReport || cfg.ReportFile != "report.json" {
			t.Errorf("unexpected report settings: %+v", cfg)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()

		_, err := parseBuildConfig(t, "-c", filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid config file", func(t *testing.T) {
		t.Parallel()

		_, err := parseBuildConfig(t, "-c", writeConfig(t, "theme:\n  colors:\n    medical:\n      primary: blue\n"))
		if err == nil {
			t.Error("expected error for invalid color")
		}
	})
}

// TestRunBuildCmd tests the build command end to end.
func TestRunBuildCmd(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, args ...string) (string, error) {
		t.Helper()

		var out, errOut bytes.Buffer
		cmd := NewBuildCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs(append([]string{"-c", writeConfig(t, "")}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	t.Run("writes the site and a text report", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out, err := run(t, "-d", dir, "--seed", "42", "--robots")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, name := range []string{pipeline.IndexFile, pipeline.RobotsFile} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Errorf("expected %s: %v", name, err)
			}
		}
		if !strings.Contains(out, "NEUROSCAN BUILD REPORT") {
			t.Errorf("expected text report, got %q", out)
		}
	})

	t.Run("writes a JSON report to a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		reportPath := filepath.Join(t.TempDir(), "reports", "build.json")
		stdout, err := run(t, "-d", dir, "--seed", "1", "-j", "-o", reportPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "NEUROSCAN BUILD REPORT") {
			t.Errorf("expected text summary on stdout, got %q", stdout)
		}

		data, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		var got struct {
			Version string             `json:"version"`
			Report  *model.BuildReport `json:"report"`
		}
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.Report == nil || got.Report.Seed != 1 || got.Report.OutputDir != dir {
			t.Errorf("unexpected report: %+v", got.Report)
		}
	})

	t.Run("rejects conflicting report formats", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "-d", t.TempDir(), "-j", "-m")
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("rejects invalid node count before writing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		_, err := run(t, "-d", dir, "--nodes=-1")
		if !errors.Is(err, config.ErrInvalidNodeCount) {
			t.Errorf("expected ErrInvalidNodeCount, got %v", err)
		}
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Error("expected nothing to be written")
		}
	})
}

// TestRunBuildCancelled tests that a cancelled build reports and fails.
func TestRunBuildCancelled(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.OutputDir = t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runBuild(ctx, cfg, log.Discard(), &out)
	if err == nil || !strings.Contains(err.Error(), "cancelled") {
		t.Errorf("expected cancellation error, got %v", err)
	}
	if !strings.Contains(out.String(), "CANCELLED") {
		t.Errorf("expected cancelled status in report, got %q", out.String())
	}
}

// TestOutputReport tests report format selection.
func TestOutputReport(t *testing.T) {
	t.Parallel()

	r := model.NewBuildReport("dist")

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"text", config.Config{}, "NEUROSCAN BUILD REPORT"},
		{"markdown", config.Config{MarkdownReport: true}, "# NeuroScan Build Report"},
		{"json", config.Config{JSONReport: true}, `"output_dir": "dist"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := outputReport(&tt.cfg, r, &buf); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, buf.String())
			}
		})
	}
}
