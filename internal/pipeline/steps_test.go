package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/neuroscan/internal/config"
	"github.com/nao1215/neuroscan/internal/content"
	"github.com/nao1215/neuroscan/internal/model"
	"github.com/nao1215/neuroscan/internal/theme"
)

func buildSite(t *testing.T, cfg *config.Config) *model.BuildReport {
	t.Helper()

	report := model.NewBuildReport(cfg.OutputDir)
	if err := BuildPipeline(cfg, discardLogger()).Execute(context.Background(), report); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return report
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.NewConfig()
	cfg.OutputDir = t.TempDir()
	cfg.Seed = 42
	return cfg
}

// TestStepNames tests that every step reports its name.
func TestStepNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step Step
		want string
	}{
		{NewPrepareOutputStep(nil), "prepare_output"},
		{NewWriteAssetsStep(), "write_assets"},
		{NewRenderPageStep(), "render_page"},
		{NewVerifyPageStep(nil), "verify_page"},
		{NewWriteRobotsStep(content.DefaultMetadata(), nil), "write_robots"},
	}
	for _, tt := range tests {
		if got := tt.step.Name(); got != tt.want {
			t.Errorf("expected name %q, got %q", tt.want, got)
		}
	}
}

// TestBuildPipeline tests the assembled build.
func TestBuildPipeline(t *testing.T) {
	t.Parallel()

	t.Run("assembles steps in order", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		want := []string{"prepare_output", "write_assets", "render_page", "verify_page"}
		if diff := cmp.Diff(want, BuildPipeline(cfg, nil).StepNames()); diff != "" {
			t.Errorf("step names mismatch (-want +got):\n%s", diff)
		}

		cfg.Robots = true
		want = append(want, "write_robots")
		if diff := cmp.Diff(want, BuildPipeline(cfg, nil).StepNames()); diff != "" {
			t.Errorf("step names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("writes page and fingerprinted assets", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t)
		report := buildSite(t, cfg)

		if !strings.HasPrefix(report.Stylesheet, "assets/app.") || !strings.HasSuffix(report.Stylesheet, ".css") {
			t.Errorf("unexpected stylesheet path %q", report.Stylesheet)
		}
		if !strings.HasPrefix(report.Script, "assets/app.") || !strings.HasSuffix(report.Script, ".js") {
			t.Errorf("unexpected script path %q", report.Script)
		}

		var paths []string
		for _, f := range report.Files {
			paths = append(paths, f.Path)
		}
		want := []string{report.Stylesheet, report.Script, IndexFile}
		slices.Sort(want)
		if diff := cmp.Diff(want, paths); diff != "" {
			t.Errorf("written files mismatch (-want +got):\n%s", diff)
		}

		page, err := os.ReadFile(filepath.Join(cfg.OutputDir, IndexFile))
		if err != nil {
			t.Fatalf("failed to read page: %v", err)
		}
		if !strings.Contains(string(page), `href="`+report.Stylesheet+`"`) {
			t.Error("page does not link the stylesheet")
		}
		if !strings.Contains(string(page), `src="`+report.Script+`"`) {
			t.Error("page does not link the script")
		}

		if report.NodeCount != config.DefaultNodeCount {
			t.Errorf("expected %d nodes, got %d", config.DefaultNodeCount, report.NodeCount)
		}
		if report.Seed != 42 {
			t.Errorf("expected seed 42, got %d", report.Seed)
		}
		if report.HasErrors() {
			t.Errorf("expected no verification errors, got %+v", report.Issues)
		}
		if report.WarningCount != 0 {
			t.Errorf("expected no warnings, got %+v", report.IssuesBySeverity(model.SeverityWarning))
		}
	})

	t.Run("reports dangling links as info", func(t *testing.T) {
		t.Parallel()

		report := buildSite(t, testConfig(t))
		infos := report.IssuesBySeverity(model.SeverityInfo)
		var locations []string
		for _, i := range infos {
			if i.Code != model.IssueDanglingAnchor {
				t.Errorf("unexpected info issue %+v", i)
			}
			locations = append(locations, i.Location)
		}
		for _, want := range []string{"#pricing", "#privacy", "#github"} {
			if !slices.Contains(locations, want) {
				t.Errorf("expected dangling anchor %s, got %v", want, locations)
			}
		}
		if slices.Contains(locations, "#demo") {
			t.Error("existing section reported as dangling")
		}
	})

	t.Run("same seed builds identical output", func(t *testing.T) {
		t.Parallel()

		a := testConfig(t)
		b := testConfig(t)
		ra := buildSite(t, a)
		rb := buildSite(t, b)

		if diff := cmp.Diff(ra.Files, rb.Files); diff != "" {
			t.Errorf("outputs differ (-a +b):\n%s", diff)
		}
	})

	t.Run("different seeds build different pages", func(t *testing.T) {
		t.Parallel()

		a := testConfig(t)
		b := testConfig(t)
		b.Seed = 43
		pa, _ := buildSite(t, a).File(IndexFile)
		pb, _ := buildSite(t, b).File(IndexFile)

		if pa.Hash == pb.Hash {
			t.Error("expected different page hashes")
		}
	})

	t.Run("writes robots.txt when enabled", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t)
		cfg.Robots = true
		report := buildSite(t, cfg)

		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, RobotsFile))
		if err != nil {
			t.Fatalf("failed to read robots.txt: %v", err)
		}
		if !strings.HasPrefix(string(data), "User-agent: *\nAllow: /\n") {
			t.Errorf("unexpected robots.txt:\n%s", data)
		}
		if _, ok := report.File(RobotsFile); !ok {
			t.Error("robots.txt not recorded in report")
		}
	})

	t.Run("applies theme overrides from the config file", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t)
		cfg.File = &config.File{Theme: theme.Overrides{
			Colors: map[string]theme.Scale{theme.ScaleMedical: {"primary": "#123456"}},
		}}
		report := buildSite(t, cfg)

		css, err := os.ReadFile(filepath.Join(cfg.OutputDir, filepath.FromSlash(report.Stylesheet)))
		if err != nil {
			t.Fatalf("failed to read stylesheet: %v", err)
		}
		if !strings.Contains(string(css), "--color-medical-primary: #123456;") {
			t.Error("stylesheet does not carry the override")
		}
	})
}

// TestPrepareOutputStep tests stale file removal.
func TestPrepareOutputStep(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assets := filepath.Join(dir, AssetsDir)
	if err := os.MkdirAll(assets, 0o750); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		filepath.Join(dir, IndexFile),
		filepath.Join(dir, RobotsFile),
		filepath.Join(assets, "app.deadbeef.css"),
		filepath.Join(assets, "app.deadbeef.js"),
		filepath.Join(assets, "logo.svg"),
		filepath.Join(dir, "CNAME"),
	} {
		if err := os.WriteFile(name, []byte("old"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	report := model.NewBuildReport(dir)
	if err := NewPrepareOutputStep(discardLogger()).Do(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, gone := range []string{IndexFile, RobotsFile, "assets/app.deadbeef.css", "assets/app.deadbeef.js"} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(gone))); !os.IsNotExist(err) {
			t.Errorf("expected %s to be removed", gone)
		}
	}
	for _, kept := range []string{"assets/logo.svg", "CNAME"} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(kept))); err != nil {
			t.Errorf("expected %s to be kept: %v", kept, err)
		}
	}
}

// TestPrepareOutputStepCreatesDirectory tests that a missing directory is created.
func TestPrepareOutputStepCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := NewPrepareOutputStep(discardLogger()).Do(context.Background(), model.NewBuildReport(dir)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected directory to exist: %v", err)
	}
}

// TestVerifyPageStep tests verification against hand-written pages.
func TestVerifyPageStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  string
		nodes int
		codes []string
	}{
		{
			name: "broken page",
			page: `<html><head><link rel="stylesheet" href="assets/missing.css"></head><body>
<section id="hero"><div data-node-count="2"><svg><line data-edge="0-0" data-from="0" data-to="0"></line></svg><span data-node="0"></span></div></section>
<section id="stats"><div data-counter data-counter-end="-3">0</div></section>
<section id="demo"><div data-demo-panel="1"></div><div data-demo-panel="2"></div></section>
<span data-icon-missing="ghost"></span>
</body></html>`,
			nodes: 2,
			codes: []string{
				model.IssueMissingSection,
				model.IssueMissingSection,
				model.IssueVisiblePanels,
				model.IssueNodeCountMismatch,
				model.IssueSelfLoopEdge,
				model.IssueInvalidCounter,
				model.IssueMissingIcon,
				model.IssueMissingAsset,
				model.IssueMissingDescription,
			},
		},
		{
			name: "valid page",
			page: `<html><head><meta name="description" content="d"></head><body>
<section id="hero"><div data-node-count="1"><span data-node="0"></span></div></section>
<section id="features"></section>
<section id="stats"><div data-counter data-counter-end="45">0</div></section>
<section id="demo"><div data-demo-panel="1"></div><div data-demo-panel="2" hidden></div></section>
<footer id="contact"></footer>
</body></html>`,
			nodes: 1,
			codes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, IndexFile), []byte(tt.page), 0o600); err != nil {
				t.Fatal(err)
			}
			report := model.NewBuildReport(dir)
			report.NodeCount = tt.nodes

			if err := NewVerifyPageStep(discardLogger()).Do(context.Background(), report); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var codes []string
			for _, i := range report.Issues {
				codes = append(codes, i.Code)
			}
			if diff := cmp.Diff(tt.codes, codes); diff != "" {
				t.Errorf("issue codes mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("fails without a page", func(t *testing.T) {
		t.Parallel()

		err := NewVerifyPageStep(discardLogger()).Do(context.Background(), model.NewBuildReport(t.TempDir()))
		if err == nil {
			t.Error("expected error for missing page")
		}
	})
}
