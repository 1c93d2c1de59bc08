package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/nao1215/neuroscan/internal/config"
	"github.com/nao1215/neuroscan/internal/content"
	"github.com/nao1215/neuroscan/internal/demo"
	"github.com/nao1215/neuroscan/internal/inspect"
	"github.com/nao1215/neuroscan/internal/model"
	"github.com/nao1215/neuroscan/internal/neural"
	"github.com/nao1215/neuroscan/internal/site"
	"github.com/nao1215/neuroscan/internal/theme"
)

// Output file names, relative to the output directory.
const (
	IndexFile  = "index.html"
	RobotsFile = "robots.txt"
	AssetsDir  = "assets"

	// assetBase is the unfingerprinted asset name without extension.
	assetBase = "app"
)

// PrepareOutputStep creates the output directory and removes files left by
// an earlier build. Files the build does not generate are left alone.
type PrepareOutputStep struct {
	logger *slog.Logger
}

// NewPrepareOutputStep creates a new output preparation step.
func NewPrepareOutputStep(logger *slog.Logger) *PrepareOutputStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &PrepareOutputStep{logger: logger}
}

// Name returns the step name.
func (s *PrepareOutputStep) Name() string {
	return "prepare_output"
}

// Do executes the preparation step.
func (s *PrepareOutputStep) Do(_ context.Context, report *model.BuildReport) error {
	if err := os.MkdirAll(report.OutputDir, 0o755); err != nil { //nolint:gosec // site output is world readable
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	stale := []string{
		filepath.Join(report.OutputDir, IndexFile),
		filepath.Join(report.OutputDir, RobotsFile),
	}
	for _, ext := range []string{".css", ".js"} {
		matches, err := filepath.Glob(filepath.Join(report.OutputDir, AssetsDir, assetBase+".*"+ext))
		if err != nil {
			return fmt.Errorf("failed to list stale assets: %w", err)
		}
		stale = append(stale, matches...)
	}

	for _, p := range stale {
		err := os.Remove(p)
		switch {
		case err == nil:
			s.logger.Debug("removed stale file", "path", p)
		case os.IsNotExist(err):
		default:
			return fmt.Errorf("failed to remove stale file %s: %w", p, err)
		}
	}
	return nil
}

// WriteAssetsStep writes the stylesheet and the script under fingerprinted names.
type WriteAssetsStep struct {
	tokens      theme.Tokens
	concurrency int
	logger      *slog.Logger
}

// WriteAssetsStepOption configures a WriteAssetsStep.
type WriteAssetsStepOption func(*WriteAssetsStep)

// WithAssetTokens sets the design tokens the stylesheet is generated from.
func WithAssetTokens(t theme.Tokens) WriteAssetsStepOption {
	return func(s *WriteAssetsStep) {
		s.tokens = t
	}
}

// WithAssetConcurrency sets the number of assets written at once.
func WithAssetConcurrency(n int) WriteAssetsStepOption {
	return func(s *WriteAssetsStep) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithAssetLogger sets a custom logger for the asset step.
func WithAssetLogger(logger *slog.Logger) WriteAssetsStepOption {
	return func(s *WriteAssetsStep) {
		s.logger = logger
	}
}

// NewWriteAssetsStep creates a new asset step using the default tokens.
func NewWriteAssetsStep(opts ...WriteAssetsStepOption) *WriteAssetsStep {
	s := &WriteAssetsStep{
		tokens:      theme.Default(),
		concurrency: config.DefaultAssetConcurrency,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *WriteAssetsStep) Name() string {
	return "write_assets"
}

// Do executes the asset step.
func (s *WriteAssetsStep) Do(ctx context.Context, report *model.BuildReport) error {
	css := []byte(theme.Stylesheet(s.tokens))
	js := []byte(site.Script())

	stylesheet := FingerprintedPath(path.Join(AssetsDir, assetBase+".css"), css)
	script := FingerprintedPath(path.Join(AssetsDir, assetBase+".js"), js)

	writer := NewFileWriter(report.OutputDir,
		WithConcurrency(s.concurrency),
		WithWriterLogger(s.logger),
	)
	if err := writer.WriteAll(ctx, []File{
		{Path: stylesheet, Data: css},
		{Path: script, Data: js},
	}, report); err != nil {
		return err
	}

	report.Stylesheet = stylesheet
	report.Script = script
	return nil
}

// RenderPageStep draws the decorative graph and renders index.html.
type RenderPageStep struct {
	metadata        content.Metadata
	nodeCount       int
	maxConnections  int
	seed            uint64
	counterDuration time.Duration
	demo            *demo.Selector
	renderer        *site.Renderer
	logger          *slog.Logger
}

// RenderPageStepOption configures a RenderPageStep.
type RenderPageStepOption func(*RenderPageStep)

// WithMetadata sets the page head metadata.
func WithMetadata(m content.Metadata) RenderPageStepOption {
	return func(s *RenderPageStep) {
		s.metadata = m
	}
}

// WithGraph sets the decorative graph size and seed. A zero seed draws a
// different graph on every build.
func WithGraph(nodeCount, maxConnections int, seed uint64) RenderPageStepOption {
	return func(s *RenderPageStep) {
		s.nodeCount = nodeCount
		s.maxConnections = maxConnections
		s.seed = seed
	}
}

// WithCounterDuration sets the counter animation duration written into the page.
func WithCounterDuration(d time.Duration) RenderPageStepOption {
	return func(s *RenderPageStep) {
		s.counterDuration = d
	}
}

// WithDemoSelector sets the initially visible demo panel.
func WithDemoSelector(sel *demo.Selector) RenderPageStepOption {
	return func(s *RenderPageStep) {
		s.demo = sel
	}
}

// WithRenderLogger sets a custom logger for the render step and its renderer.
func WithRenderLogger(logger *slog.Logger) RenderPageStepOption {
	return func(s *RenderPageStep) {
		s.logger = logger
	}
}

// NewRenderPageStep creates a new render step with the default content.
func NewRenderPageStep(opts ...RenderPageStepOption) *RenderPageStep {
	s := &RenderPageStep{
		metadata:        content.DefaultMetadata(),
		nodeCount:       config.DefaultNodeCount,
		maxConnections:  config.DefaultMaxConnections,
		counterDuration: config.DefaultCounterDuration,
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.renderer = site.NewRenderer(s.logger)
	return s
}

// Name returns the step name.
func (s *RenderPageStep) Name() string {
	return "render_page"
}

// Do executes the render step.
func (s *RenderPageStep) Do(_ context.Context, report *model.BuildReport) error {
	graph := neural.NewSeededGenerator(s.seed).Generate(s.nodeCount, s.maxConnections)

	var buf bytes.Buffer
	err := s.renderer.Render(&buf, site.PageData{
		Metadata:        s.metadata,
		Graph:           graph,
		StylesheetHref:  report.Stylesheet,
		ScriptHref:      report.Script,
		CounterDuration: s.counterDuration,
		Demo:            s.demo,
	})
	if err != nil {
		return err
	}

	writer := NewFileWriter(report.OutputDir, WithWriterLogger(s.logger))
	if err := writer.Write(File{Path: IndexFile, Data: buf.Bytes()}, report); err != nil {
		return err
	}

	report.Seed = s.seed
	report.NodeCount = len(graph.Nodes)
	report.EdgeCount = len(graph.Edges)
	report.Sections = site.Sections()

	s.logger.Debug("page rendered",
		"nodes", report.NodeCount,
		"edges", report.EdgeCount,
		"missing_icons", len(s.renderer.MissingIcons()),
	)
	return nil
}

// VerifyPageStep reads index.html back and records structural problems as
// issues. Problems never fail the step.
type VerifyPageStep struct {
	parser *inspect.Parser
	logger *slog.Logger
}

// NewVerifyPageStep creates a new verification step.
func NewVerifyPageStep(logger *slog.Logger) *VerifyPageStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerifyPageStep{parser: inspect.NewParser(), logger: logger}
}

// Name returns the step name.
func (s *VerifyPageStep) Name() string {
	return "verify_page"
}

// Do executes the verification step.
func (s *VerifyPageStep) Do(_ context.Context, report *model.BuildReport) error {
	f, err := os.Open(filepath.Join(report.OutputDir, IndexFile))
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	result, err := s.parser.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse page: %w", err)
	}

	add := func(code, message, location string) {
		s.logger.Warn("page verification issue",
			"code", code,
			"message", message,
			"location", location,
		)
		report.AddIssue(code, message, location)
	}

	for _, id := range site.Sections() {
		if !result.HasID(id) {
			add(model.IssueMissingSection, "section "+id+" is not rendered", "#"+id)
		}
	}
	for _, target := range result.DanglingAnchors() {
		add(model.IssueDanglingAnchor, "link target #"+target+" does not exist", "#"+target)
	}

	if visible := result.VisiblePanels(); len(visible) != 1 {
		add(model.IssueVisiblePanels,
			fmt.Sprintf("%d demo panels are visible, want exactly 1", len(visible)), "#"+site.SectionDemo)
	}

	if result.DeclaredNodes != result.Nodes || result.Nodes != report.NodeCount {
		add(model.IssueNodeCountMismatch,
			fmt.Sprintf("graph declares %d nodes, renders %d, generated %d", result.DeclaredNodes, result.Nodes, report.NodeCount),
			"#"+site.SectionHero)
	}
	for _, e := range result.Edges {
		if e.SelfLoop() {
			add(model.IssueSelfLoopEdge, "edge "+e.ID+" connects node "+e.From+" to itself", "#"+site.SectionHero)
		}
	}

	for i, c := range result.Counters {
		v, err := c.EndValue()
		if err != nil || v < 0 {
			add(model.IssueInvalidCounter, "counter end "+strconv.Quote(c.End)+" is not a non-negative number",
				"#"+site.SectionStats+" [data-counter]:nth("+strconv.Itoa(i)+")")
		}
	}

	for _, tag := range result.MissingIcons {
		add(model.IssueMissingIcon, "icon "+strconv.Quote(tag)+" rendered as placeholder", "[data-icon-missing="+tag+"]")
	}

	for _, href := range append(append([]string{}, result.Stylesheets...), result.Scripts...) {
		if _, ok := report.File(href); !ok {
			add(model.IssueMissingAsset, "linked asset "+href+" was not written", href)
		}
	}

	if result.MetaTags["description"] == "" {
		add(model.IssueMissingDescription, "page has no meta description", "head")
	}

	s.logger.Debug("page verified",
		"errors", report.ErrorCount,
		"warnings", report.WarningCount,
		"info", report.InfoCount,
	)
	return nil
}

// WriteRobotsStep writes robots.txt from the robots metadata.
type WriteRobotsStep struct {
	metadata content.Metadata
	logger   *slog.Logger
}

// NewWriteRobotsStep creates a new robots.txt step.
func NewWriteRobotsStep(m content.Metadata, logger *slog.Logger) *WriteRobotsStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &WriteRobotsStep{metadata: m, logger: logger}
}

// Name returns the step name.
func (s *WriteRobotsStep) Name() string {
	return "write_robots"
}

// Do executes the robots step.
func (s *WriteRobotsStep) Do(_ context.Context, report *model.BuildReport) error {
	writer := NewFileWriter(report.OutputDir, WithWriterLogger(s.logger))
	return writer.Write(File{Path: RobotsFile, Data: []byte(site.RobotsTxt(s.metadata))}, report)
}

// BuildPipeline creates the site build pipeline for cfg.
//
// The first variadic parameter accepts pipeline options (WithLogger, etc).
func BuildPipeline(cfg *config.Config, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := New(append([]Option{WithLogger(logger)}, opts...)...)

	metadata := cfg.File.Metadata()
	p.AddSteps(
		NewPrepareOutputStep(logger),
		NewWriteAssetsStep(
			WithAssetTokens(cfg.File.Tokens()),
			WithAssetConcurrency(cfg.AssetConcurrency),
			WithAssetLogger(logger),
		),
		NewRenderPageStep(
			WithMetadata(metadata),
			WithGraph(cfg.NodeCount, cfg.MaxConnections, cfg.Seed),
			WithCounterDuration(cfg.CounterDuration),
			WithRenderLogger(logger),
		),
		NewVerifyPageStep(logger),
	)
	if cfg.Robots {
		p.AddStep(NewWriteRobotsStep(metadata, logger))
	}

	return p
}
