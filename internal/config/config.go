package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/neuroscan/internal/anim"
	"github.com/nao1215/neuroscan/internal/neural"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "neuroscan"

	// DefaultOutputDir is where the site is written when -d is not given.
	DefaultOutputDir = "dist"

	// DefaultNodeCount is the number of decorative nodes in the hero.
	DefaultNodeCount = neural.DefaultNodeCount

	// DefaultMaxConnections is the largest number of edges drawn per node.
	DefaultMaxConnections = neural.DefaultMaxConnections

	// DefaultCounterDuration is how long a stats counter takes to reach its target.
	DefaultCounterDuration = anim.DefaultDuration

	// DefaultAssetConcurrency is the number of assets written in parallel.
	DefaultAssetConcurrency = 2

	// MaxNodeCount bounds the hero graph. Each node is a DOM element and each
	// edge an SVG line, so larger values only bloat the page.
	MaxNodeCount = 500

	// MaxConnectionsLimit bounds the per-node fan-out.
	MaxConnectionsLimit = 10
)

// Config holds all options of a build. It is populated from defaults, then
// the configuration file, then command-line flags, and passed down
// explicitly rather than read from globals.
type Config struct {
	// OutputDir receives index.html, assets/ and robots.txt.
	OutputDir string

	// NodeCount is the number of decorative nodes. Zero renders an empty graph.
	NodeCount int

	// MaxConnections is the upper bound of the random per-node edge count.
	// Zero renders nodes without edges.
	MaxConnections int

	// Seed makes the decorative graph reproducible. Zero draws a fresh
	// random source on every build.
	Seed uint64

	// CounterDuration is the animation time of the stats counters.
	// Zero makes counters jump straight to their target.
	CounterDuration time.Duration

	// AssetConcurrency limits parallel asset writes.
	AssetConcurrency int

	// Robots enables writing robots.txt from the robots metadata.
	Robots bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path. When empty the
	// file is searched for, see FindConfigFile.
	ConfigFilePath string

	// File holds the loaded configuration file, or nil when there is none.
	File *File

	// JSONReport selects the JSON build report. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects the Markdown build report. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile redirects the build report from stdout to a file.
	ReportFile string
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputDir:        DefaultOutputDir,
		NodeCount:        DefaultNodeCount,
		MaxConnections:   DefaultMaxConnections,
		CounterDuration:  DefaultCounterDuration,
		AssetConcurrency: DefaultAssetConcurrency,
	}
}

// XDGConfigDir returns the XDG config directory for neuroscan.
// On Linux: ~/.config/neuroscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ApplyFile copies the graph and counter sections of f into c. Fields the
// file leaves unset keep their current values. A nil f is a no-op.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	c.File = f
	if f.Graph.Nodes != nil {
		c.NodeCount = *f.Graph.Nodes
	}
	if f.Graph.MaxConnections != nil {
		c.MaxConnections = *f.Graph.MaxConnections
	}
	if f.Graph.Seed != nil {
		c.Seed = *f.Graph.Seed
	}
	if f.Counter.Duration != nil {
		c.CounterDuration = *f.Counter.Duration
	}
	if f.Output.Dir != "" {
		c.OutputDir = f.Output.Dir
	}
	if f.Output.Robots != nil {
		c.Robots = *f.Output.Robots
	}
}

// Validate checks the configuration and returns the first problem found.
// It runs before any file is written.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}
	if c.NodeCount < 0 || c.NodeCount > MaxNodeCount {
		return ErrInvalidNodeCount
	}
	if c.MaxConnections < 0 || c.MaxConnections > MaxConnectionsLimit {
		return ErrInvalidMaxConnections
	}
	if c.CounterDuration < 0 {
		return ErrInvalidCounterDuration
	}
	if c.AssetConcurrency <= 0 {
		return ErrInvalidAssetConcurrency
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.File != nil {
		return c.File.Validate()
	}
	return nil
}
