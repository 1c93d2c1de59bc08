package config

import (
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/nao1215/neuroscan/internal/content"
	"github.com/nao1215/neuroscan/internal/theme"
)

// File is the structure of the .neuroscan configuration file.
type File struct {
	// Site overrides the page metadata.
	Site SiteSection `yaml:"site,omitempty"`

	// Theme overrides design tokens.
	Theme theme.Overrides `yaml:"theme,omitempty"`

	// Graph configures the decorative hero graph.
	Graph GraphSection `yaml:"graph,omitempty"`

	// Counter configures the stats counters.
	Counter CounterSection `yaml:"counter,omitempty"`

	// Output configures where and what the build writes.
	Output OutputSection `yaml:"output,omitempty"`
}

// SiteSection holds metadata overrides. Empty fields keep the defaults.
type SiteSection struct {
	Title          string   `yaml:"title,omitempty"`
	Description    string   `yaml:"description,omitempty"`
	Keywords       []string `yaml:"keywords,omitempty"`
	URL            string   `yaml:"url,omitempty"`
	Locale         string   `yaml:"locale,omitempty"`
	TwitterCreator string   `yaml:"twitterCreator,omitempty"`
	// Verification is the search console verification code.
	Verification string `yaml:"verification,omitempty"`
	// NoIndex asks crawlers not to index or follow the page.
	NoIndex bool `yaml:"noIndex,omitempty"`
}

// GraphSection mirrors the --nodes, --max-connections and --seed flags.
// Pointers distinguish an explicit zero from an absent key.
type GraphSection struct {
	Nodes          *int    `yaml:"nodes,omitempty"`
	MaxConnections *int    `yaml:"maxConnections,omitempty"`
	Seed           *uint64 `yaml:"seed,omitempty"`
}

// CounterSection mirrors the --counter-duration flag.
type CounterSection struct {
	Duration *time.Duration `yaml:"duration,omitempty"`
}

// OutputSection mirrors the -d and --robots flags.
type OutputSection struct {
	Dir    string `yaml:"dir,omitempty"`
	Robots *bool  `yaml:"robots,omitempty"`
}

// Validate checks the site and theme sections.
func (f *File) Validate() error {
	if f.Site.URL != "" {
		u, err := url.Parse(f.Site.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidURL, f.Site.URL)
		}
	}
	if err := f.Theme.Validate(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// Metadata returns the default page metadata with the site section applied.
// A nil File yields the defaults.
func (f *File) Metadata() content.Metadata {
	m := content.DefaultMetadata()
	if f == nil {
		return m
	}
	s := f.Site
	if s.Title != "" {
		m.Title = s.Title
		m.OpenGraph.Title = s.Title
		m.Twitter.Title = s.Title
	}
	if s.Description != "" {
		m.Description = s.Description
		m.OpenGraph.Description = s.Description
		m.Twitter.Description = s.Description
	}
	if len(s.Keywords) > 0 {
		m.Keywords = slices.Clone(s.Keywords)
	}
	if s.URL != "" {
		m.OpenGraph.URL = s.URL
	}
	if s.Locale != "" {
		m.Locale = s.Locale
	}
	if s.TwitterCreator != "" {
		m.Twitter.Creator = s.TwitterCreator
	}
	if s.Verification != "" {
		m.Verification = s.Verification
	}
	if s.NoIndex {
		m.Robots.Index = false
		m.Robots.Follow = false
	}
	return m
}

// Tokens returns the default theme tokens with the theme section applied.
// A nil File yields the defaults.
func (f *File) Tokens() theme.Tokens {
	t := theme.Default()
	if f == nil {
		return t
	}
	return t.Apply(f.Theme)
}
