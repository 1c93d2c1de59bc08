package site

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nao1215/neuroscan/internal/content"
	"github.com/nao1215/neuroscan/internal/demo"
	"github.com/nao1215/neuroscan/internal/neural"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Section ids in render order. Navigation links and verification refer to them.
const (
	SectionHero     = "hero"
	SectionFeatures = "features"
	SectionStats    = "stats"
	SectionDemo     = "demo"
	SectionContact  = "contact"
)

// Sections returns the section ids in the order the page renders them.
func Sections() []string {
	return []string{SectionHero, SectionFeatures, SectionStats, SectionDemo, SectionContact}
}

// PageData is everything a page render depends on. Zero-valued list fields
// fall back to the canonical content.
type PageData struct {
	Metadata content.Metadata

	// Graph is the decorative hero graph.
	Graph neural.Graph

	// StylesheetHref and ScriptHref link the fingerprinted assets.
	StylesheetHref string
	ScriptHref     string

	// CounterDuration is written into data-counter-duration. Zero makes the
	// counters jump straight to their target.
	CounterDuration time.Duration

	// Demo holds the initially visible panel and sample scan.
	// Nil means a fresh selector with the default step.
	Demo *demo.Selector

	Features []content.FeatureEntry
	Stats    []content.StatEntry
}

func (d PageData) withDefaults() PageData {
	if d.Demo == nil {
		d.Demo = demo.NewSelector()
	}
	if d.Features == nil {
		d.Features = content.Features()
	}
	if d.Stats == nil {
		d.Stats = content.Stats()
	}
	return d
}

// Renderer builds pages and keeps track of icon tags it could not resolve.
// It is safe for concurrent use.
type Renderer struct {
	logger *slog.Logger

	mu      sync.Mutex
	missing map[string]struct{}
}

// NewRenderer returns a Renderer logging to logger. A nil logger discards.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{logger: logger, missing: make(map[string]struct{})}
}

func (r *Renderer) noteMissing(tag string) {
	r.mu.Lock()
	_, seen := r.missing[tag]
	r.missing[tag] = struct{}{}
	r.mu.Unlock()
	if !seen {
		r.logger.Warn("unknown icon tag, rendering placeholder", "icon", tag)
	}
}

// MissingIcons returns the unknown icon tags seen so far, sorted.
func (r *Renderer) MissingIcons() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	tags := make([]string, 0, len(r.missing))
	for tag := range r.missing {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Page returns the full HTML document.
func (r *Renderer) Page(d PageData) g.Node {
	d = d.withDefaults()
	m := d.Metadata

	return h.Doctype(
		h.HTML(
			h.Lang(m.Locale),
			r.head(d),
			h.Body(
				r.navigation(),
				h.Main(
					r.hero(d.Graph),
					r.features(d.Features),
					r.stats(d.Stats, d.CounterDuration),
					r.demo(d.Demo),
				),
				r.footer(),
				g.If(d.ScriptHref != "", h.Script(h.Src(d.ScriptHref), h.Defer())),
			),
		),
	)
}

// Render writes the page to w.
func (r *Renderer) Render(w io.Writer, d PageData) error {
	if err := r.Page(d).Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func (r *Renderer) head(d PageData) g.Node {
	m := d.Metadata
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(m.Title)),
		metaName("description", m.Description),
		metaName("keywords", strings.Join(m.Keywords, ", ")),
		g.Group(g.Map(m.Authors, func(a string) g.Node { return metaName("author", a) })),
		metaName("creator", m.Creator),
		metaName("robots", robotsDirective(m.Robots)),
		metaName("googlebot", googlebotDirective(m.Robots)),
		metaProperty("og:type", m.OpenGraph.Type),
		metaProperty("og:locale", m.OpenGraph.Locale),
		metaProperty("og:url", m.OpenGraph.URL),
		metaProperty("og:title", m.OpenGraph.Title),
		metaProperty("og:description", m.OpenGraph.Description),
		metaProperty("og:site_name", m.OpenGraph.SiteName),
		metaName("twitter:card", m.Twitter.Card),
		metaName("twitter:title", m.Twitter.Title),
		metaName("twitter:description", m.Twitter.Description),
		metaName("twitter:creator", m.Twitter.Creator),
		metaName("google-site-verification", m.Verification),
		g.If(d.StylesheetHref != "", h.Link(h.Rel("stylesheet"), h.Href(d.StylesheetHref))),
		g.El("noscript", h.StyleEl(g.Raw("[data-reveal]{opacity:1;transform:none}"))),
	)
}

func metaName(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Meta(h.Name(name), h.Content(value))
}

func metaProperty(property, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Meta(g.Attr("property", property), h.Content(value))
}

func robotsDirective(r content.Robots) string {
	index, follow := "noindex", "nofollow"
	if r.Index {
		index = "index"
	}
	if r.Follow {
		follow = "follow"
	}
	return index + ", " + follow
}

func googlebotDirective(r content.Robots) string {
	return strings.Join([]string{
		robotsDirective(r),
		"max-video-preview:" + strconv.Itoa(r.MaxVideoPreview),
		"max-image-preview:" + r.MaxImagePreview,
		"max-snippet:" + strconv.Itoa(r.MaxSnippet),
	}, ", ")
}

// RobotsTxt renders robots.txt for the metadata. sitemap may be empty.
func RobotsTxt(m content.Metadata) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if m.Robots.Index {
		b.WriteString("Allow: /\n")
	} else {
		b.WriteString("Disallow: /\n")
	}
	if u := strings.TrimRight(m.OpenGraph.URL, "/"); u != "" && m.Robots.Index {
		b.WriteString("\nSitemap: " + u + "/sitemap.xml\n")
	}
	return b.String()
}

func sectionHeader(badgeIcon g.Node, badge, lead, highlight, body string) g.Node {
	return h.Div(
		h.Class("section-header"),
		g.Attr("data-reveal"),
		h.Span(h.Class("hero-badge badge-light"), badgeIcon, g.Text(badge)),
		h.H2(
			h.Span(g.Text(lead)),
			h.Br(),
			h.Span(h.Class("gradient-text"), g.Text(highlight)),
		),
		h.P(g.Text(body)),
	)
}

func (r *Renderer) navigation() g.Node {
	links := content.NavLinks()
	linkItems := g.Map(links, func(l content.NavLink) g.Node {
		return h.Li(h.A(h.Href(l.Href), g.Text(l.Label)))
	})
	return h.Nav(
		h.Class("nav"),
		g.Attr("aria-label", "Primary"),
		h.Div(
			h.Class("container nav-inner"),
			h.A(h.Href("#"+SectionHero), h.Class("brand"), h.Span(h.Class("brand-mark"), logo()), g.Text(content.ProductName)),
			h.Ul(h.Class("nav-links"), g.Group(linkItems)),
			h.Div(
				h.Class("nav-actions"),
				h.Button(h.Type("button"), h.Class("btn btn-outline"), g.Text("Sign In")),
				h.Button(h.Type("button"), h.Class("btn btn-primary"), g.Text("Start Free Trial")),
			),
			h.Button(
				h.Type("button"),
				h.Class("nav-toggle"),
				g.Attr("data-nav-toggle"),
				g.Attr("aria-expanded", "false"),
				g.Attr("aria-controls", "nav-mobile"),
				g.Attr("aria-label", "Toggle navigation"),
				r.Icon("menu"),
			),
		),
		h.Div(
			h.ID("nav-mobile"),
			h.Class("nav-mobile"),
			g.Attr("hidden"),
			h.Ul(g.Group(g.Map(links, func(l content.NavLink) g.Node {
				return h.Li(h.A(h.Href(l.Href), g.Text(l.Label)))
			}))),
		),
	)
}
