package site

import (
	"fmt"
	"strconv"

	"github.com/nao1215/neuroscan/internal/content"
	"github.com/nao1215/neuroscan/internal/neural"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// nodePixels is the rendered diameter of a node of size 1.
const nodePixels = 8

func (r *Renderer) hero(graph neural.Graph) g.Node {
	highlights := content.HeroHighlights()
	return h.Section(
		h.ID(SectionHero),
		h.Class("hero"),
		h.Div(
			h.Class("container hero-inner"),
			h.Div(
				h.Class("hero-copy"),
				g.Attr("data-reveal"),
				h.Span(h.Class("hero-badge"), r.Icon("shield", "icon-sm"), g.Text("HIPAA Compliant • FDA Approved")),
				h.H1(
					h.Span(h.Class("gradient-text"), g.Text("NeuroScan")),
					h.Br(),
					h.Span(g.Text("Pro")),
				),
				h.P(
					h.Class("hero-lead"),
					g.Text("Revolutionary AI-powered neuroimaging platform that transforms brain scan analysis with "),
					h.Strong(h.Class("text-medical-primary"), g.Text("98.7% accuracy")),
					g.Text(" and "),
					h.Strong(h.Class("text-neural-600"), g.Text("real-time processing")),
					g.Text("."),
				),
				h.Ul(h.Class("hero-highlights"), g.Group(g.Map(highlights, func(hl content.HeroHighlight) g.Node {
					return h.Li(r.Icon(hl.Icon, "icon-sm text-medical-primary"), g.Text(hl.Text))
				}))),
				h.Div(
					h.Class("hero-actions"),
					h.A(h.Href("#"+SectionDemo), h.Class("btn btn-primary"), g.Text("Start Free Trial"), r.Icon("arrow-right", "icon-sm")),
					h.A(h.Href("#"+SectionDemo), h.Class("btn btn-outline"), r.Icon("play", "icon-sm"), g.Text("Watch Demo")),
				),
			),
			h.Div(
				h.Class("hero-visual"),
				h.Div(h.Class("hero-glow animate-pulse-slow")),
				heroGraph(graph),
				h.Div(
					h.Class("float-card float-card-1 animate-float"),
					h.Span(g.Text("Accuracy")),
					h.Strong(h.Class("text-medical-primary"), g.Text("98.7%")),
				),
				h.Div(
					h.Class("float-card float-card-2 animate-float"),
					h.Span(g.Text("Processing")),
					h.Strong(h.Class("text-neural-600"), g.Text("< 30s")),
				),
			),
		),
		h.A(h.Href("#"+SectionFeatures), h.Class("scroll-indicator"), g.Attr("aria-label", "Scroll to features"), h.Span()),
	)
}

// heroGraph renders nodes as positioned dots and edges as an SVG line layer
// in a 100x100 viewBox so that percentages map directly to coordinates.
func heroGraph(graph neural.Graph) g.Node {
	lines := make([]g.Node, 0, len(graph.Edges))
	for _, e := range graph.Edges {
		lines = append(lines, g.El("line",
			g.Attr("data-edge", e.ID),
			g.Attr("data-from", strconv.Itoa(e.From.ID)),
			g.Attr("data-to", strconv.Itoa(e.To.ID)),
			g.Attr("x1", coord(e.From.X)),
			g.Attr("y1", coord(e.From.Y)),
			g.Attr("x2", coord(e.To.X)),
			g.Attr("y2", coord(e.To.Y)),
			g.Attr("stroke-opacity", coord(e.Opacity)),
			g.Attr("vector-effect", "non-scaling-stroke"),
		))
	}

	dots := make([]g.Node, 0, len(graph.Nodes))
	for _, n := range graph.Nodes {
		px := coord(n.Size * nodePixels)
		dots = append(dots, h.Span(
			h.Class("hero-node animate-brain-pulse"),
			g.Attr("data-node", strconv.Itoa(n.ID)),
			h.Style(fmt.Sprintf("left:%s%%;top:%s%%;width:%spx;height:%spx;animation-delay:%dms",
				coord(n.X), coord(n.Y), px, px, n.DelayDuration().Milliseconds())),
		))
	}

	return h.Div(
		h.Class("hero-graph"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-node-count", strconv.Itoa(len(graph.Nodes))),
		g.El("svg",
			h.Class("hero-edges"),
			g.Attr("viewBox", "0 0 100 100"),
			g.Attr("preserveAspectRatio", "none"),
			g.Group(lines),
		),
		g.Group(dots),
	)
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
