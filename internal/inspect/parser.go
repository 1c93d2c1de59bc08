package inspect

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Element names whose id attribute marks a top-level page section.
const (
	htmlElementSection = "section"
	htmlElementFooter  = "footer"
)

// Parser extracts the verifiable structure of a landing page.
type Parser struct {
	// sectionElements are the element names treated as sections.
	sectionElements []string
}

// ParseResult contains everything extracted from a page.
type ParseResult struct {
	// Title is the text of the <title> element.
	Title string

	// Lang is the lang attribute of <html>.
	Lang string

	// MetaTags maps meta name or property to content.
	MetaTags map[string]string

	// Stylesheets and Scripts are the linked asset paths.
	Stylesheets []string
	Scripts     []string

	// Sections lists the ids of section elements in document order.
	Sections []string

	// IDs is the set of all element ids.
	IDs map[string]struct{}

	// Anchors lists the in-page link targets ("#demo" yields "demo") in document order.
	Anchors []string

	// Panels lists the demo panels.
	Panels []Panel

	// DeclaredNodes is the data-node-count of the hero graph, -1 when absent.
	DeclaredNodes int

	// Nodes is the number of rendered decorative nodes.
	Nodes int

	// Edges lists the rendered decorative edges.
	Edges []Edge

	// Counters lists the statistics counters.
	Counters []Counter

	// MissingIcons lists icon tags rendered as placeholders, deduplicated, in document order.
	MissingIcons []string

	// Icons counts rendered icons by tag.
	Icons map[string]int
}

// Panel is a demo panel.
type Panel struct {
	ID     string
	Step   string
	Hidden bool
}

// Edge is a rendered decorative line.
type Edge struct {
	ID   string
	From string
	To   string
}

// SelfLoop reports whether both endpoints are the same node.
func (e Edge) SelfLoop() bool {
	return e.From == e.To
}

// Counter is an animated statistic.
type Counter struct {
	// End is the raw data-counter-end attribute.
	End string

	// Duration is the raw data-counter-duration attribute.
	Duration string

	// Text is the initially rendered value.
	Text string
}

// EndValue parses End.
func (c Counter) EndValue() (float64, error) {
	return strconv.ParseFloat(c.End, 64)
}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{sectionElements: []string{htmlElementSection, htmlElementFooter}}
}

// Parse parses a page and extracts its structure.
func (p *Parser) Parse(content io.Reader) (*ParseResult, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		MetaTags:      make(map[string]string),
		Stylesheets:   make([]string, 0),
		Scripts:       make([]string, 0),
		Sections:      make([]string, 0),
		IDs:           make(map[string]struct{}),
		Anchors:       make([]string, 0),
		Panels:        make([]Panel, 0),
		DeclaredNodes: -1,
		Edges:         make([]Edge, 0),
		Counters:      make([]Counter, 0),
		MissingIcons:  make([]string, 0),
		Icons:         make(map[string]int),
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			p.processElement(n, result)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return result, nil
}

// processElement handles element nodes.
func (p *Parser) processElement(n *html.Node, result *ParseResult) {
	id, hasID := lookupAttr(n, "id")
	if hasID && id != "" {
		result.IDs[id] = struct{}{}
		if slices.Contains(p.sectionElements, n.Data) {
			result.Sections = append(result.Sections, id)
		}
	}

	switch n.Data {
	case "html":
		result.Lang = getAttr(n, "lang")

	case "title":
		result.Title = strings.TrimSpace(textContent(n))

	case "meta":
		name := getAttr(n, "name")
		if name == "" {
			name = getAttr(n, "property")
		}
		if content := getAttr(n, "content"); name != "" && content != "" {
			result.MetaTags[name] = content
		}

	case "link":
		if getAttr(n, "rel") == "stylesheet" {
			if href := getAttr(n, "href"); href != "" {
				result.Stylesheets = append(result.Stylesheets, href)
			}
		}

	case "script":
		if src := getAttr(n, "src"); src != "" {
			result.Scripts = append(result.Scripts, src)
		}

	case "a":
		href := strings.TrimSpace(getAttr(n, "href"))
		if target, ok := strings.CutPrefix(href, "#"); ok && target != "" {
			result.Anchors = append(result.Anchors, target)
		}

	case "line":
		if edgeID, ok := lookupAttr(n, "data-edge"); ok {
			result.Edges = append(result.Edges, Edge{
				ID:   edgeID,
				From: getAttr(n, "data-from"),
				To:   getAttr(n, "data-to"),
			})
		}
	}

	if step, ok := lookupAttr(n, "data-demo-panel"); ok {
		_, hidden := lookupAttr(n, "hidden")
		result.Panels = append(result.Panels, Panel{ID: id, Step: step, Hidden: hidden})
	}
	if count, ok := lookupAttr(n, "data-node-count"); ok {
		if v, err := strconv.Atoi(count); err == nil {
			result.DeclaredNodes = v
		}
	}
	if _, ok := lookupAttr(n, "data-node"); ok {
		result.Nodes++
	}
	if _, ok := lookupAttr(n, "data-counter"); ok {
		result.Counters = append(result.Counters, Counter{
			End:      getAttr(n, "data-counter-end"),
			Duration: getAttr(n, "data-counter-duration"),
			Text:     strings.TrimSpace(textContent(n)),
		})
	}
	if tag, ok := lookupAttr(n, "data-icon"); ok {
		result.Icons[tag]++
	}
	if tag, ok := lookupAttr(n, "data-icon-missing"); ok && !slices.Contains(result.MissingIcons, tag) {
		result.MissingIcons = append(result.MissingIcons, tag)
	}
}

// VisiblePanels returns the demo panels without a hidden attribute.
func (r *ParseResult) VisiblePanels() []Panel {
	var out []Panel
	for _, p := range r.Panels {
		if !p.Hidden {
			out = append(out, p)
		}
	}
	return out
}

// HasID reports whether an element with the id exists.
func (r *ParseResult) HasID(id string) bool {
	_, ok := r.IDs[id]
	return ok
}

// DanglingAnchors returns in-page link targets with no matching element, deduplicated.
func (r *ParseResult) DanglingAnchors() []string {
	var out []string
	for _, a := range r.Anchors {
		if !r.HasID(a) && !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	return out
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func getAttr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}
