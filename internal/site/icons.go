package site

import (
	"slices"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// iconPaths maps an icon tag to the path data of a 24x24 stroked outline.
var iconPaths = map[string][]string{
	"activity":     {"M22 12h-4l-3 9L9 3l-3 9H2"},
	"arrow-right":  {"M5 12h14", "m12 5 7 7-7 7"},
	"award":        {"M18 8a6 6 0 1 1-12 0 6 6 0 0 1 12 0", "M15.477 12.89 17 22l-5-3-5 3 1.523-9.11"},
	"bar-chart":    {"M3 3v18h18", "M18 17V9", "M13 17V5", "M8 17v-3"},
	"brain":        {"M12 5a3 3 0 1 0-5.997.125 4 4 0 0 0-2.526 5.77 4 4 0 0 0 .556 6.588A4 4 0 1 0 12 18Z", "M12 5a3 3 0 1 1 5.997.125 4 4 0 0 1 2.526 5.77 4 4 0 0 1-.556 6.588A4 4 0 1 1 12 18Z", "M12 5v13"},
	"check-circle": {"M22 11.08V12a10 10 0 1 1-5.93-9.14", "m9 11 3 3L22 4"},
	"clock":        {"M22 12a10 10 0 1 1-20 0 10 10 0 0 1 20 0", "M12 6v6l4 2"},
	"file-image":   {"M14.5 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7.5L14.5 2z", "m20 17-3.1-3.1a2 2 0 0 0-2.8 0L9 19", "M10 11a2 2 0 1 1-4 0 2 2 0 0 1 4 0"},
	"github":       {"M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.4 5.4 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4", "M9 18c-4.51 2-5-2-7-2"},
	"globe":        {"M22 12a10 10 0 1 1-20 0 10 10 0 0 1 20 0", "M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20", "M2 12h20"},
	"heart":        {"M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"},
	"layers":       {"m12 2 10 5-10 5L2 7z", "m2 17 10 5 10-5", "m2 12 10 5 10-5"},
	"linkedin":     {"M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-4 0v7h-4v-7a6 6 0 0 1 6-6z", "M2 9h4v12H2z", "M6 4a2 2 0 1 1-4 0 2 2 0 0 1 4 0"},
	"mail":         {"M4 4h16a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z", "m22 6-10 7L2 6"},
	"map-pin":      {"M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z", "M15 10a3 3 0 1 1-6 0 3 3 0 0 1 6 0"},
	"menu":         {"M4 6h16", "M4 12h16", "M4 18h16"},
	"pause":        {"M6 4h4v16H6z", "M14 4h4v16h-4z"},
	"phone":        {"M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z"},
	"play":         {"m6 3 14 9-14 9V3z"},
	"scan":         {"M3 7V5a2 2 0 0 1 2-2h2", "M17 3h2a2 2 0 0 1 2 2v2", "M21 17v2a2 2 0 0 1-2 2h-2", "M7 21H5a2 2 0 0 1-2-2v-2"},
	"shield":       {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"},
	"trending-up":  {"m22 7-8.5 8.5-5-5L2 17", "M16 7h6v6"},
	"twitter":      {"M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"},
	"upload":       {"M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4", "m17 8-5-5-5 5", "M12 3v12"},
	"users":        {"M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2", "M13 7a4 4 0 1 1-8 0 4 4 0 0 1 8 0", "M22 21v-2a4 4 0 0 0-3-3.87", "M16 3.13a4 4 0 0 1 0 7.75"},
	"zap":          {"M13 2 3 14h9l-1 8 10-12h-9l1-8z"},
}

// logoPath is the filled brand mark of the navigation and footer.
const logoPath = "M12 2C13.1 2 14 2.9 14 4C14 5.1 13.1 6 12 6C10.9 6 10 5.1 10 4C10 2.9 10.9 2 12 2ZM21 9V7L15 1H5C3.89 1 3 1.89 3 3V19C3 20.1 3.9 21 5 21H11V19H5V3H13V9H21Z"

// IconTags returns the registered icon tags in sorted order.
func IconTags() []string {
	tags := make([]string, 0, len(iconPaths))
	for tag := range iconPaths {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// HasIcon reports whether tag is registered.
func HasIcon(tag string) bool {
	_, ok := iconPaths[tag]
	return ok
}

// Icon renders the icon for tag. Unknown tags render a neutral placeholder
// marked with data-icon-missing and are recorded on the renderer; they never
// fail the render.
func (r *Renderer) Icon(tag string, classes ...string) g.Node {
	class := strings.Join(append([]string{"icon"}, classes...), " ")
	paths, ok := iconPaths[tag]
	if !ok {
		r.noteMissing(tag)
		return h.Span(
			h.Class(class+" icon-placeholder"),
			g.Attr("data-icon-missing", tag),
			g.Attr("aria-hidden", "true"),
		)
	}

	nodes := make([]g.Node, 0, len(paths))
	for _, d := range paths {
		nodes = append(nodes, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg",
		h.Class(class),
		g.Attr("data-icon", tag),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Group(nodes),
	)
}

func logo() g.Node {
	return g.El("svg",
		h.Class("icon"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "currentColor"),
		g.Attr("aria-hidden", "true"),
		g.El("path", g.Attr("d", logoPath)),
	)
}
