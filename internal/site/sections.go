package site

import (
	"strconv"
	"time"

	"github.com/nao1215/neuroscan/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func (r *Renderer) features(features []content.FeatureEntry) g.Node {
	cards := make([]g.Node, 0, len(features))
	for i, f := range features {
		cards = append(cards, h.Article(
			h.Class("card"),
			g.Attr("data-reveal"),
			h.Style("transition-delay:"+strconv.Itoa(i*100)+"ms"),
			h.Div(h.Class("card-icon"), r.Icon(f.Icon)),
			h.Div(
				h.Class("card-title"),
				h.H3(g.Text(f.Title)),
				h.Span(h.Class("card-stat"), g.Text(f.Stat)),
			),
			h.P(g.Text(f.Description)),
		))
	}

	trust := content.TrustIndicators()
	return h.Section(
		h.ID(SectionFeatures),
		h.Class("section"),
		h.Div(
			h.Class("container"),
			sectionHeader(r.Icon("brain", "icon-sm"), "Advanced Capabilities", "Revolutionary", "Neuroimaging Platform",
				"Harness the power of artificial intelligence to transform how medical professionals analyze and interpret neuroimaging data with unprecedented precision and speed."),
			h.Div(h.Class("grid grid-3"), g.Group(cards)),
			h.Div(
				h.Class("cta bg-medical-gradient"),
				g.Attr("data-reveal"),
				h.Div(h.Class("cta-pattern bg-neural-pattern")),
				h.H3(g.Text("Ready to Transform Your Practice?")),
				h.P(g.Text("Join thousands of medical professionals who trust NeuroScan Pro for critical neuroimaging analysis.")),
				h.Div(
					h.Class("hero-actions cta-actions"),
					h.A(h.Href("#"+SectionDemo), h.Class("btn btn-light"), g.Text("Start Free Trial")),
					h.A(h.Href("#"+SectionContact), h.Class("btn btn-ghost"), g.Text("Schedule Demo")),
				),
				h.Ul(h.Class("trust"), g.Group(g.Map(trust, func(t string) g.Node {
					return h.Li(r.Icon("check-circle", "icon-sm"), g.Text(t))
				}))),
			),
		),
	)
}

// stats renders the counters at their initial value. The script animates
// them to data-counter-end once the section scrolls into view.
func (r *Renderer) stats(stats []content.StatEntry, duration time.Duration) g.Node {
	items := make([]g.Node, 0, len(stats))
	for i, s := range stats {
		format := "plain"
		if s.Value > 1000 {
			format = "compact"
		}
		items = append(items, h.Div(
			h.Class("stat"),
			g.Attr("data-reveal"),
			h.Style("transition-delay:"+strconv.Itoa(i*100)+"ms"),
			h.Div(
				h.Class("stat-value"),
				g.Attr("data-counter"),
				g.Attr("data-counter-end", strconv.FormatFloat(s.Value, 'f', -1, 64)),
				g.Attr("data-counter-duration", strconv.FormatInt(duration.Milliseconds(), 10)),
				g.Attr("data-counter-prefix", s.Prefix),
				g.Attr("data-counter-suffix", s.Suffix),
				g.Attr("data-counter-format", format),
				g.Attr("aria-label", s.Final()+" "+s.Label),
				g.Text(s.Display(0)),
			),
			h.H3(h.Class("stat-label"), g.Text(s.Label)),
			h.P(h.Class("stat-description"), g.Text(s.Description)),
		))
	}

	return h.Section(
		h.ID(SectionStats),
		h.Class("section section-muted"),
		h.Div(
			h.Class("container"),
			sectionHeader(r.Icon("trending-up", "icon-sm"), "Proven Results", "Trusted by", "Medical Professionals",
				"Our platform delivers exceptional results across the globe, helping medical professionals make accurate diagnoses and improve patient outcomes."),
			h.Div(h.Class("grid grid-4"), g.Attr("data-counter-group"), g.Group(items)),
			h.Div(
				h.Class("trusted-by"),
				g.Attr("data-reveal"),
				h.Div(h.Class("avatars"), g.Group(g.Map([]string{"A", "B", "C", "D"}, func(l string) g.Node {
					return h.Span(h.Class("avatar"), g.Text(l))
				}))),
				h.Div(
					h.Strong(g.Text("Trusted by Leading Hospitals")),
					h.Span(g.Text("Mayo Clinic, Johns Hopkins, Cleveland Clinic, and more")),
				),
			),
		),
	)
}
