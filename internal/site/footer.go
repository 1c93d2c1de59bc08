package site

import (
	"github.com/nao1215/neuroscan/internal/content"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CategoryTitle turns a footer group key into its heading ("legal" -> "Legal").
func CategoryTitle(category string) string {
	return cases.Title(language.English).String(category)
}

func (r *Renderer) footer() g.Node {
	contact := content.ContactDetails()
	groups := content.FooterGroups()

	return h.Footer(
		h.ID(SectionContact),
		h.Class("footer"),
		h.Div(
			h.Class("container"),
			h.Div(
				h.Class("footer-top"),
				h.Div(
					h.Class("footer-brand"),
					g.Attr("data-reveal"),
					h.A(h.Href("#"+SectionHero), h.Class("brand brand-inverse"), h.Span(h.Class("brand-mark"), logo()), g.Text(content.ProductName)),
					h.P(g.Text("Revolutionary AI-powered neuroimaging platform transforming medical diagnostics with unprecedented accuracy and speed.")),
					h.Ul(
						h.Class("footer-contact"),
						h.Li(r.Icon("mail", "icon-sm"), h.A(h.Href("mailto:"+contact.Email), g.Text(contact.Email))),
						h.Li(r.Icon("phone", "icon-sm"), g.Text(contact.Phone)),
						h.Li(r.Icon("map-pin", "icon-sm"), g.Text(contact.Location)),
					),
					h.Div(h.Class("social"), g.Group(g.Map(content.SocialLinks(), func(s content.SocialLink) g.Node {
						return h.A(h.Href(s.Href), g.Attr("aria-label", s.Name), r.Icon(s.Icon))
					}))),
				),
				h.Div(h.Class("footer-groups"), g.Group(g.Map(groups, func(lg content.LinkGroup) g.Node {
					return h.Div(
						g.Attr("data-reveal"),
						h.H4(g.Text(CategoryTitle(lg.Category))),
						h.Ul(g.Group(g.Map(lg.Links, func(l content.Link) g.Node {
							return h.Li(h.A(h.Href(l.Href), g.Text(l.Name)))
						}))),
					)
				}))),
			),
			h.Div(
				h.Class("footer-middle"),
				h.Ul(h.Class("certifications"), g.Group(g.Map(content.Certifications(), func(c content.Certification) g.Node {
					return h.Li(r.Icon(c.Icon, "icon-sm"), g.Text(c.Name))
				}))),
				g.El("form",
					h.Class("newsletter"),
					g.Attr("data-newsletter"),
					g.El("label", g.Attr("for", "newsletter-email"), h.Class("sr-only"), g.Text("Email address")),
					h.Input(h.ID("newsletter-email"), h.Type("email"), h.Name("email"), h.Placeholder("Enter your email")),
					h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text("Subscribe")),
				),
			),
			h.Div(
				h.Class("footer-bottom"),
				h.Span(g.Text(content.Copyright)),
				h.Span(g.Text("Made with "), r.Icon("heart", "icon-sm"), g.Text(" for medical professionals")),
			),
		),
	)
}
