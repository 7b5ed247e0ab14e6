package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/web/src/templates/partials"
)

// Contact renders the contact page for the live view v.
func Contact(cp content.ContactPage, v live.View) g.Node {
	return g.Group{
		Section(Class("contact-hero"),
			H1(Class("page-title"), g.Text(cp.Title)),
			g.If(cp.Tagline != "", P(Class("contact-tagline"), g.Text(cp.Tagline))),
			Div(Class("contact-cards"),
				g.Map(cp.Cards, func(card content.Card) g.Node {
					return Div(Class("contact-card"),
						Span(Class("contact-card-icon"), g.Text(card.Icon)),
						H3(g.Text(card.Title)),
						P(Class("contact-card-detail"), g.Text(card.Detail)),
						g.If(card.Description != "", Small(g.Text(card.Description))),
					)
				}),
			),
		),
		Section(Class("contact-main"),
			Div(Class("contact-info"),
				H2(g.Text(cp.Form.Heading)),
				g.If(cp.Form.Blurb != "", P(g.Text(cp.Form.Blurb))),
				Ul(Class("contact-info-list"),
					g.Map(cp.Form.Info, func(it content.InfoItem) g.Node {
						return Li(
							Span(Class("info-icon"), g.Text(it.Icon)),
							Div(Strong(g.Text(it.Title)), g.If(it.Detail != "", P(g.Text(it.Detail)))),
						)
					}),
				),
			),
			Div(Class("contact-form-wrapper"), partials.ContactForm(v.Form)),
		),
		Section(Class("faq-section"),
			H2(g.Text(cp.FAQ.Heading)),
			g.If(cp.FAQ.Blurb != "", P(Class("faq-blurb"), g.Text(cp.FAQ.Blurb))),
			partials.FAQList(cp.FAQ.Items, v.FAQ),
		),
		Section(Class("contact-cta"),
			H2(g.Text(cp.CTA.Heading)),
			g.If(cp.CTA.Blurb != "", P(g.Text(cp.CTA.Blurb))),
			A(Class("cta-button"), Href(cp.CTA.Link.Href), g.Text(cp.CTA.Link.Label)),
		),
	}
}
