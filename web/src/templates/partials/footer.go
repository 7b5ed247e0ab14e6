package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/live"
)

// NewsletterID is the id of the newsletter form.
const NewsletterID = "newsletter"

// SiteFooter renders the footer with the newsletter signup holding email.
func SiteFooter(site *content.Site, email string) g.Node {
	f := site.Footer
	return Footer(
		Class("footer"),
		Div(Class("footer-container"),
			Div(Class("footer-newsletter"),
				H3(g.Text(f.Newsletter.Heading)),
				g.If(f.Newsletter.Blurb != "", P(g.Text(f.Newsletter.Blurb))),
				NewsletterForm(f.Newsletter, email),
			),
			g.Map(f.Columns, func(col content.FooterColumn) g.Node {
				return Div(Class("footer-column"),
					H4(g.Text(col.Heading)),
					Ul(g.Map(col.Links, func(l content.Link) g.Node {
						return Li(A(Href(l.Href), g.Text(l.Label)))
					})),
				)
			}),
		),
		g.If(f.Copyright != "", Div(Class("footer-bottom"), P(g.Text(f.Copyright)))),
	)
}

// NewsletterForm posts to /newsletter when scripts are unavailable.
func NewsletterForm(n content.Newsletter, email string, attrs ...g.Node) g.Node {
	return Form(
		ID(NewsletterID),
		Class("newsletter-form"),
		Method("post"),
		Action("/newsletter"),
		Send("submit", live.NewsletterSubscribe),
		g.Group(attrs),
		Input(
			Type("email"),
			Name(live.KeyNewsletterEmail),
			Value(email),
			Placeholder(n.Placeholder),
			Required(),
			AutoComplete("email"),
			Aria("label", "Email address"),
			Send("input changed delay:200ms", live.NewsletterInput),
		),
		Button(Type("submit"), Class("newsletter-button"), g.Text(n.Button)),
	)
}
