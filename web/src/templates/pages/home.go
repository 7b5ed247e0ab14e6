package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/content"
)

// Home is the landing hero.
func Home(h content.Home) g.Node {
	return Section(
		Class("hero"),
		Div(Class("hero-content"),
			H1(Class("hero-title"), g.Text(h.Title)),
			g.If(h.TaglineHTML != "", Div(Class("hero-tagline"), g.Raw(string(h.TaglineHTML)))),
			A(Class("hero-button"), Href(h.CTA.Href), g.Text(h.CTA.Label+" →")),
		),
	)
}
