package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/content"
)

// About renders the about page copy.
func About(a content.About) g.Node {
	return Div(
		Class("container about"),
		Div(
			Class("about-card"),
			H1(Class("page-title"), g.Text(a.Title)),
			g.If(a.IntroHTML != "", Div(Class("about-intro"), g.Raw(string(a.IntroHTML)))),
			Div(
				Class("about-sections"),
				g.Map(a.Sections, func(s content.Section) g.Node {
					return Div(Class("about-section"),
						H3(g.Text(s.Title)),
						P(g.Text(s.Body)),
					)
				}),
			),
			g.If(a.Closing != "", Div(Class("about-closing"), g.Text(a.Closing))),
		),
	)
}
