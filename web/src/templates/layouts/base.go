package layouts

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/web/src/templates/partials"
)

const (
	htmxURL   = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSURL = "https://unpkg.com/htmx-ext-ws@2.0.2"
)

// Props carries everything the page shell needs.
type Props struct {
	Title string
	Site  *content.Site
	// View is the mounted instance. A zero View renders a static page with
	// no socket.
	View  live.View
	Flash partials.FlashData
}

// SocketPath is the websocket endpoint of page instance id.
func SocketPath(id string) string {
	return fmt.Sprintf("/live/%s/ws", id)
}

// Page wraps body in the document shell: head, navigation, acknowledgment
// region and footer.
func Page(p Props, body ...g.Node) g.Node {
	connected := p.View.ID != ""
	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(p.Title, p.Site.Brand.Title),
		Description: p.Site.Brand.Description,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("stylesheet"), Href("/static/css/site.css")),
			g.If(connected, Script(Src(htmxURL), Defer())),
			g.If(connected, Script(Src(htmxWSURL), Defer())),
		},
		Body: []g.Node{
			g.If(connected, g.Group{hx.Ext("ws"), g.Attr("ws-connect", SocketPath(p.View.ID))}),
			partials.Navbar(p.Site, p.View.Nav),
			g.If(connected, scrollListener()),
			partials.NoticeRegion(p.View.Notice, p.Flash),
			Main(Class("page"), g.Group(body)),
			partials.SiteFooter(p.Site, p.View.Newsletter),
		},
	})
}

func scrollListener() g.Node {
	return Div(
		Class("scroll-listener"),
		g.Attr("hidden"),
		partials.SendJS("scroll from:window throttle:100ms", live.Scroll,
			fmt.Sprintf("%s: window.scrollY", live.KeyOffsetY)),
	)
}
