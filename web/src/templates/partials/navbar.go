package partials

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/internal/nav"
)

// NavbarID is the id of the navigation bar's root element.
const NavbarID = "navbar"

// Navbar renders the sticky site navigation for state s.
func Navbar(site *content.Site, s nav.State, attrs ...g.Node) g.Node {
	n := site.Nav
	return Header(
		ID(NavbarID),
		c.Classes{"navbar": true, "scrolled": s.Scrolled},
		g.Group(attrs),
		Nav(
			Class("nav-container"),
			A(Class("nav-logo"), Href("/"),
				Span(Class("logo-icon"), g.Text(site.Brand.Icon)),
				Span(Class("logo-text"),
					g.Text(site.Brand.Main+" "),
					Span(Class("logo-accent"), g.Text(site.Brand.Accent)),
				),
			),
			Ul(
				c.Classes{"nav-menu": true, "active": s.MobileMenuOpen},
				g.Map(n.Leading, navItem),
				g.Map(n.Menus, func(m content.Menu) g.Node { return dropdownItem(m, s) }),
				g.Map(n.Trailing, navItem),
				Li(Class("nav-item nav-cta-mobile"), ctaLink(n.CTA)),
			),
			Div(Class("nav-cta"), ctaLink(n.CTA)),
			Button(
				c.Classes{"hamburger-menu": true, "active": s.MobileMenuOpen},
				Type("button"),
				Aria("label", "Toggle navigation"),
				Aria("expanded", fmt.Sprint(s.MobileMenuOpen)),
				Send("click", live.ToggleMobile),
				Span(Class("bar")), Span(Class("bar")), Span(Class("bar")),
			),
		),
		g.If(s.MobileMenuOpen, outsidePressListener()),
	)
}

func navItem(l content.Link) g.Node {
	return Li(Class("nav-item"), navLink("nav-link", l, false))
}

func navLink(class string, l content.Link, fromDropdown bool) g.Node {
	return A(
		Class(class), Href(l.Href),
		Send("click", live.SelectLink, live.KeyFromDropdown, fmt.Sprint(fromDropdown)),
		g.If(l.Icon != "", Span(Class("nav-icon"), g.Text(l.Icon))),
		g.Text(l.Label),
	)
}

func ctaLink(l content.Link) g.Node {
	return A(
		Class("cta-button"), Href(l.Href),
		Send("click", live.SelectLink),
		g.If(l.Icon != "", g.Text(l.Icon+" ")),
		g.Text(l.Label),
	)
}

func dropdownItem(m content.Menu, s nav.State) g.Node {
	d, err := nav.ParseDropdown(m.ID)
	if err != nil {
		return nil
	}
	open := s.IsOpen(d)
	return Li(
		c.Classes{"nav-item": true, "dropdown": true, "open": open},
		hover(d),
		Button(
			Class("nav-link dropdown-toggle"),
			Type("button"),
			Aria("haspopup", "true"),
			Aria("expanded", fmt.Sprint(open)),
			Send("click", live.ToggleDropdown, live.KeyDropdown, d.String()),
			g.If(m.Icon != "", Span(Class("nav-icon"), g.Text(m.Icon))),
			g.Text(m.Label),
			Span(Class("dropdown-arrow"), g.Text("▾")),
		),
		Div(
			c.Classes{"dropdown-menu": true, "show": open},
			Div(Class("dropdown-header"),
				H4(g.Text(m.Heading)),
				g.If(m.Blurb != "", P(g.Text(m.Blurb))),
			),
			Ul(Class("dropdown-list"),
				g.Map(m.Items, func(l content.Link) g.Node {
					return Li(A(
						Class("dropdown-link"), Href(l.Href),
						Send("click", live.SelectLink, live.KeyFromDropdown, "true"),
						g.If(l.Icon != "", Span(Class("dropdown-icon"), g.Text(l.Icon))),
						Div(Class("dropdown-text"),
							Strong(g.Text(l.Label)),
							g.If(l.Description != "", Small(g.Text(l.Description))),
						),
					))
				}),
			),
		),
	)
}

// hover reports pointer entry and exit on a dropdown trigger.
func hover(d nav.Dropdown) g.Node {
	vals := fmt.Sprintf(`js:{%s: event.type === "mouseenter" ? %q : %q, %s: %q}`,
		live.KeyEvent, live.PointerEnter, live.PointerLeave, live.KeyDropdown, d.String())
	return g.Group{g.Attr("ws-send"), hx.Trigger("mouseenter, mouseleave"), hx.Vals(vals)}
}

// outsidePressListener is present only while the compact menu is open.
func outsidePressListener() g.Node {
	return Div(
		Class("outside-press-listener"),
		g.Attr("hidden"),
		SendJS("click from:document", live.OutsidePress,
			fmt.Sprintf(`%s: !!event.target.closest(".nav-container")`, live.KeyInsideNav)),
	)
}
