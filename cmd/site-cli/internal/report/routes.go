// Package report formats site-cli output as tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nfrund/b2bsite/internal/content"
)

// Groups that are not dropdown menus.
const (
	GroupMain = "main"
	GroupCTA  = "call to action"
)

// Route is one navigable destination of the navigation bar.
type Route struct {
	Group string `json:"group"`
	Label string `json:"label"`
	Href  string `json:"href"`
	Built bool   `json:"built"`
}

// builtPages are the paths the server renders. Every other destination
// answers with the not-found page.
var builtPages = map[string]bool{"/": true, "/about": true, "/contact": true}

// Routes lists the destinations of nav in display order, labelled with the
// menu they sit under.
func Routes(nav content.Nav) []Route {
	var out []Route
	add := func(group string, l content.Link) {
		out = append(out, Route{Group: group, Label: l.Label, Href: l.Href, Built: builtPages[l.Href]})
	}
	for _, l := range nav.Leading {
		add(GroupMain, l)
	}
	for _, m := range nav.Menus {
		for _, l := range m.Items {
			add(m.Label, l)
		}
	}
	for _, l := range nav.Trailing {
		add(GroupMain, l)
	}
	add(GroupCTA, nav.CTA)
	return out
}

// WriteRoutesTable prints routes grouped under an upper-cased heading per
// group, groups in order of first appearance.
func WriteRoutesTable(w io.Writer, routes []Route) error {
	var order []string
	byGroup := make(map[string][]Route)
	for _, r := range routes {
		if _, ok := byGroup[r.Group]; !ok {
			order = append(order, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	heading := cases.Upper(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, group := range order {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, heading.String(group))
		for _, r := range byGroup[group] {
			status := "page"
			if !r.Built {
				status = "not built"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Label, r.Href, status)
		}
	}
	return tw.Flush()
}

// WriteJSON prints v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
