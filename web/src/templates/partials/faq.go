package partials

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/faq"
	"github.com/nfrund/b2bsite/internal/live"
)

// FAQID is the id of the accordion.
const FAQID = "faq"

// FAQList renders the accordion with at most one answer expanded.
func FAQList(items []content.Question, s faq.State, attrs ...g.Node) g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, q := range items {
		open := s.IsOpen(i)
		answerID := fmt.Sprintf("faq-answer-%d", i)
		nodes = append(nodes, Div(
			c.Classes{"faq-item": true, "active": open},
			Button(
				Class("faq-question"),
				Type("button"),
				Aria("expanded", strconv.FormatBool(open)),
				Aria("controls", answerID),
				Send("click", live.FAQToggle, live.KeyIndex, strconv.Itoa(i)),
				Span(g.Text(q.Question)),
				Span(Class("faq-icon"), g.Text(iconFor(open))),
			),
			Div(ID(answerID), Class("faq-answer"), g.If(!open, g.Attr("hidden")),
				g.Raw(string(q.AnswerHTML)),
			),
		))
	}
	return Div(ID(FAQID), Class("faq-list"), g.Group(attrs), g.Group(nodes))
}

func iconFor(open bool) string {
	if open {
		return "−"
	}
	return "+"
}
