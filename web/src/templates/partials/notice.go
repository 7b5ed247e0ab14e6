package partials

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/live"
)

// NoticeID is the id of the acknowledgment region.
const NoticeID = "notice"

// FlashData holds the session flash messages of a request.
type FlashData struct {
	Success []string
	Error   []string
}

// NoticeRegion renders the acknowledgment banner, or an empty region. Flash
// messages left by a non-script form post are shown in the same place.
func NoticeRegion(n *live.Notice, flash FlashData, attrs ...g.Node) g.Node {
	return Div(
		ID(NoticeID),
		Class("notice-region"),
		Aria("live", "polite"),
		g.Group(attrs),
		g.Iff(n != nil, func() g.Node { return banner(n.Success, n.Message, true) }),
		g.Map(flash.Success, func(m string) g.Node { return banner(true, m, false) }),
		g.Map(flash.Error, func(m string) g.Node { return banner(false, m, false) }),
	)
}

func banner(success bool, msg string, dismissible bool) g.Node {
	return Div(
		c.Classes{"notice": true, "notice-success": success, "notice-error": !success},
		Role("alert"),
		P(g.Text(msg)),
		g.If(dismissible, Button(
			Class("notice-dismiss"),
			Type("button"),
			Aria("label", "Dismiss"),
			Send("click", live.DismissNotice),
			g.Text("×"),
		)),
	)
}
