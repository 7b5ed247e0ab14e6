// Package partials holds the page regions that are swapped independently
// while a page is live.
package partials

import (
	"encoding/json"
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"

	"github.com/nfrund/b2bsite/internal/live"
)

// OOB marks a fragment's root element for an out-of-band swap by id.
func OOB() g.Node {
	return hx.SwapOOB("true")
}

// Send sends event, with params, over the page socket whenever trigger
// fires on the element.
func Send(trigger string, event live.Name, params ...string) g.Node {
	vals := map[string]string{live.KeyEvent: string(event)}
	for i := 0; i+1 < len(params); i += 2 {
		vals[params[i]] = params[i+1]
	}
	data, _ := json.Marshal(vals)
	return g.Group{g.Attr("ws-send"), hx.Trigger(trigger), hx.Vals(string(data))}
}

// SendJS is Send for parameters computed in the browser. expr is the body of
// a JavaScript object literal evaluated when the trigger fires; the event
// name is added to it.
func SendJS(trigger string, event live.Name, expr string) g.Node {
	vals := fmt.Sprintf("js:{%s: %q, %s}", live.KeyEvent, event, expr)
	return g.Group{g.Attr("ws-send"), hx.Trigger(trigger), hx.Vals(vals)}
}
