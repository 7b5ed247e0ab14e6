package live

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/nav"
)

// ErrInvalidEvent is returned for an event the page cannot apply: an unknown
// name, a missing or malformed parameter, or a component the page lacks.
// State is never changed by a rejected event.
var ErrInvalidEvent = errors.New("invalid page event")

// Name identifies a browser event.
type Name string

const (
	Scroll              Name = "scroll"
	PointerEnter        Name = "pointer_enter"
	PointerLeave        Name = "pointer_leave"
	ToggleDropdown      Name = "toggle_dropdown"
	ToggleMobile        Name = "toggle_mobile"
	SelectLink          Name = "select_link"
	OutsidePress        Name = "outside_press"
	FieldChange         Name = "field_change"
	Submit              Name = "submit"
	FAQToggle           Name = "faq_toggle"
	NewsletterInput     Name = "newsletter_input"
	NewsletterSubscribe Name = "newsletter_subscribe"
	DismissNotice       Name = "dismiss_notice"
	// Sync changes nothing. It collects fragments that were produced while no
	// socket was attached.
	Sync Name = "sync"
)

var names = map[Name]bool{
	Scroll: true, PointerEnter: true, PointerLeave: true, ToggleDropdown: true,
	ToggleMobile: true, SelectLink: true, OutsidePress: true, FieldChange: true,
	Submit: true, FAQToggle: true, NewsletterInput: true, NewsletterSubscribe: true,
	DismissNotice: true, Sync: true,
}

// Parameter keys understood by ParseEvent.
const (
	KeyEvent           = "event"
	KeyDropdown        = "dropdown"
	KeyOffsetY         = "y"
	KeyFromDropdown    = "from_dropdown"
	KeyInsideNav       = "inside_nav"
	KeyField           = "field"
	KeyValue           = "value"
	KeyIndex           = "index"
	KeyNewsletterEmail = "newsletter_email"
)

// Event is a parsed browser event. Only the fields relevant to Name are set.
type Event struct {
	Name         Name
	Dropdown     nav.Dropdown
	OffsetY      float64
	FromDropdown bool
	InsideNav    bool
	Field        contact.Field
	Value        string
	// HasValue is false when a newsletter_subscribe arrives without the
	// field's current value.
	HasValue bool
	Index    int
	// Fields carries form values sent along with a submit.
	Fields map[contact.Field]string
}

// Values are the raw parameters of an event.
type Values map[string]string

// FormValues adapts url-encoded form data.
func FormValues(form url.Values) Values {
	v := make(Values, len(form))
	for k := range form {
		v[k] = form.Get(k)
	}
	return v
}

// DecodeValues reads the JSON object htmx sends over the websocket. The
// HEADERS member and non-scalar values are ignored.
func DecodeValues(data []byte) (Values, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	v := make(Values, len(raw))
	for k, val := range raw {
		switch t := val.(type) {
		case string:
			v[k] = t
		case bool:
			v[k] = strconv.FormatBool(t)
		case float64:
			v[k] = strconv.FormatFloat(t, 'f', -1, 64)
		}
	}
	return v, nil
}

// ParseEvent validates v and converts it into an Event.
func ParseEvent(v Values) (Event, error) {
	ev := Event{Name: Name(v[KeyEvent])}
	if !names[ev.Name] {
		return Event{}, fmt.Errorf("%w: unknown event %q", ErrInvalidEvent, v[KeyEvent])
	}

	var err error
	switch ev.Name {
	case Scroll:
		ev.OffsetY, err = strconv.ParseFloat(v[KeyOffsetY], 64)
	case PointerEnter, ToggleDropdown:
		ev.Dropdown, err = nav.ParseDropdown(v[KeyDropdown])
	case SelectLink:
		ev.FromDropdown, err = optionalBool(v, KeyFromDropdown)
	case OutsidePress:
		ev.InsideNav, err = optionalBool(v, KeyInsideNav)
	case FieldChange:
		ev.Field, err = contact.ParseField(v[KeyField])
		if err == nil {
			// The input's own name=value pair wins over an explicit value.
			var ok bool
			if ev.Value, ok = v[string(ev.Field)]; !ok {
				ev.Value = v[KeyValue]
			}
		}
	case Submit:
		for _, f := range contact.AllFields {
			if val, ok := v[string(f)]; ok {
				if ev.Fields == nil {
					ev.Fields = make(map[contact.Field]string, len(contact.AllFields))
				}
				ev.Fields[f] = val
			}
		}
	case FAQToggle:
		ev.Index, err = strconv.Atoi(v[KeyIndex])
	case NewsletterInput, NewsletterSubscribe:
		ev.Value, ev.HasValue = v[KeyNewsletterEmail]
		if !ev.HasValue {
			ev.Value, ev.HasValue = v[KeyValue]
		}
	}
	if err != nil {
		return Event{}, fmt.Errorf("%w: %s: %w", ErrInvalidEvent, ev.Name, err)
	}
	return ev, nil
}

func optionalBool(v Values, key string) (bool, error) {
	s, ok := v[key]
	if !ok || s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
