package partials

import (
	"fmt"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/live"
)

// ContactFormID is the id of the contact form.
const ContactFormID = "contact-form"

type fieldCopy struct {
	label       string
	placeholder string
	inputType   string
}

var fieldCopies = map[contact.Field]fieldCopy{
	contact.Name:    {"Full Name *", "Enter your full name", "text"},
	contact.Email:   {"Email Address *", "Enter your email address", "email"},
	contact.Subject: {"Subject *", "What is this regarding?", "text"},
	contact.Message: {"Message *", "Tell us how we can help you...", ""},
}

// ContactForm renders the form for snapshot s. Fields are re-rendered with
// their current values, so it is only swapped when the user is not typing.
func ContactForm(s contact.Snapshot, attrs ...g.Node) g.Node {
	label := "Send Message"
	if s.Submitting {
		label = "Sending..."
	}
	return Form(
		ID(ContactFormID),
		Class("contact-form"),
		g.Attr("novalidate"),
		Send("submit", live.Submit),
		g.Group(attrs),
		Div(Class("form-row"),
			formGroup(contact.Name, s),
			formGroup(contact.Email, s),
		),
		formGroup(contact.Subject, s),
		formGroup(contact.Message, s),
		Button(
			Type("submit"),
			c.Classes{"submit-btn": true, "submitting": s.Submitting},
			g.If(s.Submitting, Disabled()),
			g.Text(label),
		),
	)
}

func formGroup(f contact.Field, s contact.Snapshot) g.Node {
	cp := fieldCopies[f]
	id := "contact-" + string(f)
	common := []g.Node{
		ID(id),
		Name(string(f)),
		Placeholder(cp.placeholder),
		Aria("describedby", FieldErrorID(f)),
		Send("input changed delay:150ms", live.FieldChange, live.KeyField, string(f)),
		g.If(s.Submitting, Disabled()),
	}
	var input g.Node
	if f == contact.Message {
		input = Textarea(g.Group(common), Rows("5"), g.Text(s.Fields.Get(f)))
	} else {
		input = Input(g.Group(common), Type(cp.inputType), Value(s.Fields.Get(f)))
	}
	return Div(Class("form-group"),
		Label(For(id), g.Text(cp.label)),
		input,
		FieldError(f, s.Errors[f]),
	)
}

// FieldErrorID is the id of the error slot under field f.
func FieldErrorID(f contact.Field) string {
	return fmt.Sprintf("contact-error-%s", f)
}

// FieldError renders the error slot for f, empty when msg is empty.
func FieldError(f contact.Field, msg string, attrs ...g.Node) g.Node {
	return Span(
		ID(FieldErrorID(f)),
		c.Classes{"field-error": true, "visible": msg != ""},
		Aria("live", "polite"),
		g.Group(attrs),
		g.Text(msg),
	)
}
