package live

import (
	"errors"
	"fmt"
	"io"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/faq"
	"github.com/nfrund/b2bsite/internal/nav"
)

// Page names the kind of page an instance serves.
type Page string

const (
	PageHome    Page = "home"
	PageAbout   Page = "about"
	PageContact Page = "contact"
)

// ErrUnknownPage is returned when mounting a page kind that does not exist.
var ErrUnknownPage = errors.New("unknown page")

// ParsePage validates a page name.
func ParsePage(s string) (Page, error) {
	switch p := Page(s); p {
	case PageHome, PageAbout, PageContact:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPage, s)
}

// HasContactForm reports whether the page carries the contact form and FAQ.
func (p Page) HasContactForm() bool {
	return p == PageContact
}

// Notice is the acknowledgment banner shown after a submission or signup.
type Notice struct {
	Success bool
	Message string
}

// View is a copy of an instance's state, handed to the renderer.
type View struct {
	ID         string
	Page       Page
	Nav        nav.State
	Form       contact.Snapshot
	FAQ        faq.State
	Newsletter string
	Notice     *Notice
}

// ListensForOutsidePress reports whether the page should carry the
// document-level press listener.
func (v View) ListensForOutsidePress() bool {
	return v.Nav.MobileMenuOpen
}

// Part is one independently swappable region of a page.
type Part uint8

const (
	PartNavbar Part = 1 << iota
	PartContactForm
	PartFieldError
	PartFAQ
	PartNewsletter
	PartNotice
)

var partNames = map[Part]string{
	PartNavbar:      "navbar",
	PartContactForm: "contact_form",
	PartFieldError:  "field_error",
	PartFAQ:         "faq",
	PartNewsletter:  "newsletter",
	PartNotice:      "notice",
}

func (p Part) String() string {
	if n, ok := partNames[p]; ok {
		return n
	}
	return fmt.Sprintf("part(%d)", uint8(p))
}

// Fragment selects what to render. Field is set only for PartFieldError.
type Fragment struct {
	Part  Part
	Field contact.Field
}

// Renderer writes the markup for one fragment as an out-of-band swap.
// Implementations must be safe for concurrent use.
type Renderer interface {
	Fragment(w io.Writer, f Fragment, v View) error
}

// changes accumulates the parts an event touched.
type changes struct {
	parts  Part
	fields []contact.Field
}

func (c *changes) add(p Part) {
	c.parts |= p
}

func (c *changes) addField(f contact.Field) {
	c.parts |= PartFieldError
	for _, existing := range c.fields {
		if existing == f {
			return
		}
	}
	c.fields = append(c.fields, f)
}

func (c *changes) merge(o changes) {
	c.parts |= o.parts
	for _, f := range o.fields {
		c.addField(f)
	}
}

func (c changes) empty() bool {
	return c.parts == 0
}

// fragments lists what to render in document order. Field errors are
// dropped when the whole form is re-rendered anyway.
func (c changes) fragments() []Fragment {
	var out []Fragment
	for _, p := range []Part{PartNotice, PartNavbar, PartContactForm, PartFieldError, PartFAQ, PartNewsletter} {
		if c.parts&p == 0 {
			continue
		}
		if p == PartFieldError {
			if c.parts&PartContactForm != 0 {
				continue
			}
			for _, f := range c.fields {
				out = append(out, Fragment{Part: p, Field: f})
			}
			continue
		}
		out = append(out, Fragment{Part: p})
	}
	return out
}
