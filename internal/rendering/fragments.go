package rendering

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"

	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/web/src/templates/partials"
)

// Fragments renders live page regions from the current site content. It
// implements live.Renderer.
type Fragments struct {
	store *content.Store
}

// NewFragments returns a fragment renderer reading from store.
func NewFragments(store *content.Store) *Fragments {
	return &Fragments{store: store}
}

// Fragment writes f as an out-of-band swap.
func (fr *Fragments) Fragment(w io.Writer, f live.Fragment, v live.View) error {
	node, err := fr.node(f, v)
	if err != nil {
		return err
	}
	return node.Render(w)
}

func (fr *Fragments) node(f live.Fragment, v live.View) (g.Node, error) {
	site := fr.store.Site()
	switch f.Part {
	case live.PartNavbar:
		return partials.Navbar(site, v.Nav, partials.OOB()), nil
	case live.PartContactForm:
		return partials.ContactForm(v.Form, partials.OOB()), nil
	case live.PartFieldError:
		return partials.FieldError(f.Field, v.Form.Errors[f.Field], partials.OOB()), nil
	case live.PartFAQ:
		return partials.FAQList(site.Contact.FAQ.Items, v.FAQ, partials.OOB()), nil
	case live.PartNewsletter:
		return partials.NewsletterForm(site.Footer.Newsletter, v.Newsletter, partials.OOB()), nil
	case live.PartNotice:
		return partials.NoticeRegion(v.Notice, partials.FlashData{}, partials.OOB()), nil
	}
	return nil, fmt.Errorf("unknown fragment %s", f.Part)
}
