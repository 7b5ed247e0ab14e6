// Package content holds the static copy of the marketing site: brand, menus,
// footer, and the copy of each page.
package content

import "html/template"

// Site is the complete content document.
type Site struct {
	Brand   Brand       `yaml:"brand" validate:"required"`
	Nav     Nav         `yaml:"nav" validate:"required"`
	Footer  Footer      `yaml:"footer" validate:"required"`
	Home    Home        `yaml:"home" validate:"required"`
	About   About       `yaml:"about" validate:"required"`
	Contact ContactPage `yaml:"contact" validate:"required"`
}

type Brand struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Main        string `yaml:"main" validate:"required"`
	Accent      string `yaml:"accent"`
}

// Link is a navigable destination.
type Link struct {
	Label       string `yaml:"label" validate:"required"`
	Href        string `yaml:"href" validate:"required,sitehref"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// Menu is a dropdown panel under a top-level trigger.
type Menu struct {
	ID      string `yaml:"id" validate:"required,oneof=solutions resources"`
	Label   string `yaml:"label" validate:"required"`
	Icon    string `yaml:"icon"`
	Heading string `yaml:"heading"`
	Blurb   string `yaml:"blurb"`
	Items   []Link `yaml:"items" validate:"min=1,dive"`
}

// Nav lists the top-level navigation in display order: leading links, the
// dropdown menus, trailing links, then the call-to-action button.
type Nav struct {
	Leading  []Link `yaml:"leading" validate:"dive"`
	Menus    []Menu `yaml:"menus" validate:"max=2,unique=ID,dive"`
	Trailing []Link `yaml:"trailing" validate:"dive"`
	CTA      Link   `yaml:"cta" validate:"required"`
}

// Menu returns the menu with the given id.
func (n Nav) Menu(id string) (Menu, bool) {
	for _, m := range n.Menus {
		if m.ID == id {
			return m, true
		}
	}
	return Menu{}, false
}

// Destinations returns every navigable href in the bar, in display order.
func (n Nav) Destinations() []string {
	var out []string
	for _, l := range n.Leading {
		out = append(out, l.Href)
	}
	for _, m := range n.Menus {
		for _, l := range m.Items {
			out = append(out, l.Href)
		}
	}
	for _, l := range n.Trailing {
		out = append(out, l.Href)
	}
	return append(out, n.CTA.Href)
}

type Newsletter struct {
	Heading     string `yaml:"heading" validate:"required"`
	Blurb       string `yaml:"blurb"`
	Placeholder string `yaml:"placeholder"`
	Button      string `yaml:"button" validate:"required"`
}

type FooterColumn struct {
	Heading string `yaml:"heading" validate:"required"`
	Links   []Link `yaml:"links" validate:"dive"`
}

type Footer struct {
	Newsletter Newsletter     `yaml:"newsletter" validate:"required"`
	Columns    []FooterColumn `yaml:"columns" validate:"dive"`
	Copyright  string         `yaml:"copyright"`
}

type Home struct {
	Title       string        `yaml:"title" validate:"required"`
	Tagline     string        `yaml:"tagline"`
	TaglineHTML template.HTML `yaml:"-"`
	CTA         Link          `yaml:"cta" validate:"required"`
}

type Section struct {
	Title string `yaml:"title" validate:"required"`
	Body  string `yaml:"body"`
}

type About struct {
	Title     string        `yaml:"title" validate:"required"`
	Intro     string        `yaml:"intro"`
	IntroHTML template.HTML `yaml:"-"`
	Sections  []Section     `yaml:"sections" validate:"dive"`
	Closing   string        `yaml:"closing"`
}

// Card is one of the contact method cards under the contact hero.
type Card struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title" validate:"required"`
	Detail      string `yaml:"detail" validate:"required"`
	Description string `yaml:"description"`
}

type InfoItem struct {
	Icon   string `yaml:"icon"`
	Title  string `yaml:"title" validate:"required"`
	Detail string `yaml:"detail"`
}

type FormCopy struct {
	Heading string     `yaml:"heading" validate:"required"`
	Blurb   string     `yaml:"blurb"`
	Info    []InfoItem `yaml:"info" validate:"dive"`
}

type Question struct {
	Question   string        `yaml:"question" validate:"required"`
	Answer     string        `yaml:"answer" validate:"required"`
	AnswerHTML template.HTML `yaml:"-"`
}

type FAQ struct {
	Heading string     `yaml:"heading" validate:"required"`
	Blurb   string     `yaml:"blurb"`
	Items   []Question `yaml:"items" validate:"dive"`
}

type CallToAction struct {
	Heading string `yaml:"heading" validate:"required"`
	Blurb   string `yaml:"blurb"`
	Link    Link   `yaml:"link" validate:"required"`
}

type ContactPage struct {
	Title   string       `yaml:"title" validate:"required"`
	Tagline string       `yaml:"tagline"`
	Cards   []Card       `yaml:"cards" validate:"dive"`
	Form    FormCopy     `yaml:"form" validate:"required"`
	FAQ     FAQ          `yaml:"faq" validate:"required"`
	CTA     CallToAction `yaml:"cta" validate:"required"`
}
