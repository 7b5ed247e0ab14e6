package pages

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/live"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestHome(t *testing.T) {
	home := content.Default().Site().Home
	out := render(t, Home(home))
	assert.Contains(t, out, home.Title)
	assert.Contains(t, out, home.Tagline)
}

func TestAbout(t *testing.T) {
	about := content.Default().Site().About
	out := render(t, About(about))
	assert.Contains(t, out, about.Title)
}

func TestContact(t *testing.T) {
	cp := content.Default().Site().Contact
	out := render(t, Contact(cp, live.View{
		Page: live.PageContact,
		Form: contact.Snapshot{Errors: contact.Errors{contact.Name: "Name is required"}},
	}))
	assert.Contains(t, out, `id="contact-form"`)
	assert.Contains(t, out, `id="faq"`)
	assert.Contains(t, out, "Name is required")
	assert.Contains(t, out, cp.FAQ.Heading)
}

func TestErrorPage(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, ErrorPage(http.StatusNotFound, "").Render(context.Background(), &b))
	assert.Contains(t, b.String(), "404")
	assert.Contains(t, b.String(), "Not Found")
	assert.Contains(t, b.String(), "does not exist yet")

	b.Reset()
	require.NoError(t, ErrorPage(http.StatusTeapot, "<b>brewing</b>").Render(context.Background(), &b))
	assert.Contains(t, b.String(), "&lt;b&gt;brewing&lt;/b&gt;")
}
