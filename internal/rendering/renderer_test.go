package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/faq"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/internal/nav"
)

func TestUniversalRenderer_RenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	out, err := r.RenderComponent(context.Background(), Div(Class("x"), g.Text("gomponent")))
	require.NoError(t, err)
	assert.Equal(t, `<div class="x">gomponent</div>`, string(out))

	tc := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>templ</p>")
		return err
	})
	out, err = r.RenderComponent(context.Background(), tc)
	require.NoError(t, err)
	assert.Equal(t, "<p>templ</p>", string(out))

	_, err = r.RenderComponent(context.Background(), 42)
	assert.ErrorContains(t, err, "unsupported component type: int")
}

func TestUniversalRenderer_RenderPage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewUniversalRenderer().RenderPage(c, http.StatusTeapot, P(g.Text("short and stout"))))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<p>short and stout</p>", rec.Body.String())
}

func TestUniversalRenderer_EchoRenderer(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", Span(g.Text("ok")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<span>ok</span>", rec.Body.String())
}

func render(t *testing.T, f live.Fragment, v live.View) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, NewFragments(content.Default()).Fragment(&b, f, v))
	return b.String()
}

func TestFragments(t *testing.T) {
	t.Run("navbar", func(t *testing.T) {
		out := render(t, live.Fragment{Part: live.PartNavbar}, live.View{Nav: nav.State{ActiveDropdown: nav.Solutions, MobileMenuOpen: true}})
		assert.Contains(t, out, `id="navbar"`)
		assert.Contains(t, out, `hx-swap-oob="true"`)
		assert.Contains(t, out, "dropdown-menu show")
		assert.Contains(t, out, "outside-press-listener")
	})

	t.Run("field error", func(t *testing.T) {
		out := render(t, live.Fragment{Part: live.PartFieldError, Field: contact.Email},
			live.View{Form: contact.Snapshot{Errors: contact.Errors{contact.Email: "Email is invalid"}}})
		assert.True(t, strings.HasPrefix(out, "<span"))
		assert.Contains(t, out, `id="contact-error-email"`)
		assert.Contains(t, out, "Email is invalid")
		assert.Contains(t, out, `hx-swap-oob="true"`)
	})

	t.Run("faq", func(t *testing.T) {
		out := render(t, live.Fragment{Part: live.PartFAQ}, live.View{FAQ: faq.State{Active: 2, Open: true}})
		assert.Equal(t, 1, strings.Count(out, `class="active faq-item"`))
		assert.Contains(t, out, "international contact numbers")
	})

	t.Run("notice", func(t *testing.T) {
		out := render(t, live.Fragment{Part: live.PartNotice}, live.View{Notice: &live.Notice{Success: true, Message: "Thanks"}})
		assert.Contains(t, out, "notice-success")
		assert.Contains(t, out, "Thanks")
	})

	t.Run("unknown part", func(t *testing.T) {
		var b strings.Builder
		err := NewFragments(content.Default()).Fragment(&b, live.Fragment{Part: live.Part(0)}, live.View{})
		assert.Error(t, err)
	})
}
