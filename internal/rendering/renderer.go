package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer turns components into HTML. A component is either a
// templ.Component or a gomponents node.
type Renderer interface {
	echo.Renderer

	// RenderComponent renders a component on its own, outside a response.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a complete HTML response.
	RenderPage(c echo.Context, status int, component any) error
}

// node is the method set of a gomponents node.
type node interface {
	Render(w io.Writer) error
}

// Write renders component to w.
func Write(ctx context.Context, w io.Writer, component any) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

var buffers = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// UniversalRenderer renders both component kinds. It doubles as the echo
// Renderer, with the component passed as the data argument of c.Render.
type UniversalRenderer struct{}

// NewUniversalRenderer returns a UniversalRenderer.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// RenderComponent implements Renderer.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(ctx, &buf, component); err != nil {
		return nil, fmt.Errorf("render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer. Nothing is written to the response until
// the whole page has rendered, so a failure can still become an error page.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	buf := buffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		buffers.Put(buf)
	}()

	if err := Write(c.Request().Context(), buf, component); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// Render implements echo.Renderer. The template name is ignored.
func (r *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return Write(c.Request().Context(), w, data)
}
