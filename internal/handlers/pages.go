package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/internal/middleware"
	"github.com/nfrund/b2bsite/internal/rendering"
	"github.com/nfrund/b2bsite/internal/view"
	"github.com/nfrund/b2bsite/web/src/templates/layouts"
	"github.com/nfrund/b2bsite/web/src/templates/pages"
)

// PageHandler serves the site's pages. Every GET mounts a fresh page
// instance that the browser then connects to over the socket.
type PageHandler struct {
	manager  *live.Manager
	store    *content.Store
	renderer rendering.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(manager *live.Manager, store *content.Store, renderer rendering.Renderer) *PageHandler {
	return &PageHandler{manager: manager, store: store, renderer: renderer}
}

// HomeGet handles GET /.
func (h *PageHandler) HomeGet(c echo.Context) error {
	site := h.store.Site()
	return h.serve(c, live.PageHome, "", 0, func(live.View) g.Node {
		return pages.Home(site.Home)
	})
}

// AboutGet handles GET /about.
func (h *PageHandler) AboutGet(c echo.Context) error {
	site := h.store.Site()
	return h.serve(c, live.PageAbout, site.About.Title, 0, func(live.View) g.Node {
		return pages.About(site.About)
	})
}

// ContactGet handles GET /contact.
func (h *PageHandler) ContactGet(c echo.Context) error {
	site := h.store.Site()
	return h.serve(c, live.PageContact, site.Contact.Title, len(site.Contact.FAQ.Items), func(v live.View) g.Node {
		return pages.Contact(site.Contact, v)
	})
}

func (h *PageHandler) serve(c echo.Context, page live.Page, title string, faqItems int, body func(live.View) g.Node) error {
	ctx := c.Request().Context()
	in, err := h.manager.Mount(ctx, live.MountOptions{Page: page, FAQItems: faqItems})
	if err != nil {
		return err
	}
	v, err := in.View(ctx)
	if err != nil {
		return err
	}
	middleware.FromContext(ctx).Debug("Mounted page", "page", string(page), "page_id", in.ID())

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Page(layouts.Props{
		Title: title,
		Site:  h.store.Site(),
		View:  v,
		Flash: view.GetFlashData(c),
	}, body(v)))
}
