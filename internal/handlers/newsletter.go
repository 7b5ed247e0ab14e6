package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/b2bsite/internal/middleware"
	"github.com/nfrund/b2bsite/internal/newsletter"
	"github.com/nfrund/b2bsite/internal/notify"
	"github.com/nfrund/b2bsite/internal/pubsub"
	"github.com/nfrund/b2bsite/internal/view"
)

const invalidNewsletterEmail = "Please enter a valid email address."

// NewsletterHandler accepts newsletter signups posted without scripts.
// Scripted pages sign up over the page socket instead.
type NewsletterHandler struct {
	publisher pubsub.Publisher
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(publisher pubsub.Publisher) *NewsletterHandler {
	return &NewsletterHandler{publisher: publisher}
}

// NewsletterPost handles POST /newsletter: it flashes the acknowledgment and
// redirects back to the page the form was on.
func (h *NewsletterHandler) NewsletterPost(c echo.Context) error {
	back := backTo(c)
	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, invalidNewsletterEmail)
		return c.Redirect(http.StatusSeeOther, back)
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, invalidNewsletterEmail)
		return c.Redirect(http.StatusSeeOther, back)
	}

	ctx := c.Request().Context()
	payload := notify.Subscription{Email: req.Email, At: time.Now().UTC()}
	if err := pubsub.Publish(ctx, h.publisher, notify.NewsletterSubscribed, "", payload); err != nil {
		middleware.FromContext(ctx).Error("Failed to publish newsletter signup", "error", err)
	}

	view.SetFlashSuccess(c, newsletter.Acknowledgment(req.Email))
	return c.Redirect(http.StatusSeeOther, back)
}

// backTo returns the same-site path of the referring page, or "/".
func backTo(c echo.Context) string {
	ref, err := url.Parse(c.Request().Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") {
		return "/"
	}
	if ref.Host != "" && ref.Host != c.Request().Host {
		return "/"
	}
	return ref.Path
}
