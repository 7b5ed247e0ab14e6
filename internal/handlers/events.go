package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/internal/middleware"
)

// EventHandler applies page events posted over plain HTTP, for clients that
// cannot hold a socket open.
type EventHandler struct {
	manager *live.Manager
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(manager *live.Manager) *EventHandler {
	return &EventHandler{manager: manager}
}

// EventsPost handles POST /live/:id/events. The response body holds the
// out-of-band fragments of every region that changed, and is empty when
// nothing did.
func (h *EventHandler) EventsPost(c echo.Context) error {
	in, err := h.manager.Get(c.Param("id"))
	if err != nil {
		return err
	}
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form").SetInternal(err)
	}
	ev, err := live.ParseEvent(live.FormValues(form))
	if err != nil {
		return err
	}

	out, err := in.Dispatch(c.Request().Context(), ev)
	if err != nil {
		if errors.Is(err, live.ErrInvalidEvent) {
			middleware.FromContext(c.Request().Context()).Warn("Rejected page event", "event", string(ev.Name), "error", err)
		}
		return err
	}
	if len(out) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.HTMLBlob(http.StatusOK, out)
}
