package handlers

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/internal/middleware"
	"github.com/nfrund/b2bsite/internal/rendering"
	"github.com/nfrund/b2bsite/internal/view"
	"github.com/nfrund/b2bsite/web/src/templates/layouts"
	"github.com/nfrund/b2bsite/web/src/templates/pages"
)

// StatusFor maps an error to the HTTP status it should produce.
func StatusFor(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, live.ErrInstanceNotFound), errors.Is(err, live.ErrUnmounted):
		return http.StatusNotFound
	case errors.Is(err, live.ErrInvalidEvent):
		return http.StatusBadRequest
	case errors.Is(err, live.ErrCapacity):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the body sent to clients that accept JSON. Code is the
// snake_case status text, e.g. "too_many_requests".
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newErrorResponse(status int, message string) ErrorResponse {
	code := strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
	return ErrorResponse{Code: code, Message: message}
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler. htmx requests get a
// plain message, JSON clients an ErrorResponse, and browsers the error page.
func NewHTTPErrorHandler(store *content.Store, renderer rendering.Renderer) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := StatusFor(err)
		ctx := c.Request().Context()
		logger := middleware.FromContext(ctx)
		if status >= http.StatusInternalServerError {
			logger.Error("Internal Server Error (Unhandled)",
				"path", c.Request().URL.Path,
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		} else {
			logger.Debug("Request rejected", "path", c.Request().URL.Path, "status", status, "error", err)
		}

		message := publicMessage(err, status)
		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(status)
		case c.Request().Header.Get("HX-Request") == "true":
			respErr = c.String(status, message)
		case strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON):
			respErr = c.JSON(status, newErrorResponse(status, message))
		default:
			page := view.AdaptTemplToGomponent(ctx, pages.ErrorPage(status, pageMessage(err)))
			respErr = renderer.RenderPage(c, status, layouts.Page(layouts.Props{
				Title: http.StatusText(status),
				Site:  store.Site(),
			}, page))
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}

func publicMessage(err error, status int) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok {
			return s
		}
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	if errors.Is(err, live.ErrInvalidEvent) {
		return err.Error()
	}
	return http.StatusText(status)
}

// pageMessage is the explanation on the error page; empty selects the
// page's default for the status.
func pageMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusTooManyRequests {
		if s, ok := he.Message.(string); ok {
			return s
		}
	}
	return ""
}
