package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// livePrefix marks the routes addressed to a mounted page instance.
const livePrefix = "/live/"

// Logger is a middleware that injects a request-scoped logger into the context.
// The logger carries the request ID from the RequestID middleware, so it must
// be placed after it in the chain. Requests routed under /live/:id also carry
// the page instance id as page_id.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		attrs := []any{"request_id", c.Response().Header().Get(echo.HeaderXRequestID)}
		if strings.HasPrefix(c.Path(), livePrefix) {
			if id := c.Param("id"); id != "" {
				attrs = append(attrs, "page_id", id)
			}
		}

		ctx := WithLogger(c.Request().Context(), slog.Default().With(attrs...))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored by Logger or WithLogger, or the
// default logger when ctx has none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
