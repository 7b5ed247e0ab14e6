package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/b2bsite/internal/handlers"
	"github.com/nfrund/b2bsite/internal/middleware"
	"github.com/nfrund/b2bsite/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() error {
	pageHandler := handlers.NewPageHandler(s.manager, s.store, s.renderer)
	eventHandler := handlers.NewEventHandler(s.manager)
	newsletterHandler := handlers.NewNewsletterHandler(s.publisher)
	rateLimiter := middleware.RateLimiter(s.Cfg.GetRateLimitPerMinute())

	static, err := web.Static()
	if err != nil {
		return err
	}
	s.E.StaticFS("/static", static)

	s.E.GET("/", pageHandler.HomeGet)
	s.E.GET("/about", pageHandler.AboutGet)
	s.E.GET("/contact", pageHandler.ContactGet)

	live := s.E.Group("/live/:id")
	live.GET("/ws", s.socket.Handler)
	live.POST("/events", eventHandler.EventsPost)

	s.E.POST("/newsletter", newsletterHandler.NewsletterPost, rateLimiter)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	return nil
}
