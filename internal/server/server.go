package server

import (
	"errors"
	"net/url"
	"sync"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/b2bsite/internal/config"
	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/handlers"
	appmiddleware "github.com/nfrund/b2bsite/internal/middleware"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/internal/pubsub"
	"github.com/nfrund/b2bsite/internal/rendering"
	"github.com/nfrund/b2bsite/internal/websocket"
)

// Dependencies are the services the HTTP server is built from.
type Dependencies struct {
	Config    config.Provider
	Store     *content.Store
	Manager   *live.Manager
	Renderer  rendering.Renderer
	Publisher pubsub.Publisher
	// Echo is optional; a new instance is created when nil.
	Echo *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E         *echo.Echo
	Cfg       config.Provider
	store     *content.Store
	manager   *live.Manager
	renderer  rendering.Renderer
	publisher pubsub.Publisher
	socket    *websocket.Socket

	stopOnce sync.Once
	stopErr  error
}

// New creates a Server with its middleware chain installed. Routes are added
// by RegisterRoutes.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil || deps.Store == nil || deps.Manager == nil {
		return nil, errors.New("server: config, content store and page manager are required")
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer()
	}
	if deps.Publisher == nil {
		deps.Publisher = pubsub.Discard
	}
	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = deps.Renderer
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(deps.Store, deps.Renderer)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	if deps.Config.IsDevelopment() {
		e.Use(middleware.Logger())
	}

	// Sessions only carry flash messages between a form post and the
	// redirected page.
	cookies := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   !deps.Config.IsDevelopment(),
	}
	e.Use(session.Middleware(cookies))

	return &Server{
		E:         e,
		Cfg:       deps.Config,
		store:     deps.Store,
		manager:   deps.Manager,
		renderer:  deps.Renderer,
		publisher: deps.Publisher,
		socket:    websocket.NewSocket(deps.Manager, socketOptions(deps.Config)),
	}, nil
}

// socketOptions allows sockets from the configured public host. Development
// skips the origin check so any local port works.
func socketOptions(cfg config.Provider) websocket.Options {
	opts := websocket.Options{InsecureSkipVerify: cfg.IsDevelopment()}
	if u, err := url.Parse(cfg.GetAppBaseURL()); err == nil && u.Host != "" {
		opts.OriginPatterns = []string{u.Host}
	}
	return opts
}
