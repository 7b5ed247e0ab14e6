// Package app assembles the site's services and runs them.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/b2bsite/internal/config"
	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/internal/notify"
	"github.com/nfrund/b2bsite/internal/pubsub"
	"github.com/nfrund/b2bsite/internal/rendering"
	"github.com/nfrund/b2bsite/internal/server"
)

// Bus is the in-process event bus. It is released when the injector shuts
// down.
type Bus struct {
	*pubsub.WatermillBridge
}

// Shutdown closes the bus.
func (b *Bus) Shutdown() error {
	return b.Close()
}

// App owns the dependency injector.
type App struct {
	injector *do.RootScope
}

// New registers every service provider. Nothing is constructed until Run or
// Invoke asks for it.
func New(cfg config.Provider) *App {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.Provide(injector, provideStore)
	do.Provide(injector, provideBus)
	do.Provide(injector, provideRenderer)
	do.Provide(injector, provideFragments)
	do.Provide(injector, provideManager)
	do.Provide(injector, provideServer)
	return &App{injector: injector}
}

// Injector exposes the container, mainly for tests.
func (a *App) Injector() do.Injector {
	return a.injector
}

// Run starts the background services and serves HTTP until ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	cfg := do.MustInvoke[config.Provider](a.injector)

	bus, err := do.Invoke[*Bus](a.injector)
	if err != nil {
		return err
	}
	if err := notify.NewRecorder(slog.Default()).Start(ctx, bus); err != nil {
		return fmt.Errorf("start event recorder: %w", err)
	}

	if cfg.GetContentWatch() {
		store, err := do.Invoke[*content.Store](a.injector)
		if err != nil {
			return err
		}
		if err := store.Watch(ctx, nil); err != nil {
			return err
		}
	}

	manager, err := do.Invoke[*live.Manager](a.injector)
	if err != nil {
		return err
	}
	go manager.Run(ctx)

	srv, err := do.Invoke[*server.Server](a.injector)
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}

// Shutdown releases every constructed service, dependents first.
func (a *App) Shutdown() error {
	report := a.injector.Shutdown()
	if report != nil && !report.Succeed {
		return errors.New(report.Error())
	}
	return nil
}

func provideStore(i do.Injector) (*content.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	store, err := content.NewStore(afero.NewOsFs(), cfg.GetContentFile())
	if err != nil {
		return nil, fmt.Errorf("load site content: %w", err)
	}
	return store, nil
}

func provideBus(do.Injector) (*Bus, error) {
	return &Bus{WatermillBridge: pubsub.NewWatermillBridge(slog.Default())}, nil
}

func provideRenderer(do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideFragments(i do.Injector) (*rendering.Fragments, error) {
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return nil, err
	}
	return rendering.NewFragments(store), nil
}

func provideManager(i do.Injector) (*live.Manager, error) {
	cfg := do.MustInvoke[config.Provider](i)
	fragments, err := do.Invoke[*rendering.Fragments](i)
	if err != nil {
		return nil, err
	}
	bus, err := do.Invoke[*Bus](i)
	if err != nil {
		return nil, err
	}
	return live.NewManager(live.Config{
		Renderer:     fragments,
		Submitter:    contact.NewSimulatedSubmitter(cfg.GetSubmitDelay()),
		Publisher:    bus,
		IdleTTL:      cfg.GetPageIdleTTL(),
		MaxInstances: cfg.GetPageMaxInstances(),
		Logger:       slog.Default(),
	}), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[config.Provider](i)
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return nil, err
	}
	manager, err := do.Invoke[*live.Manager](i)
	if err != nil {
		return nil, err
	}
	renderer, err := do.Invoke[rendering.Renderer](i)
	if err != nil {
		return nil, err
	}
	bus, err := do.Invoke[*Bus](i)
	if err != nil {
		return nil, err
	}

	srv, err := server.New(server.Dependencies{
		Config:    cfg,
		Store:     store,
		Manager:   manager,
		Renderer:  renderer,
		Publisher: bus,
	})
	if err != nil {
		return nil, err
	}
	if err := srv.RegisterRoutes(); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}
	return srv, nil
}
