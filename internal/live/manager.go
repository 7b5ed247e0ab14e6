package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/faq"
	"github.com/nfrund/b2bsite/internal/nav"
	"github.com/nfrund/b2bsite/internal/newsletter"
	"github.com/nfrund/b2bsite/internal/notify"
	"github.com/nfrund/b2bsite/internal/pubsub"
)

// ErrInstanceNotFound is returned for an id that is not mounted.
var ErrInstanceNotFound = errors.New("page instance not found")

// ErrCapacity is returned by Mount when the registry is full and every
// instance has a socket attached.
var ErrCapacity = errors.New("page instance capacity reached")

// DefaultIdleTTL is how long an instance without a socket survives between
// events.
const DefaultIdleTTL = 30 * time.Minute

// DefaultMaxInstances bounds the registry when Config.MaxInstances is unset.
const DefaultMaxInstances = 5000

// minReapInterval keeps the reaper ticker valid for tiny TTLs.
const minReapInterval = time.Second

// Unmount reasons.
const (
	ReasonIdle       = "idle"
	ReasonDisconnect = "disconnect"
	ReasonShutdown   = "shutdown"
	ReasonEvicted    = "evicted"
)

// Config holds the collaborators shared by every instance.
type Config struct {
	Renderer  Renderer
	Submitter contact.Submitter
	Publisher pubsub.Publisher
	IdleTTL   time.Duration
	Logger    *slog.Logger

	// MaxInstances caps the mounted instances. When full, Mount evicts the
	// least recently seen instance without a socket.
	MaxInstances int
	// Now defaults to time.Now.
	Now func() time.Time
}

// MountOptions describe the page being mounted.
type MountOptions struct {
	Page Page
	// FAQItems is the number of FAQ entries shown on the page.
	FAQItems int
}

// Manager is the registry of mounted page instances.
type Manager struct {
	cfg       Config
	mu        sync.Mutex
	instances map[string]*Instance
}

// NewManager returns an empty registry.
func NewManager(cfg Config) *Manager {
	if cfg.Publisher == nil {
		cfg.Publisher = pubsub.Discard
	}
	if cfg.Submitter == nil {
		cfg.Submitter = contact.NewSimulatedSubmitter(contact.DefaultSubmitDelay)
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	if cfg.MaxInstances <= 0 {
		cfg.MaxInstances = DefaultMaxInstances
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Manager{cfg: cfg, instances: make(map[string]*Instance)}
}

// Mount creates an instance and starts its loop.
func (m *Manager) Mount(ctx context.Context, opts MountOptions) (*Instance, error) {
	if _, err := ParsePage(string(opts.Page)); err != nil {
		return nil, err
	}
	if m.cfg.Renderer == nil {
		return nil, fmt.Errorf("mount %s: no renderer configured", opts.Page)
	}

	id := uuid.NewString()
	loopCtx, cancel := context.WithCancel(context.Background())
	in := &Instance{
		id:        id,
		page:      opts.Page,
		renderer:  m.cfg.Renderer,
		submitter: notify.NewSubmitter(m.cfg.Submitter, m.cfg.Publisher, id),
		publisher: m.cfg.Publisher,
		logger:    m.cfg.Logger.With("page_id", id, "page", string(opts.Page)),
		now:       m.cfg.Now,
		jobs:      make(chan func()),
		quit:      make(chan struct{}),
		stopped:   make(chan struct{}),
		ctx:       loopCtx,
		cancel:    cancel,
		nav:       nav.NewController(),
		form:      contact.NewForm(),
		faq:       faq.New(opts.FAQItems),
		signup:    newsletter.New(),
	}
	in.touch()

	m.mu.Lock()
	var evicted *Instance
	if len(m.instances) >= m.cfg.MaxInstances {
		if evicted = m.oldestDetachedLocked(); evicted == nil {
			m.mu.Unlock()
			cancel()
			return nil, fmt.Errorf("mount %s: %w", opts.Page, ErrCapacity)
		}
		delete(m.instances, evicted.id)
	}
	m.instances[id] = in
	m.mu.Unlock()

	go in.run()

	if evicted != nil {
		evicted.stop()
		m.publishLifecycle(ctx, notify.PageUnmounted, evicted, ReasonEvicted)
	}
	m.publishLifecycle(ctx, notify.PageMounted, in, "")
	return in, nil
}

func (m *Manager) oldestDetachedLocked() *Instance {
	var oldest *Instance
	for _, in := range m.instances {
		if in.Attached() {
			continue
		}
		if oldest == nil || in.LastSeen().Before(oldest.LastSeen()) {
			oldest = in
		}
	}
	return oldest
}

// Get looks up a mounted instance.
func (m *Manager) Get(id string) (*Instance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	in, ok := m.instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	return in, nil
}

// Len returns the number of mounted instances.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.instances)
}

// Unmount stops the instance and forgets it. It reports false if id was not
// mounted, which makes repeated calls harmless.
func (m *Manager) Unmount(ctx context.Context, id, reason string) bool {
	m.mu.Lock()
	in, ok := m.instances[id]
	delete(m.instances, id)
	m.mu.Unlock()
	if !ok {
		return false
	}
	in.stop()
	m.publishLifecycle(ctx, notify.PageUnmounted, in, reason)
	return true
}

// Reap unmounts every instance without a socket that has been idle for
// longer than the configured TTL. It returns the number removed.
func (m *Manager) Reap(ctx context.Context) int {
	cutoff := m.cfg.Now().Add(-m.cfg.IdleTTL)
	var idle []string
	m.mu.Lock()
	for id, in := range m.instances {
		if !in.Attached() && in.LastSeen().Before(cutoff) {
			idle = append(idle, id)
		}
	}
	m.mu.Unlock()

	n := 0
	for _, id := range idle {
		if m.Unmount(ctx, id, ReasonIdle) {
			n++
		}
	}
	return n
}

// Run reaps idle instances until ctx is done, then unmounts everything.
func (m *Manager) Run(ctx context.Context) {
	interval := min(max(m.cfg.IdleTTL/4, minReapInterval), time.Minute)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := m.Reap(ctx); n > 0 {
				m.cfg.Logger.Debug("Reaped idle page instances", "count", n)
			}
		case <-ctx.Done():
			m.Shutdown(context.WithoutCancel(ctx))
			return
		}
	}
}

// Shutdown unmounts every instance.
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	ids := make([]string, 0, len(m.instances))
	for id := range m.instances {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	for _, id := range ids {
		m.Unmount(ctx, id, ReasonShutdown)
	}
}

func (m *Manager) publishLifecycle(ctx context.Context, event pubsub.Event[notify.PageLifecycle], in *Instance, reason string) {
	payload := notify.PageLifecycle{
		PageID: in.id,
		Page:   string(in.page),
		Reason: reason,
		At:     m.cfg.Now().UTC(),
	}
	if err := pubsub.Publish(ctx, m.cfg.Publisher, event, in.id, payload); err != nil {
		m.cfg.Logger.Error("Failed to publish page lifecycle", "event", event.Name(), "page_id", in.id, "error", err)
	}
}
