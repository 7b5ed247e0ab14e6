package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/b2bsite/internal/pubsub"
)

// Recorder logs the site's domain events.
type Recorder struct {
	logger *slog.Logger
}

// NewRecorder returns a Recorder writing to logger, or to the default logger
// when logger is nil.
func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{logger: logger.With("component", "notify")}
}

// Start subscribes to every domain topic. Consumption stops when ctx ends.
func (r *Recorder) Start(ctx context.Context, sub pubsub.Subscriber) error {
	handlers := map[string]pubsub.Handler{
		PageMounted.Name():                r.onPageLifecycle(PageMounted),
		PageUnmounted.Name():              r.onPageLifecycle(PageUnmounted),
		ContactSubmissionCompleted.Name(): r.onSubmission,
		NewsletterSubscribed.Name():       r.onSubscription,
	}
	for topic, h := range handlers {
		if err := sub.Subscribe(ctx, topic, h); err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
	}
	return nil
}

func (r *Recorder) onPageLifecycle(event pubsub.Event[PageLifecycle]) pubsub.Handler {
	return func(ctx context.Context, msg pubsub.Message) error {
		p, err := event.Decode(msg)
		if err != nil {
			return err
		}
		r.logger.DebugContext(ctx, "Page lifecycle", "event", event.Name(), "page_id", p.PageID, "page", p.Page, "reason", p.Reason)
		return nil
	}
}

func (r *Recorder) onSubmission(ctx context.Context, msg pubsub.Message) error {
	s, err := ContactSubmissionCompleted.Decode(msg)
	if err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "Contact form submitted",
		"page_id", msg.PageID,
		"receipt", s.Receipt.ID,
		"name", s.Fields.Name,
		"email", s.Fields.Email,
		"subject", s.Fields.Subject,
	)
	return nil
}

func (r *Recorder) onSubscription(ctx context.Context, msg pubsub.Message) error {
	s, err := NewsletterSubscribed.Decode(msg)
	if err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "Newsletter subscription", "page_id", msg.PageID, "email", s.Email)
	return nil
}
