package notify

import (
	"context"
	"log/slog"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/pubsub"
)

// Submitter wraps another contact.Submitter and announces every accepted
// submission on the bus. Failures are returned untouched and not announced.
type Submitter struct {
	next      contact.Submitter
	publisher pubsub.Publisher
	pageID    string
}

// NewSubmitter decorates next for the page instance pageID.
func NewSubmitter(next contact.Submitter, publisher pubsub.Publisher, pageID string) *Submitter {
	return &Submitter{next: next, publisher: publisher, pageID: pageID}
}

// Submit implements contact.Submitter.
func (s *Submitter) Submit(ctx context.Context, fields contact.Fields) (contact.Receipt, error) {
	receipt, err := s.next.Submit(ctx, fields)
	if err != nil {
		return receipt, err
	}
	payload := SubmissionCompleted{Receipt: receipt, Fields: fields}
	if err := pubsub.Publish(ctx, s.publisher, ContactSubmissionCompleted, s.pageID, payload); err != nil {
		// The submission stands even when the announcement is lost.
		slog.Error("Failed to publish contact submission", "page_id", s.pageID, "receipt", receipt.ID, "error", err)
	}
	return receipt, nil
}
