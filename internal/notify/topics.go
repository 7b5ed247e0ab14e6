// Package notify defines the site's domain events and the subscriber that
// records them.
package notify

import (
	"time"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/pubsub"
)

// PageLifecycle is published when a page instance is mounted or unmounted.
type PageLifecycle struct {
	PageID string    `json:"page_id"`
	Page   string    `json:"page"`
	Reason string    `json:"reason,omitempty"`
	At     time.Time `json:"at"`
}

// SubmissionCompleted is published after a contact submission finishes.
type SubmissionCompleted struct {
	Receipt contact.Receipt `json:"receipt"`
	Fields  contact.Fields  `json:"fields"`
}

// Subscription is published when a visitor signs up for the newsletter.
type Subscription struct {
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

var (
	PageMounted   = pubsub.NewEvent[PageLifecycle]("page.mounted", "A page instance was mounted")
	PageUnmounted = pubsub.NewEvent[PageLifecycle]("page.unmounted", "A page instance was unmounted")

	ContactSubmissionCompleted = pubsub.NewEvent[SubmissionCompleted]("contact.submission.completed", "A contact form submission was accepted")
	NewsletterSubscribed       = pubsub.NewEvent[Subscription]("newsletter.subscribed", "A visitor subscribed to the newsletter")
)
