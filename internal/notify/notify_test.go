package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmitter struct {
	receipt contact.Receipt
	err     error
}

func (s stubSubmitter) Submit(context.Context, contact.Fields) (contact.Receipt, error) {
	return s.receipt, s.err
}

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// syncBuffer guards a bytes.Buffer written by subscriber goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSubmitter_PublishesOnSuccess(t *testing.T) {
	pub := &recordingPublisher{}
	receipt := contact.Receipt{ID: "r-1", SubmittedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	fields := contact.Fields{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello there, team"}

	got, err := NewSubmitter(stubSubmitter{receipt: receipt}, pub, "page-9").Submit(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, receipt, got)

	require.Len(t, pub.msgs, 1)
	msg := pub.msgs[0]
	assert.Equal(t, ContactSubmissionCompleted.Name(), msg.Topic)
	assert.Equal(t, "page-9", msg.PageID)

	decoded, err := ContactSubmissionCompleted.Decode(msg)
	require.NoError(t, err)
	assert.Equal(t, fields, decoded.Fields)
	assert.Equal(t, "r-1", decoded.Receipt.ID)
}

func TestSubmitter_FailureIsNotPublished(t *testing.T) {
	pub := &recordingPublisher{}
	_, err := NewSubmitter(stubSubmitter{err: contact.ErrSubmissionFailed}, pub, "page-9").
		Submit(context.Background(), contact.Fields{})
	assert.ErrorIs(t, err, contact.ErrSubmissionFailed)
	assert.Empty(t, pub.msgs)
}

func TestRecorder_LogsEvents(t *testing.T) {
	bridge := pubsub.NewWatermillBridge(nil)
	defer bridge.Close()

	out := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, NewRecorder(logger).Start(ctx, bridge))

	require.NoError(t, pubsub.Publish(ctx, bridge, NewsletterSubscribed, "page-1", Subscription{Email: "reader@example.com"}))
	require.NoError(t, pubsub.Publish(ctx, bridge, PageMounted, "page-1", PageLifecycle{PageID: "page-1", Page: "home"}))

	assert.Eventually(t, func() bool {
		s := out.String()
		return strings.Contains(s, "reader@example.com") && strings.Contains(s, "page=home")
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRecorder_BadPayload(t *testing.T) {
	r := NewRecorder(nil)
	err := r.onSubmission(context.Background(), pubsub.Message{Payload: []byte("{")})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, contact.ErrSubmissionFailed))
}
