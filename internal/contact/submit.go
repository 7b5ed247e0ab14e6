package contact

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	SuccessMessage = "Thank you for your message! We'll get back to you soon."
	FailureMessage = "Sorry, there was an error submitting your form. Please try again."
)

// DefaultSubmitDelay is the length of the simulated round trip.
const DefaultSubmitDelay = 1500 * time.Millisecond

// ErrSubmissionFailed is the generic failure of a submission stage.
var ErrSubmissionFailed = errors.New("contact submission failed")

// AckKind classifies an Acknowledgment.
type AckKind int

const (
	Success AckKind = iota + 1
	Failure
)

// Acknowledgment is the user-visible outcome of a submission.
type Acknowledgment struct {
	Kind    AckKind
	Message string
}

// Receipt identifies an accepted submission.
type Receipt struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Submitter delivers the values of a valid form.
type Submitter interface {
	Submit(ctx context.Context, fields Fields) (Receipt, error)
}

// SimulatedSubmitter stands in for a backend: it waits for Delay and then
// succeeds, or fails with Err when Err is set. No data leaves the process.
type SimulatedSubmitter struct {
	Delay time.Duration
	Err   error
	// After defaults to time.After.
	After func(time.Duration) <-chan time.Time
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewSimulatedSubmitter returns a submitter that always succeeds after delay.
func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{Delay: delay}
}

// Submit waits out the delay and returns a receipt. The wait is not
// cancellable: once started it always runs to completion, so ctx is only
// checked before the wait begins.
func (s *SimulatedSubmitter) Submit(ctx context.Context, _ Fields) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	after := s.After
	if after == nil {
		after = time.After
	}
	<-after(s.Delay)

	if s.Err != nil {
		return Receipt{}, errors.Join(ErrSubmissionFailed, s.Err)
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}
	return Receipt{ID: uuid.NewString(), SubmittedAt: now().UTC()}, nil
}

// Submit runs the whole submission synchronously: validate, send through s,
// then apply the outcome. It returns false and a zero Acknowledgment if the
// form was invalid or already submitting.
func (f *Form) Submit(ctx context.Context, s Submitter) (Acknowledgment, bool) {
	fields, ok := f.Begin()
	if !ok {
		return Acknowledgment{}, false
	}
	_, err := s.Submit(ctx, fields)
	return f.Complete(err), true
}
