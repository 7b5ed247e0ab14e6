package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(f *Form, fields Fields) {
	for _, name := range AllFields {
		f.Change(name, fields.Get(name))
	}
}

func TestForm_ChangeClearsOnlyThatError(t *testing.T) {
	f := NewForm()
	require.False(t, f.Validate())
	require.Len(t, f.Snapshot().Errors, 4)

	cleared := f.Change(Email, "not-an-email")
	assert.True(t, cleared)

	snap := f.Snapshot()
	assert.NotContains(t, snap.Errors, Email, "editing clears the field's error without revalidating")
	assert.Len(t, snap.Errors, 3)
	assert.Equal(t, "not-an-email", snap.Fields.Email)

	assert.False(t, f.Change(Email, "still-bad"), "nothing left to clear")
}

func TestForm_ValidateIsAuthoritative(t *testing.T) {
	f := NewForm()
	f.Validate()
	f.Change(Email, "a@b")

	assert.False(t, f.Validate())
	assert.Equal(t, "Please enter a valid email address", f.Snapshot().Errors[Email], "validation supersedes the optimistic clear")

	fill(f, validFields())
	assert.True(t, f.Validate())
	assert.Empty(t, f.Snapshot().Errors, "fixed fields drop out of the map")
}

func TestForm_ValidateIdempotent(t *testing.T) {
	f := NewForm()
	f.Change(Message, "too short")
	f.Validate()
	first := f.Snapshot().Errors
	f.Validate()
	assert.Equal(t, first, f.Snapshot().Errors)
}

func TestForm_SnapshotIsACopy(t *testing.T) {
	f := NewForm()
	f.Validate()
	snap := f.Snapshot()
	snap.Errors[Name] = "changed"
	delete(snap.Errors, Email)

	again := f.Snapshot()
	assert.Equal(t, "Name is required", again.Errors[Name])
	assert.Contains(t, again.Errors, Email)
}

func TestForm_BeginInvalid(t *testing.T) {
	f := NewForm()
	f.Change(Name, "Ada")

	_, ok := f.Begin()
	assert.False(t, ok)
	assert.False(t, f.Submitting())
	assert.Equal(t, "Ada", f.Snapshot().Fields.Name, "an invalid submit only touches errors")
	assert.Len(t, f.Snapshot().Errors, 3)
}

func TestForm_BeginComplete(t *testing.T) {
	f := NewForm()
	fill(f, validFields())

	sent, ok := f.Begin()
	require.True(t, ok)
	assert.Equal(t, validFields(), sent)
	assert.True(t, f.Submitting())

	_, again := f.Begin()
	assert.False(t, again, "a second submit while in flight is ignored")

	ack := f.Complete(nil)
	assert.Equal(t, Acknowledgment{Kind: Success, Message: SuccessMessage}, ack)
	assert.Equal(t, Snapshot{Errors: Errors{}}, f.Snapshot())
}

func TestForm_CompleteFailureKeepsValues(t *testing.T) {
	f := NewForm()
	fill(f, validFields())
	_, ok := f.Begin()
	require.True(t, ok)

	ack := f.Complete(ErrSubmissionFailed)
	assert.Equal(t, Failure, ack.Kind)
	assert.Equal(t, FailureMessage, ack.Message)
	assert.False(t, f.Submitting())
	assert.Equal(t, validFields(), f.Snapshot().Fields)
}

func TestForm_SubmitWithSimulatedDelay(t *testing.T) {
	const delay = 60 * time.Millisecond

	f := NewForm()
	fill(f, validFields())

	observed := make(chan bool, 1)
	s := &SimulatedSubmitter{
		Delay: delay,
		After: func(d time.Duration) <-chan time.Time {
			observed <- f.Submitting()
			return time.After(d)
		},
	}

	start := time.Now()
	ack, ok := f.Submit(context.Background(), s)
	elapsed := time.Since(start)

	require.True(t, ok)
	assert.True(t, <-observed, "submitting is set before the wait begins")
	assert.GreaterOrEqual(t, elapsed, delay)
	assert.Equal(t, Success, ack.Kind)
	assert.False(t, f.Submitting())
	assert.Equal(t, Fields{}, f.Snapshot().Fields)
	assert.Empty(t, f.Snapshot().Errors)
}

func TestSimulatedSubmitter(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	instant := func(time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- fixed
		return ch
	}

	t.Run("success", func(t *testing.T) {
		s := &SimulatedSubmitter{After: instant, Now: func() time.Time { return fixed }}
		r, err := s.Submit(context.Background(), validFields())
		require.NoError(t, err)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, fixed, r.SubmittedAt)
	})

	t.Run("failure branch", func(t *testing.T) {
		boom := errors.New("boom")
		s := &SimulatedSubmitter{After: instant, Err: boom}
		_, err := s.Submit(context.Background(), validFields())
		assert.ErrorIs(t, err, ErrSubmissionFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := &SimulatedSubmitter{After: instant}
		_, err := s.Submit(ctx, validFields())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("default delay", func(t *testing.T) {
		assert.Equal(t, 1500*time.Millisecond, DefaultSubmitDelay)
		assert.Equal(t, DefaultSubmitDelay, NewSimulatedSubmitter(DefaultSubmitDelay).Delay)
	})
}
