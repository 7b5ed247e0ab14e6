package live

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/faq"
	"github.com/nfrund/b2bsite/internal/nav"
	"github.com/nfrund/b2bsite/internal/newsletter"
	"github.com/nfrund/b2bsite/internal/notify"
	"github.com/nfrund/b2bsite/internal/pubsub"
)

// ErrUnmounted is returned when talking to an instance whose loop has
// stopped.
var ErrUnmounted = errors.New("page instance unmounted")

// outboundBuffer bounds the fragments queued for a slow socket.
const outboundBuffer = 32

// Instance is one mounted page. All of its state is owned by a single loop
// goroutine; every method hands work to that loop and waits for it.
type Instance struct {
	id        string
	page      Page
	renderer  Renderer
	submitter contact.Submitter
	publisher pubsub.Publisher
	logger    *slog.Logger
	now       func() time.Time

	jobs     chan func()
	quit     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	ctx      context.Context
	cancel   context.CancelFunc

	lastSeen atomic.Int64
	attached atomic.Bool

	// Owned by the loop.
	nav      *nav.Controller
	form     *contact.Form
	faq      *faq.Accordion
	signup   *newsletter.Signup
	notice   *Notice
	outbound chan []byte
	pending  changes
}

// ID returns the instance identifier.
func (in *Instance) ID() string {
	return in.id
}

// Page returns the kind of page the instance serves.
func (in *Instance) Page() Page {
	return in.page
}

// Attached reports whether a socket is receiving pushed fragments.
func (in *Instance) Attached() bool {
	return in.attached.Load()
}

// LastSeen is the time of the most recent event or attachment.
func (in *Instance) LastSeen() time.Time {
	return time.Unix(0, in.lastSeen.Load())
}

func (in *Instance) touch() {
	in.lastSeen.Store(in.now().UnixNano())
}

func (in *Instance) run() {
	defer func() {
		in.cancel()
		if in.outbound != nil {
			close(in.outbound)
			in.outbound = nil
			in.attached.Store(false)
		}
		close(in.stopped)
	}()
	for {
		select {
		case job := <-in.jobs:
			job()
		case <-in.quit:
			return
		}
	}
}

// stop ends the loop and waits for it to exit.
func (in *Instance) stop() {
	in.stopOnce.Do(func() { close(in.quit) })
	<-in.stopped
}

// exec runs fn on the loop and waits for it to return.
func (in *Instance) exec(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	job := func() {
		defer close(done)
		fn()
	}
	select {
	case in.jobs <- job:
	case <-in.stopped:
		return ErrUnmounted
	case <-ctx.Done():
		return ctx.Err()
	}
	<-done
	return nil
}

// post queues fn on the loop without waiting. It reports false if the
// instance has been unmounted.
func (in *Instance) post(fn func()) bool {
	select {
	case in.jobs <- fn:
		return true
	case <-in.stopped:
		return false
	}
}

// View returns a snapshot of the current state.
func (in *Instance) View(ctx context.Context) (View, error) {
	var v View
	err := in.exec(ctx, func() { v = in.view() })
	return v, err
}

func (in *Instance) view() View {
	v := View{
		ID:         in.id,
		Page:       in.page,
		Nav:        in.nav.State(),
		Form:       in.form.Snapshot(),
		FAQ:        in.faq.State(),
		Newsletter: in.signup.Email(),
	}
	if in.notice != nil {
		n := *in.notice
		v.Notice = &n
	}
	return v
}

// Dispatch applies ev and returns the out-of-band fragments of every region
// whose state changed, together with anything produced since the last
// dispatch that could not be pushed. A rejected event returns an error
// wrapping ErrInvalidEvent and changes nothing.
func (in *Instance) Dispatch(ctx context.Context, ev Event) ([]byte, error) {
	var (
		out      []byte
		applyErr error
	)
	err := in.exec(ctx, func() {
		in.touch()
		ch, err := in.apply(ev)
		if err != nil {
			applyErr = err
			return
		}
		ch.merge(in.pending)
		in.pending = changes{}
		out, applyErr = in.render(ch)
	})
	if err != nil {
		return nil, err
	}
	return out, applyErr
}

// Attach registers a socket. Fragments produced outside of Dispatch, such as
// a finished submission, are delivered on the returned channel, which is
// closed when the instance is unmounted or another socket attaches.
func (in *Instance) Attach(ctx context.Context) (<-chan []byte, error) {
	out := make(chan []byte, outboundBuffer)
	err := in.exec(ctx, func() {
		in.touch()
		if in.outbound != nil {
			close(in.outbound)
		}
		in.outbound = out
		in.attached.Store(true)
		if !in.pending.empty() {
			ch := in.pending
			in.pending = changes{}
			in.push(ch)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Detach releases ch if it is still the attached socket.
func (in *Instance) Detach(ch <-chan []byte) {
	_ = in.exec(context.Background(), func() {
		if in.outbound == nil || (<-chan []byte)(in.outbound) != ch {
			return
		}
		close(in.outbound)
		in.outbound = nil
		in.attached.Store(false)
	})
}

func (in *Instance) render(ch changes) ([]byte, error) {
	if ch.empty() {
		return nil, nil
	}
	v := in.view()
	var buf bytes.Buffer
	for _, f := range ch.fragments() {
		if err := in.renderer.Fragment(&buf, f, v); err != nil {
			return nil, fmt.Errorf("render %s: %w", f.Part, err)
		}
	}
	return buf.Bytes(), nil
}

// push delivers ch to the attached socket, or keeps it for the next
// Dispatch when none is attached.
func (in *Instance) push(ch changes) {
	if in.outbound == nil {
		in.pending.merge(ch)
		return
	}
	data, err := in.render(ch)
	if err != nil {
		in.logger.Error("Failed to render pushed fragments", "error", err)
		return
	}
	select {
	case in.outbound <- data:
	default:
		in.logger.Warn("Socket send buffer full, keeping fragments for the next event")
		in.pending.merge(ch)
	}
}

func (in *Instance) apply(ev Event) (changes, error) {
	var ch changes
	switch ev.Name {
	case Scroll, PointerEnter, PointerLeave, ToggleDropdown, ToggleMobile, SelectLink, OutsidePress:
		before := in.nav.State()
		in.applyNav(ev)
		if in.nav.State() != before {
			ch.add(PartNavbar)
		}

	case FieldChange, Submit, FAQToggle:
		if !in.page.HasContactForm() {
			return ch, fmt.Errorf("%w: %s on the %s page", ErrInvalidEvent, ev.Name, in.page)
		}
		return in.applyContact(ev)

	case NewsletterInput:
		in.signup.Input(ev.Value)

	case NewsletterSubscribe:
		if ev.HasValue {
			in.signup.Input(ev.Value)
		}
		email, err := in.signup.Subscribe()
		if err != nil {
			in.logger.Debug("Ignoring empty newsletter signup")
			return ch, nil
		}
		in.notice = &Notice{Success: true, Message: newsletter.Acknowledgment(email)}
		ch.add(PartNewsletter | PartNotice)
		payload := notify.Subscription{Email: email, At: in.now().UTC()}
		if err := pubsub.Publish(in.ctx, in.publisher, notify.NewsletterSubscribed, in.id, payload); err != nil {
			in.logger.Error("Failed to publish newsletter signup", "error", err)
		}

	case DismissNotice:
		if in.notice != nil {
			in.notice = nil
			ch.add(PartNotice)
		}

	case Sync:
	default:
		return ch, fmt.Errorf("%w: unknown event %q", ErrInvalidEvent, ev.Name)
	}
	return ch, nil
}

func (in *Instance) applyNav(ev Event) {
	switch ev.Name {
	case Scroll:
		in.nav.Scroll(ev.OffsetY)
	case PointerEnter:
		in.nav.PointerEnter(ev.Dropdown)
	case PointerLeave:
		in.nav.PointerLeave()
	case ToggleDropdown:
		in.nav.ToggleDropdown(ev.Dropdown)
	case ToggleMobile:
		in.nav.ToggleMobileMenu()
	case SelectLink:
		in.nav.SelectLink(ev.FromDropdown)
	case OutsidePress:
		in.nav.OutsidePress(ev.InsideNav)
	}
}

func (in *Instance) applyContact(ev Event) (changes, error) {
	var ch changes
	switch ev.Name {
	case FieldChange:
		// The controls are disabled until the submission settles, and
		// completion clears the fields anyway.
		if in.form.Submitting() {
			return ch, nil
		}
		if in.form.Change(ev.Field, ev.Value) {
			ch.addField(ev.Field)
		}

	case FAQToggle:
		if err := in.faq.Toggle(ev.Index); err != nil {
			return ch, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
		}
		ch.add(PartFAQ)

	case Submit:
		if in.form.Submitting() {
			return ch, nil
		}
		for _, f := range contact.AllFields {
			if v, ok := ev.Fields[f]; ok {
				in.form.Change(f, v)
			}
		}
		ch.add(PartContactForm)
		fields, ok := in.form.Begin()
		if !ok {
			return ch, nil
		}
		go in.submit(fields)
	}
	return ch, nil
}

// submit waits for the submitter away from the loop and re-enters it with
// the outcome. The outcome is dropped if the instance is gone by then.
func (in *Instance) submit(fields contact.Fields) {
	receipt, err := in.submitter.Submit(in.ctx, fields)
	if err != nil {
		in.logger.Warn("Contact submission failed", "error", err)
	} else {
		in.logger.Info("Contact submission accepted", "receipt", receipt.ID)
	}
	ok := in.post(func() {
		ack := in.form.Complete(err)
		in.notice = &Notice{Success: ack.Kind == contact.Success, Message: ack.Message}
		var ch changes
		ch.add(PartContactForm | PartNotice)
		in.push(ch)
	})
	if !ok {
		in.logger.Debug("Dropping submission outcome for unmounted page")
	}
}
