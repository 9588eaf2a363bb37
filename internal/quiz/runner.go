package quiz

import (
	"context"
	"errors"
	"time"
)

// ErrStopped is returned when input is sent to a Runner that is no longer
// running.
var ErrStopped = errors.New("quiz: runner stopped")

// Runner drives a Session outside a UI loop. Timer ticks and input both
// pass through a single goroutine, so the Session is never touched
// concurrently.
type Runner struct {
	sess  *Session
	clock Clock

	keys chan Key
	fns  chan func(*Session)
	done chan struct{}
	fade <-chan time.Time

	// OnOutcome, if set, is called from the run loop after every judged
	// answer.
	OnOutcome func(*Session, Outcome)
}

// NewRunner creates a Runner for sess. A nil clock uses the wall clock.
func NewRunner(sess *Session, clock Clock) *Runner {
	if clock == nil {
		clock = RealClock{}
	}
	return &Runner{
		sess:  sess,
		clock: clock,
		keys:  make(chan Key),
		fns:   make(chan func(*Session)),
		done:  make(chan struct{}),
	}
}

// Run starts the journey and processes ticks and input until the countdown
// expires, the session is torn down, or ctx is cancelled. On cancellation
// the session is torn down without handing off results. The ticker is
// stopped on every path.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	ticker := r.clock.NewTicker(time.Second)
	defer ticker.Stop()

	r.sess.Start()

	for {
		select {
		case <-ctx.Done():
			r.sess.Teardown()
			return ctx.Err()

		case <-ticker.C():
			if r.sess.Tick() {
				return nil
			}

		case k := <-r.keys:
			r.handle(k)

		case fn := <-r.fns:
			fn(r.sess)
			if r.sess.Ended() || r.sess.TornDown() {
				return nil
			}

		case <-r.fade:
			r.fade = nil
			r.sess.FinishWelcomeFade()
		}
	}
}

// handle applies k on the run loop.
func (r *Runner) handle(k Key) (Outcome, bool) {
	out, judged := r.sess.Press(k)
	if !judged {
		return out, false
	}
	if out.WelcomeFadeStarted {
		r.fade = r.clock.After(WelcomeFadeDuration)
	}
	if r.OnOutcome != nil {
		r.OnOutcome(r.sess, out)
	}
	return out, true
}

// Press queues a key for the run loop and waits until it is accepted.
func (r *Runner) Press(ctx context.Context, k Key) error {
	select {
	case r.keys <- k:
		return nil
	case <-r.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Type presses every character of text followed by submit as one step on
// the run loop and reports whether an answer was judged. Text made only of
// rejected characters leaves nothing to submit.
func (r *Runner) Type(ctx context.Context, text string) (bool, error) {
	var judged bool
	err := r.Do(ctx, func(*Session) {
		for _, c := range text {
			r.handle(CharKey(c))
		}
		_, judged = r.handle(SubmitKey)
	})
	return judged, err
}

// Do runs fn on the run loop and waits for it to finish. Use it to read or
// change the session from another goroutine.
func (r *Runner) Do(ctx context.Context, fn func(*Session)) error {
	finished := make(chan struct{})
	wrapped := func(s *Session) {
		defer close(finished)
		fn(s)
	}
	select {
	case r.fns <- wrapped:
	case <-r.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	<-finished
	return nil
}

// Done is closed when Run returns.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}
