package lifecycle

import (
	"context"
	"sync"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/quanta/pkg/scheduler"
)

// Source is a lifecycle.Source that emits scheduler notifications as they
// fall due. scheduler.Notification implements lifecycle.Event through its
// String method.
//
// The events channel closes once every pending notification has been
// delivered, the context passed to Start is done, or the drain fails.
// Err reports which.
type Source struct {
	sched *scheduler.Scheduler
	out   chan lifecycle.Event

	mu  sync.Mutex
	err error
}

// Option configures a Source.
type Option func(*Source)

// WithBuffer sets the capacity of the events channel. Zero (the default)
// hands each notification over synchronously.
func WithBuffer(size int) Option {
	return func(s *Source) {
		if size > 0 {
			s.out = make(chan lifecycle.Event, size)
		}
	}
}

// NewSource creates a Source draining s.
func NewSource(s *scheduler.Scheduler, opts ...Option) *Source {
	src := &Source{
		sched: s,
		out:   make(chan lifecycle.Event),
	}
	for _, opt := range opts {
		opt(src)
	}
	return src
}

func (s *Source) Events() <-chan lifecycle.Event {
	return s.out
}

// Err returns the error that ended the drain: nil when every notification
// was delivered, the context error on cancellation, or a scheduler error
// such as scheduler.ErrAlreadyDraining. It is meaningful once Events is closed.
func (s *Source) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Start fails fast when another drain already owns the scheduler.
func (s *Source) Start(ctx context.Context) error {
	if st, ok := s.sched.State().(scheduler.SchedulerState); ok && st.Draining {
		s.setErr(scheduler.ErrAlreadyDraining)
		close(s.out)
		return scheduler.ErrAlreadyDraining
	}

	// The drain runs under lifecycle.Go so it is tracked and panic-safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		err := s.sched.Drain(ctx, func(n scheduler.Notification) {
			select {
			case s.out <- n:
			case <-ctx.Done():
			}
		})
		s.setErr(err)
		if ctx.Err() != nil {
			return nil
		}
		return err
	})
	return nil
}

func (s *Source) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

var _ lifecycle.Source = (*Source)(nil)
