// Package scheduler delivers labelled notifications once a time quantity
// has elapsed.
//
// Notifications are kept ordered by due time. Those sharing a due time are
// delivered in the order they were added. Drain blocks on a timer until the
// earliest notification is due rather than polling the clock.
package scheduler

import (
	"container/heap"
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/aretw0/quanta/pkg/quantity"
	"github.com/aretw0/quanta/pkg/units"
)

var (
	ErrEmptyLabel      = errors.New("notification label cannot be empty")
	ErrInvalidDuration = errors.New("notification delay must be a finite time")
	ErrAlreadyDraining = errors.New("scheduler is already draining")
)

// Notification is a label scheduled for delivery at Due.
type Notification struct {
	Label string    `json:"label"`
	Due   time.Time `json:"due"`
	seq   uint64
}

// String returns the label.
func (n Notification) String() string {
	return n.Label
}

// Scheduler is safe for concurrent use. At most one Drain runs at a time.
type Scheduler struct {
	mu        sync.Mutex
	queue     queue
	seq       uint64
	delivered int
	draining  bool
	wake      chan struct{}

	logger *slog.Logger
	clock  Clock
}

// New creates an empty scheduler.
func New(opts ...Option) *Scheduler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Scheduler{
		wake:   make(chan struct{}, 1),
		logger: o.logger,
		clock:  o.clock,
	}
}

// Add schedules label for delivery once after has elapsed from now.
// A zero or negative delay makes the notification due immediately.
func (s *Scheduler) Add(after quantity.Time, label string) (Notification, error) {
	if v := after.Value(); math.IsNaN(v) || math.IsInf(v, 0) {
		return Notification{}, errors.Wrapf(ErrInvalidDuration, "scheduling %q after %v", label, after)
	}
	return s.AddAt(s.clock.Now().Add(units.ToDuration(after)), label)
}

// AddAt schedules label for delivery at due.
func (s *Scheduler) AddAt(due time.Time, label string) (Notification, error) {
	if strings.TrimSpace(label) == "" {
		return Notification{}, ErrEmptyLabel
	}

	s.mu.Lock()
	s.seq++
	n := Notification{Label: label, Due: due, seq: s.seq}
	heap.Push(&s.queue, n)
	s.mu.Unlock()

	// A new head may be due earlier than the one Drain is waiting on.
	select {
	case s.wake <- struct{}{}:
	default:
	}

	if s.logger != nil {
		s.logger.Debug("notification scheduled", "label", label, "due", due)
	}
	return n, nil
}

// Len returns the number of pending notifications.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Pending returns the pending notifications in delivery order.
func (s *Scheduler) Pending() []Notification {
	s.mu.Lock()
	pending := make(queue, len(s.queue))
	copy(pending, s.queue)
	s.mu.Unlock()

	out := make([]Notification, 0, len(pending))
	for pending.Len() > 0 {
		out = append(out, heap.Pop(&pending).(Notification))
	}
	return out
}

// Drain delivers every pending notification to fn as it becomes due,
// including notifications added while draining. It returns nil once the
// queue is empty, or the context error if ctx is done first.
// fn runs on the draining goroutine.
func (s *Scheduler) Drain(ctx context.Context, fn func(Notification)) error {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return ErrAlreadyDraining
	}
	s.draining = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.draining = false
		s.mu.Unlock()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, wait, ok := s.next()
		if !ok {
			return nil
		}
		if wait <= 0 {
			if s.logger != nil {
				s.logger.Debug("notification due", "label", n.Label, "due", n.Due)
			}
			fn(n)
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-s.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// next pops the head if it is due. Otherwise it reports how long until it is.
func (s *Scheduler) next() (Notification, time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue.Len() == 0 {
		return Notification{}, 0, false
	}
	head := s.queue[0]
	if wait := head.Due.Sub(s.clock.Now()); wait > 0 {
		return head, wait, true
	}
	heap.Pop(&s.queue)
	s.delivered++
	return head, 0, true
}

// queue is a min-heap ordered by due time, then insertion order.
type queue []Notification

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].Due.Equal(q[j].Due) {
		return q[i].seq < q[j].seq
	}
	return q[i].Due.Before(q[j].Due)
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(Notification)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
