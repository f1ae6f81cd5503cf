package scheduler

import (
	"time"

	"github.com/aretw0/introspection"
)

// SchedulerState exposes internal state for observability.
type SchedulerState struct {
	Pending   int        `json:"pending"`
	Delivered int        `json:"delivered"`
	Draining  bool       `json:"draining"`
	NextDue   *time.Time `json:"next_due,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Scheduler) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SchedulerState{
		Pending:   s.queue.Len(),
		Delivered: s.delivered,
		Draining:  s.draining,
	}
	if s.queue.Len() > 0 {
		due := s.queue[0].Due
		state.NextDue = &due
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Scheduler) ComponentType() string {
	return "scheduler"
}

var _ introspection.Introspectable = (*Scheduler)(nil)
var _ introspection.Component = (*Scheduler)(nil)
