package platform

import (
	"github.com/cockroachdb/errors"

	"github.com/aretw0/quanta/pkg/adapters/lifecycle"
	"github.com/aretw0/quanta/pkg/reminders"
	"github.com/aretw0/quanta/pkg/scheduler"
)

// NewScheduler creates a scheduler configured from opts.
//
//	s := quanta.NewScheduler(quanta.WithLogger(logger))
func NewScheduler(opts ...Option) *scheduler.Scheduler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return scheduler.New(o.schedulerOptions()...)
}

// Schedule adds every reminder entry to s. It stops at the first rejected
// entry and reports which file it came from.
func Schedule(s *scheduler.Scheduler, entries []reminders.Entry) error {
	for _, e := range entries {
		if _, err := s.Add(e.After.Time(), e.Label); err != nil {
			if e.Source != "" {
				return errors.Wrapf(err, "scheduling reminder from %s", e.Source)
			}
			return err
		}
	}
	return nil
}

// LoadSchedule creates a scheduler and fills it from the reminder files
// matching patterns.
func LoadSchedule(patterns []string, opts ...Option) (*scheduler.Scheduler, error) {
	entries, err := reminders.Load(patterns...)
	if err != nil {
		return nil, err
	}
	s := NewScheduler(opts...)
	if err := Schedule(s, entries); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSource wraps s in a lifecycle source sized by WithBuffer.
func NewSource(s *scheduler.Scheduler, opts ...Option) *lifecycle.Source {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return lifecycle.NewSource(s, lifecycle.WithBuffer(o.buffer))
}
