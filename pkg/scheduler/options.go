package scheduler

import (
	"log/slog"
	"time"
)

// Clock supplies the current time. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// options holds the internal configuration for a Scheduler.
type options struct {
	logger *slog.Logger
	clock  Clock
}

// Option defines a functional option for configuring a Scheduler.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: nil,
		clock:  systemClock{},
	}
}

// WithLogger sets the logger. A nil logger keeps the scheduler silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock replaces the wall clock used to compute due times.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}
