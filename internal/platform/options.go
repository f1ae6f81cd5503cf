package platform

import (
	"log/slog"

	"github.com/aretw0/quanta/pkg/scheduler"
)

// options holds the internal configuration for the facade factories.
type options struct {
	logger *slog.Logger
	clock  scheduler.Clock
	buffer int
}

// Option defines a functional option for configuring Quanta components.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: nil,
		clock:  nil,
		buffer: 0,
	}
}

// WithLogger sets the logger for the scheduler.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock replaces the wall clock used to compute due times (useful for testing).
func WithClock(c scheduler.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithBuffer sets the capacity of the notification channel of a lifecycle source.
// Zero means unbuffered.
func WithBuffer(size int) Option {
	return func(o *options) {
		o.buffer = size
	}
}

func (o *options) schedulerOptions() []scheduler.Option {
	opts := []scheduler.Option{scheduler.WithLogger(o.logger)}
	if o.clock != nil {
		opts = append(opts, scheduler.WithClock(o.clock))
	}
	return opts
}
