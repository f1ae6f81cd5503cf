package quanta

import (
	"log/slog"

	"github.com/aretw0/quanta/internal/platform"
	"github.com/aretw0/quanta/pkg/adapters/lifecycle"
	"github.com/aretw0/quanta/pkg/dimension"
	"github.com/aretw0/quanta/pkg/quantity"
	"github.com/aretw0/quanta/pkg/reminders"
	"github.com/aretw0/quanta/pkg/scheduler"
)

// --- Types ---

// Quantity is a public alias for the generic quantity type.
type Quantity[D dimension.Dimension] = quantity.Quantity[D]

// Dimension is a public alias for the dimension marker constraint.
type Dimension = dimension.Dimension

// Vector is a public alias for the dimension exponent vector.
type Vector = dimension.Vector

type (
	Scalar       = quantity.Scalar
	Mass         = quantity.Mass
	Length       = quantity.Length
	Time         = quantity.Time
	TimeSquared  = quantity.TimeSquared
	Frequency    = quantity.Frequency
	Area         = quantity.Area
	Volume       = quantity.Volume
	Speed        = quantity.Speed
	Acceleration = quantity.Acceleration
	Force        = quantity.Force
	Pressure     = quantity.Pressure
	Work         = quantity.Work
	Torque       = quantity.Torque
	Power        = quantity.Power
	Consumption  = quantity.Consumption
	Economy      = quantity.Economy
)

// Scheduler is a public alias for the notification scheduler.
type Scheduler = scheduler.Scheduler

// Notification is a public alias for a scheduled label.
type Notification = scheduler.Notification

// --- Algebra ---

// New returns a quantity of dimension D with magnitude x in base units.
func New[D Dimension](x float64) Quantity[D] {
	return quantity.New[D](x)
}

// Scale returns x * q.
func Scale[D Dimension](x float64, q Quantity[D]) Quantity[D] {
	return quantity.Scale(x, q)
}

// Product returns a*b as a quantity of dimension R.
func Product[R, A, B Dimension](a Quantity[A], b Quantity[B]) Quantity[R] {
	return quantity.Product[R](a, b)
}

// Quotient returns a/b as a quantity of dimension R.
func Quotient[R, A, B Dimension](a Quantity[A], b Quantity[B]) Quantity[R] {
	return quantity.Quotient[R](a, b)
}

// Reciprocal returns x/q as a quantity of dimension R.
func Reciprocal[R, D Dimension](x float64, q Quantity[D]) Quantity[R] {
	return quantity.Reciprocal[R](x, q)
}

// --- Configuration ---

// Option defines a functional option for configuring Quanta components.
type Option = platform.Option

// WithLogger sets the logger for the scheduler.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock replaces the wall clock used by the scheduler.
func WithClock(c scheduler.Clock) Option {
	return platform.WithClock(c)
}

// WithBuffer sets the capacity of the events channel created by NewSource.
func WithBuffer(size int) Option {
	return platform.WithBuffer(size)
}

// --- Scheduling ---

// NewScheduler creates an empty notification scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	return platform.NewScheduler(opts...)
}

// LoadSchedule creates a scheduler holding every reminder in the YAML files
// matching patterns.
func LoadSchedule(patterns []string, opts ...Option) (*Scheduler, error) {
	return platform.LoadSchedule(patterns, opts...)
}

// LoadReminders decodes the reminder files matching patterns without scheduling them.
func LoadReminders(patterns ...string) ([]reminders.Entry, error) {
	return reminders.Load(patterns...)
}

// NewSource exposes the notifications of s as a lifecycle.Source.
// Check Err once its events channel closes.
func NewSource(s *Scheduler, opts ...Option) *lifecycle.Source {
	return platform.NewSource(s, opts...)
}
