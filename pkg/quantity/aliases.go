package quantity

import "github.com/aretw0/quanta/pkg/dimension"

// Named quantities. Each is an alias of a Quantity instantiation, so a
// Length value and a Quantity[dimension.Length] value are interchangeable.
type (
	Scalar       = Quantity[dimension.Dimensionless]
	Mass         = Quantity[dimension.Mass]
	Length       = Quantity[dimension.Length]
	Time         = Quantity[dimension.Time]
	TimeSquared  = Quantity[dimension.TimeSquared]
	Frequency    = Quantity[dimension.Frequency]
	Area         = Quantity[dimension.Area]
	Volume       = Quantity[dimension.Volume]
	Speed        = Quantity[dimension.Speed]
	Acceleration = Quantity[dimension.Acceleration]
	Force        = Quantity[dimension.Force]
	Pressure     = Quantity[dimension.Pressure]
	Work         = Quantity[dimension.Work]
	Torque       = Quantity[dimension.Torque]
	Power        = Quantity[dimension.Power]
	Consumption  = Quantity[dimension.Consumption]
	Economy      = Quantity[dimension.Economy]
)
