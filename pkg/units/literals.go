package units

import (
	"math"
	"time"

	"github.com/aretw0/quanta/pkg/dimension"
	"github.com/aretw0/quanta/pkg/quantity"
)

// Literal helpers turn a bare number into a quantity of the named unit.
// They never fail: out-of-range input follows float64 semantics.

// Kilograms returns x kilograms.
func Kilograms(x float64) quantity.Mass { return quantity.New[dimension.Mass](x) }

// Millimetres returns x millimetres.
func Millimetres(x float64) quantity.Length { return quantity.Scale(x, Millimetre) }

// Centimetres returns x centimetres.
func Centimetres(x float64) quantity.Length { return quantity.Scale(x, Centimetre) }

// Metres returns x metres.
func Metres(x float64) quantity.Length { return quantity.Scale(x, Metre) }

// Kilometres returns x kilometres.
func Kilometres(x float64) quantity.Length { return quantity.Scale(x, Kilometre) }

// Litres returns x litres as a volume in cubic metres.
func Litres(x float64) quantity.Volume { return quantity.Scale(x, Litre) }

// MetresPerSecond returns a speed of x m/s.
func MetresPerSecond(x float64) quantity.Speed { return quantity.New[dimension.Speed](x) }

// Newtons returns x newtons.
func Newtons(x float64) quantity.Force { return quantity.New[dimension.Force](x) }

// Pascals returns x pascals.
func Pascals(x float64) quantity.Pressure { return quantity.New[dimension.Pressure](x) }

// Joules returns x joules.
func Joules(x float64) quantity.Work { return quantity.New[dimension.Work](x) }

// Watts returns x watts.
func Watts(x float64) quantity.Power { return quantity.New[dimension.Power](x) }

// NewtonMetres returns a torque of x N·m. Torque shares its dimension with
// work, so the result also compares against Joules.
func NewtonMetres(x float64) quantity.Torque { return quantity.Scale(x, NewtonMetre) }

// MilesPerHour divides x miles by one hour, rounding the same way as
// computing the speed from a distance and a duration.
func MilesPerHour(x float64) quantity.Speed {
	return quantity.Quotient[dimension.Speed](quantity.Scale(x, Mile), Hour)
}

// KilometresPerHour divides x kilometres by one hour.
func KilometresPerHour(x float64) quantity.Speed {
	return quantity.Quotient[dimension.Speed](quantity.Scale(x, Kilometre), Hour)
}

// LitresPer100Km returns a fuel consumption of x L/100km, stored as an area.
func LitresPer100Km(x float64) quantity.Consumption { return quantity.Scale(x, LitrePer100Km) }

// MilesPerGallon returns a fuel economy of x mpg, stored as an inverse area.
func MilesPerGallon(x float64) quantity.Economy { return quantity.Scale(x, MilePerGallon) }

// Milliseconds returns x milliseconds.
func Milliseconds(x float64) quantity.Time { return quantity.Scale(x, Millisecond) }

// Seconds returns x seconds.
func Seconds(x float64) quantity.Time { return quantity.New[dimension.Time](x) }

// Minutes returns x minutes.
func Minutes(x float64) quantity.Time { return quantity.Scale(x, Minute) }

// Hours returns x hours.
func Hours(x float64) quantity.Time { return quantity.Scale(x, Hour) }

// Days returns x days of 24 hours.
func Days(x float64) quantity.Time { return quantity.Scale(x, Day) }

// FromDuration converts a time.Duration to a time quantity.
func FromDuration(d time.Duration) quantity.Time {
	return Seconds(d.Seconds())
}

// ToDuration converts a time quantity to a time.Duration rounded to the
// nearest nanosecond. Values beyond the time.Duration range saturate and NaN
// maps to zero.
func ToDuration(t quantity.Time) time.Duration {
	ns := math.Round(t.Value() * float64(time.Second))
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}
