// Package units is the table of named unit constants.
//
// Every constant is a quantity whose magnitude is the size of that unit in
// base units. Only the base constants are asserted directly; all others are
// derived through the quantity algebra, so an area is literally a length
// times a length and a volume an area times a length.
//
// The constants are initialized once, before main runs, and must be treated
// as read-only.
package units

import (
	"github.com/aretw0/quanta/pkg/dimension"
	"github.com/aretw0/quanta/pkg/quantity"
)

// Length.
var (
	Metre        = quantity.New[dimension.Length](1)
	Decimetre    = Metre.Div(10)
	Centimetre   = Metre.Div(100)
	Millimetre   = Metre.Div(1000)
	Kilometre    = quantity.Scale(1000, Metre)
	Inch         = quantity.Scale(2.54, Centimetre)
	Foot         = quantity.Scale(12, Inch)
	Yard         = quantity.Scale(3, Foot)
	Mile         = quantity.Scale(1760, Yard)
	NauticalMile = quantity.Scale(1852, Metre)
)

// Frequency.
var Hertz = quantity.New[dimension.Frequency](1)

// Area.
var (
	Kilometre2  = square(Kilometre)
	Metre2      = square(Metre)
	Decimetre2  = square(Decimetre)
	Centimetre2 = square(Centimetre)
	Millimetre2 = square(Millimetre)
	Inch2       = square(Inch)
	Foot2       = square(Foot)
	Mile2       = square(Mile)
)

// Volume.
var (
	Kilometre3     = cube(Kilometre2, Kilometre)
	Metre3         = cube(Metre2, Metre)
	Decimetre3     = cube(Decimetre2, Decimetre)
	Litre          = Decimetre3
	Centimetre3    = cube(Centimetre2, Centimetre)
	Millimetre3    = cube(Millimetre2, Millimetre)
	Inch3          = cube(Inch2, Inch)
	Foot3          = cube(Foot2, Foot)
	Mile3          = cube(Mile2, Mile)
	USGallon       = quantity.Scale(3.785412, Litre)
	ImperialGallon = quantity.Scale(4.546090, Litre)
)

// Time.
var (
	Second      = quantity.New[dimension.Time](1)
	Millisecond = Second.Div(1000)
	Minute      = quantity.Scale(60, Second)
	Hour        = quantity.Scale(60, Minute)
	Day         = quantity.Scale(24, Hour)
	Week        = quantity.Scale(7, Day)
)

// Mass.
var (
	Kilogram = quantity.New[dimension.Mass](1)
	Gramme   = quantity.Scale(0.001, Kilogram)
	Tonne    = quantity.Scale(1000, Kilogram)
	Ounce    = quantity.Scale(0.028349523125, Kilogram)
	Pound    = quantity.Scale(16, Ounce)
	Stone    = quantity.Scale(14, Pound)
)

// Speed.
var (
	MetrePerSecond   = quantity.Quotient[dimension.Speed](Metre, Second)
	KilometrePerHour = quantity.Quotient[dimension.Speed](Kilometre, Hour)
	MilePerHour      = quantity.Quotient[dimension.Speed](Mile, Hour)
	Knot             = quantity.Quotient[dimension.Speed](NauticalMile, Hour)
)

// Mechanics.
var (
	MetrePerSecond2 = quantity.Quotient[dimension.Acceleration](Metre, quantity.Product[dimension.TimeSquared](Second, Second))
	Newton          = quantity.New[dimension.Force](1)
	Pascal          = quantity.Quotient[dimension.Pressure](Newton, Metre2)
	Joule           = quantity.New[dimension.Work](1)
	Watt            = quantity.Quotient[dimension.Power](Joule, Second)
	NewtonMetre     = quantity.Product[dimension.Torque](Newton, Metre)
)

// Fuel consumption and economy.
var (
	LitrePer100Km = quantity.Quotient[dimension.Consumption](Litre, quantity.Scale(100, Kilometre))
	MilePerGallon = quantity.Quotient[dimension.Economy](Mile, USGallon)
)

func square(l quantity.Length) quantity.Area {
	return quantity.Product[dimension.Area](l, l)
}

func cube(a quantity.Area, l quantity.Length) quantity.Volume {
	return quantity.Product[dimension.Volume](a, l)
}
