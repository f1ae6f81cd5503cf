// Package quanta is the entry point for dimension-checked physical quantities.
//
// A quantity is a float64 magnitude in base units (kilogram, metre, second)
// tagged with a dimension marker type. Quantities of different dimensions
// are different Go types, so adding a length to a mass or comparing a speed
// with a force does not compile.
//
// Features:
//
//   - **Typed Dimensions**: `Quantity[D]` carries its (mass, length, time) exponents in D.
//   - **Derived Units**: `pkg/units` builds every constant from metre, kilogram and second.
//   - **Literal Helpers**: `units.Kilometres(5)`, `units.MilesPerHour(70)`, ...
//   - **Scheduler**: deliver a label once a `Time` quantity has elapsed.
//
// Usage:
//
//	distance := units.Kilometres(100)
//	speed := quanta.Quotient[dimension.Speed](distance, units.Hours(1))
//	fmt.Println(speed.Convert(units.KilometrePerHour)) // 100
//
// Multiplication and division across dimensions name the result marker as a
// type argument. It is checked against the exponent arithmetic when the
// expression runs; the unit table is derived at initialization, so a wrong
// derivation stops the program before main.
package quanta
