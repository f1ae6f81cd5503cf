// Package quantity implements a physical quantity as a float64 magnitude
// tagged with a dimension marker type.
//
// The magnitude is always expressed in base units (kilogram, metre, second).
// Operations between quantities of the same dimension are methods taking the
// receiver's own type, so the compiler rejects mixed-dimension addition,
// subtraction and comparison. Cross-dimension multiplication and division
// are the free functions Product, Quotient and Reciprocal.
package quantity

import (
	"cmp"
	"math"
	"strconv"

	"github.com/aretw0/quanta/pkg/dimension"
)

// Quantity is a magnitude in base units carrying the dimension D.
// The zero value is the zero quantity of D.
type Quantity[D dimension.Dimension] struct {
	v float64
}

// New returns a quantity of dimension D with magnitude x in base units.
func New[D dimension.Dimension](x float64) Quantity[D] {
	return Quantity[D]{v: x}
}

// Value returns the magnitude in base units.
func (q Quantity[D]) Value() float64 {
	return q.v
}

// Dimension returns the exponent vector of D.
func (q Quantity[D]) Dimension() dimension.Vector {
	return dimension.Of[D]()
}

// Add returns q + rhs.
func (q Quantity[D]) Add(rhs Quantity[D]) Quantity[D] {
	return Quantity[D]{v: q.v + rhs.v}
}

// Sub returns q - rhs.
func (q Quantity[D]) Sub(rhs Quantity[D]) Quantity[D] {
	return Quantity[D]{v: q.v - rhs.v}
}

// Mul scales q by a dimensionless factor.
func (q Quantity[D]) Mul(x float64) Quantity[D] {
	return Quantity[D]{v: q.v * x}
}

// Div divides q by a dimensionless factor.
func (q Quantity[D]) Div(x float64) Quantity[D] {
	return Quantity[D]{v: q.v / x}
}

// Neg returns -q.
func (q Quantity[D]) Neg() Quantity[D] {
	return Quantity[D]{v: -q.v}
}

// Abs returns |q|.
func (q Quantity[D]) Abs() Quantity[D] {
	return Quantity[D]{v: math.Abs(q.v)}
}

// AddAssign adds rhs to q in place.
func (q *Quantity[D]) AddAssign(rhs Quantity[D]) *Quantity[D] {
	q.v += rhs.v
	return q
}

// SubAssign subtracts rhs from q in place.
func (q *Quantity[D]) SubAssign(rhs Quantity[D]) *Quantity[D] {
	q.v -= rhs.v
	return q
}

// MulAssign scales q in place.
func (q *Quantity[D]) MulAssign(x float64) *Quantity[D] {
	q.v *= x
	return q
}

// DivAssign divides q in place.
func (q *Quantity[D]) DivAssign(x float64) *Quantity[D] {
	q.v /= x
	return q
}

// Convert returns how many rhs fit in q, i.e. the ratio of the magnitudes.
// Passing a unit constant expresses q in that unit:
//
//	distance.Convert(units.Mile)
func (q Quantity[D]) Convert(rhs Quantity[D]) float64 {
	return q.v / rhs.v
}

// Comparisons use native float64 semantics. There is no tolerance.

func (q Quantity[D]) Equal(rhs Quantity[D]) bool     { return q.v == rhs.v }
func (q Quantity[D]) NotEqual(rhs Quantity[D]) bool  { return q.v != rhs.v }
func (q Quantity[D]) Less(rhs Quantity[D]) bool      { return q.v < rhs.v }
func (q Quantity[D]) LessEq(rhs Quantity[D]) bool    { return q.v <= rhs.v }
func (q Quantity[D]) Greater(rhs Quantity[D]) bool   { return q.v > rhs.v }
func (q Quantity[D]) GreaterEq(rhs Quantity[D]) bool { return q.v >= rhs.v }

// Compare returns -1, 0 or +1 like cmp.Compare. NaN sorts before every other value.
func (q Quantity[D]) Compare(rhs Quantity[D]) int {
	return cmp.Compare(q.v, rhs.v)
}

// String renders the magnitude followed by the base-unit vector, e.g. "9.81 m·s⁻²".
func (q Quantity[D]) String() string {
	s := strconv.FormatFloat(q.v, 'g', -1, 64)
	if v := dimension.Of[D](); !v.IsZero() {
		s += " " + v.String()
	}
	return s
}

// Scale returns x * q. It is the scalar-on-the-left form of q.Mul(x).
func Scale[D dimension.Dimension](x float64, q Quantity[D]) Quantity[D] {
	return Quantity[D]{v: x * q.v}
}

// Sum adds every quantity in qs. The sum of nothing is zero.
func Sum[D dimension.Dimension](qs ...Quantity[D]) Quantity[D] {
	var total Quantity[D]
	for _, q := range qs {
		total.AddAssign(q)
	}
	return total
}
