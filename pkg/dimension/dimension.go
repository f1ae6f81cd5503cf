// Package dimension describes the kind of a physical quantity as a vector
// of exponents over the base dimensions mass, length and time.
//
// A dimension is carried at the type level by a zero-size marker type that
// implements Dimension. Two quantities whose markers differ are different Go
// types, so the compiler rejects adding a Length to a Mass.
package dimension

import (
	"strconv"
	"strings"
)

// Vector is the (mass, length, time) exponent triple of a dimension.
type Vector struct {
	M int
	L int
	T int
}

// Add returns the element-wise sum. Multiplying two quantities adds their vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{M: v.M + o.M, L: v.L + o.L, T: v.T + o.T}
}

// Sub returns the element-wise difference. Dividing two quantities subtracts their vectors.
func (v Vector) Sub(o Vector) Vector {
	return Vector{M: v.M - o.M, L: v.L - o.L, T: v.T - o.T}
}

// Neg negates every exponent.
func (v Vector) Neg() Vector {
	return Vector{M: -v.M, L: -v.L, T: -v.T}
}

// IsZero reports whether the vector is dimensionless.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// String renders the vector in base-unit notation, e.g. "kg·m·s⁻²".
// A dimensionless vector renders as "1".
func (v Vector) String() string {
	var parts []string
	for _, f := range []struct {
		sym string
		exp int
	}{{"kg", v.M}, {"m", v.L}, {"s", v.T}} {
		switch f.exp {
		case 0:
		case 1:
			parts = append(parts, f.sym)
		default:
			parts = append(parts, f.sym+superscript(f.exp))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

var superscripts = map[rune]rune{
	'-': '⁻', '0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

func superscript(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		b.WriteRune(superscripts[r])
	}
	return b.String()
}

// Dimension is implemented by marker types. Vector must return the same
// value for every instance of the marker; markers hold no data.
type Dimension interface {
	Vector() Vector
}

// Of returns the vector of the marker type D.
func Of[D Dimension]() Vector {
	var d D
	return d.Vector()
}
