package quantity

import (
	"github.com/cockroachdb/errors"

	"github.com/aretw0/quanta/pkg/dimension"
)

// Go cannot compute a type from integer arithmetic, so the result marker R
// of a cross-dimension operation is named by the caller and the operand
// markers are inferred:
//
//	area := quantity.Product[dimension.Area](width, height)
//
// R must carry exactly the vector the operation produces. Naming the wrong
// R is a programming error and panics. Unit constants are derived at package
// initialization, so a wrong derivation aborts the program at startup.

// Product returns a*b. R's vector must equal A's plus B's.
func Product[R, A, B dimension.Dimension](a Quantity[A], b Quantity[B]) Quantity[R] {
	mustMatch[R]("product", dimension.Of[A]().Add(dimension.Of[B]()))
	return Quantity[R]{v: a.v * b.v}
}

// Quotient returns a/b. R's vector must equal A's minus B's.
func Quotient[R, A, B dimension.Dimension](a Quantity[A], b Quantity[B]) Quantity[R] {
	mustMatch[R]("quotient", dimension.Of[A]().Sub(dimension.Of[B]()))
	return Quantity[R]{v: a.v / b.v}
}

// Reciprocal returns x/q, the inverse unit of q scaled by x
// (for instance 1/time is a frequency). R's vector must be D's negated.
func Reciprocal[R, D dimension.Dimension](x float64, q Quantity[D]) Quantity[R] {
	mustMatch[R]("reciprocal", dimension.Of[D]().Neg())
	return Quantity[R]{v: x / q.v}
}

func mustMatch[R dimension.Dimension](op string, want dimension.Vector) {
	if got := dimension.Of[R](); got != want {
		panic(errors.AssertionFailedf("quantity: %s has dimension %s but result type declares %s",
			errors.Safe(op), want, got))
	}
}
