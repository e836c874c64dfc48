// Package field declares the capability set a coefficient field must provide
// to the polynomial ring and the QC-MDPC codec, together with the vector
// helpers and samplers shared by both. GF(4) is the provided instance (see
// package gf4); any other GF(2^N) drops in without changes to the generic
// layers.
package field

import (
	"errors"
	"fmt"

	"qc-mdpc/prng"
)

// Sentinel errors for the field-level failure modes.
var (
	// ErrDivisionByZero reports a field or polynomial division by zero.
	ErrDivisionByZero = errors.New("field: division by zero")
	// ErrValueRange reports a constructor input outside [0, 2^N - 1].
	ErrValueRange = errors.New("field: value out of range for this finite field")
	// ErrImpossibleWeight reports a weighted-vector request with weight > length.
	ErrImpossibleWeight = errors.New("field: requested hamming weight exceeds vector length")
)

// Element is an element of a finite field. Implementations must be value
// types whose zero value is the additive identity, so that generic code can
// use `var zero E` for accumulators and padding.
//
// Add and Sub coincide over characteristic-2 fields, but generic code must
// not rely on that: the two stay distinct so an odd-characteristic instance
// remains correct.
type Element[E any] interface {
	Add(E) E
	Sub(E) E
	Mul(E) E
	// Div returns the quotient, or ErrDivisionByZero when the divisor is zero.
	Div(E) (E, error)
	IsZero() bool
	IsOne() bool
	// One returns the multiplicative identity of the element's field.
	One() E
	fmt.Stringer
}

// Field describes a concrete finite field instance: element construction,
// enumeration and sampling. Nonzero must enumerate the 2^N - 1 non-zero
// elements in the same order on every call; the symbol-flipping decoder's
// tie-breaking depends on it.
type Field[E Element[E]] interface {
	// FromUint converts an integer representation into an element, or
	// returns ErrValueRange for inputs above Max.
	FromUint(v uint64) (E, error)
	// Max is the largest valid integer representation, 2^N - 1.
	Max() uint64
	Zero() E
	One() E
	Nonzero() []E
	// Random draws a uniform element.
	Random(src *prng.Source) E
	// RandomNonzero draws a uniform non-zero element.
	RandomNonzero(src *prng.Source) E
}
