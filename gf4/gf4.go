// Package gf4 implements GF(4) = GF(2)[X]/(X^2 + X + 1), the concrete
// coefficient field of the cryptosystem.
//
// With alpha a root of X^2 + X + 1, the four elements are
// {0, 1, alpha, alpha + 1}, represented by the integers 0..3 in that order.
// Addition is XOR of the representations (and equals subtraction, as in any
// characteristic-2 field); multiplication and division are precomputed
// Cayley tables indexed by the representations.
package gf4

import (
	"qc-mdpc/field"
	"qc-mdpc/prng"
)

var mulTable = [4][4]uint8{
	{0, 0, 0, 0},
	{0, 1, 2, 3},
	{0, 2, 3, 1},
	{0, 3, 1, 2},
}

// divTable[a][b-1] = a / b; the zero divisor column is not stored.
var divTable = [4][3]uint8{
	{0, 0, 0},
	{1, 3, 2},
	{2, 1, 3},
	{3, 2, 1},
}

// Element is a GF(4) element. The zero value is the field zero.
type Element struct {
	v uint8
}

// The four elements by name.
var (
	Zero         = Element{0}
	One          = Element{1}
	Alpha        = Element{2}
	AlphaPlusOne = Element{3}
)

// New converts an integer representation into an element. Values above 3
// are rejected with field.ErrValueRange.
func New(v uint64) (Element, error) {
	if v > 3 {
		return Element{}, field.ErrValueRange
	}
	return Element{uint8(v)}, nil
}

// Uint returns the integer representation of e.
func (e Element) Uint() uint64 {
	return uint64(e.v)
}

func (e Element) IsZero() bool {
	return e.v == 0
}

func (e Element) IsOne() bool {
	return e.v == 1
}

// One returns the multiplicative identity.
func (e Element) One() Element {
	return One
}

// Add returns e + other. In characteristic 2 this is XOR of the
// representations.
func (e Element) Add(other Element) Element {
	return Element{e.v ^ other.v}
}

// Sub returns e - other; in GF(4) subtraction coincides with addition.
func (e Element) Sub(other Element) Element {
	return Element{e.v ^ other.v}
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	return Element{mulTable[e.v][other.v]}
}

// Div returns e / other, or field.ErrDivisionByZero when other is zero.
func (e Element) Div(other Element) (Element, error) {
	if other.v == 0 {
		return Element{}, field.ErrDivisionByZero
	}
	return Element{divTable[e.v][other.v-1]}, nil
}

func (e Element) String() string {
	switch e.v {
	case 1:
		return "1"
	case 2:
		return "alpha"
	case 3:
		return "(alpha + 1)"
	default:
		return "0"
	}
}

// Field is the GF(4) instance of field.Field. It is stateless; the zero
// value is ready to use.
type Field struct{}

func (Field) FromUint(v uint64) (Element, error) {
	return New(v)
}

// Max returns the largest integer representation, 2^2 - 1.
func (Field) Max() uint64 {
	return 3
}

func (Field) Zero() Element {
	return Zero
}

func (Field) One() Element {
	return One
}

// Nonzero returns the non-zero elements in their fixed enumeration order
// {1, alpha, alpha + 1}. The decoder iterates candidates in this order.
func (Field) Nonzero() []Element {
	return []Element{One, Alpha, AlphaPlusOne}
}

func (Field) Random(src *prng.Source) Element {
	return Element{uint8(src.Int(3))}
}

func (Field) RandomNonzero(src *prng.Source) Element {
	return Element{uint8(src.IntRange(1, 3))}
}
