// Package poly implements the polynomial ring over an abstract finite field,
// including Euclidean division with remainder and the half-GCD based
// extended Euclidean algorithm used to invert ring elements modulo x^r - 1.
package poly

import (
	"fmt"
	"strings"

	"qc-mdpc/field"
)

// Polynomial is a degree-tracked coefficient sequence over a field element
// type E. The canonical form invariant holds after every operation: either
// the coefficient slice is empty (the zero polynomial, degree 0 by
// convention) or its last entry is non-zero.
//
// Polynomials are values: operations return fresh results and never share
// coefficient storage with their operands. The zero value is the zero
// polynomial and is ready to use.
type Polynomial[E field.Element[E]] struct {
	coeffs []E
}

// New returns the zero polynomial with storage preallocated for the given
// expected degree.
func New[E field.Element[E]](expectedDegree int) Polynomial[E] {
	return Polynomial[E]{coeffs: make([]E, 0, expectedDegree+1)}
}

// FromCoefficients builds a polynomial from the coefficient sequence
// (c_0, c_1, ...), copying and canonicalising it.
func FromCoefficients[E field.Element[E]](coeffs []E) Polynomial[E] {
	out := make([]E, len(coeffs))
	copy(out, coeffs)
	return Polynomial[E]{coeffs: trim(out)}
}

// trim drops trailing zero coefficients, restoring canonical form.
func trim[E field.Element[E]](coeffs []E) []E {
	i := len(coeffs) - 1
	for i >= 0 && coeffs[i].IsZero() {
		i--
	}
	return coeffs[:i+1]
}

// Degree returns the degree of p. The zero polynomial has degree 0 by
// convention.
func (p Polynomial[E]) Degree() int {
	if len(p.coeffs) == 0 {
		return 0
	}
	return len(p.coeffs) - 1
}

// Coefficient returns the coefficient of x^deg, which is zero for any
// degree above Degree.
func (p Polynomial[E]) Coefficient(deg int) E {
	if deg < 0 || deg >= len(p.coeffs) {
		var zero E
		return zero
	}
	return p.coeffs[deg]
}

// SetCoefficient sets the coefficient of x^deg to v and restores canonical
// form: a non-zero write past the current degree extends it, a zero write
// at the leading position rescans for the new leading coefficient.
func (p *Polynomial[E]) SetCoefficient(deg int, v E) {
	if deg < 0 {
		panic("poly: negative coefficient degree")
	}
	n := len(p.coeffs)
	if deg+1 > n {
		n = deg + 1
	}
	out := make([]E, n)
	copy(out, p.coeffs)
	out[deg] = v
	p.coeffs = trim(out)
}

func (p Polynomial[E]) IsZero() bool {
	return len(p.coeffs) == 0
}

func (p Polynomial[E]) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsOne()
}

// Coefficients returns a copy of the canonical coefficient sequence; it is
// empty for the zero polynomial.
func (p Polynomial[E]) Coefficients() []E {
	out := make([]E, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// CoefficientVector returns the first length coefficients of p as a dense
// vector, zero-padded past the degree. It is how ring elements of
// F[x]/(x^r - 1) are materialised as length-r vectors.
func (p Polynomial[E]) CoefficientVector(length int) []E {
	out := make([]E, length)
	n := len(p.coeffs)
	if n > length {
		n = length
	}
	copy(out, p.coeffs[:n])
	return out
}

// Add returns p + q.
func (p Polynomial[E]) Add(q Polynomial[E]) Polynomial[E] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]E, n)
	for i := range out {
		out[i] = p.Coefficient(i).Add(q.Coefficient(i))
	}
	return Polynomial[E]{coeffs: trim(out)}
}

// Sub returns p - q. Over a characteristic-2 field this equals Add, but the
// operation stays distinct so the ring is correct over any field.
func (p Polynomial[E]) Sub(q Polynomial[E]) Polynomial[E] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]E, n)
	for i := range out {
		out[i] = p.Coefficient(i).Sub(q.Coefficient(i))
	}
	return Polynomial[E]{coeffs: trim(out)}
}

// Mul returns p * q by schoolbook convolution.
func (p Polynomial[E]) Mul(q Polynomial[E]) Polynomial[E] {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial[E]{}
	}
	out := make([]E, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			if b.IsZero() {
				continue
			}
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return Polynomial[E]{coeffs: trim(out)}
}

// MulScalar returns p scaled by the field element s.
func (p Polynomial[E]) MulScalar(s E) Polynomial[E] {
	if s.IsZero() {
		return Polynomial[E]{}
	}
	out := make([]E, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Mul(s)
	}
	return Polynomial[E]{coeffs: trim(out)}
}

// DivRem returns (q, r) with p = q*b + r and deg r < deg b, by schoolbook
// long division on the leading coefficient of b. Dividing by the zero
// polynomial fails with field.ErrDivisionByZero.
func (p Polynomial[E]) DivRem(b Polynomial[E]) (Polynomial[E], Polynomial[E], error) {
	if b.IsZero() {
		return Polynomial[E]{}, Polynomial[E]{}, field.ErrDivisionByZero
	}
	db := len(b.coeffs) - 1
	if len(p.coeffs)-1 < db {
		return Polynomial[E]{}, FromCoefficients(p.coeffs), nil
	}
	rem := make([]E, len(p.coeffs))
	copy(rem, p.coeffs)
	lead := b.coeffs[db]
	quot := make([]E, len(rem)-db)
	for i := len(rem) - 1; i >= db; i-- {
		if rem[i].IsZero() {
			continue
		}
		c, err := rem[i].Div(lead)
		if err != nil {
			return Polynomial[E]{}, Polynomial[E]{}, err
		}
		quot[i-db] = c
		for j := 0; j <= db; j++ {
			rem[i-db+j] = rem[i-db+j].Sub(c.Mul(b.coeffs[j]))
		}
	}
	return Polynomial[E]{coeffs: trim(quot)}, Polynomial[E]{coeffs: trim(rem[:db])}, nil
}

// Mod returns p mod b.
func (p Polynomial[E]) Mod(b Polynomial[E]) (Polynomial[E], error) {
	_, r, err := p.DivRem(b)
	return r, err
}

// DivXToDeg returns the floor of p / x^k, i.e. the polynomial obtained by
// dropping the first k coefficients. The half-GCD recursion uses it to
// operate on the top halves of its operands.
func (p Polynomial[E]) DivXToDeg(k int) Polynomial[E] {
	if k <= 0 {
		return FromCoefficients(p.coeffs)
	}
	if k >= len(p.coeffs) {
		return Polynomial[E]{}
	}
	out := make([]E, len(p.coeffs)-k)
	copy(out, p.coeffs[k:])
	return Polynomial[E]{coeffs: out}
}

// String renders p as a sum of c*x^i terms with zero terms omitted, or "0"
// for the zero polynomial.
func (p Polynomial[E]) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	sep := ""
	for deg, c := range p.coeffs {
		if c.IsZero() {
			continue
		}
		fmt.Fprintf(&sb, "%s%s*x^%d", sep, c, deg)
		sep = " + "
	}
	return sb.String()
}
