package poly

import (
	"fmt"

	"qc-mdpc/field"
)

// TransformMatrix is the 2x2 polynomial matrix accumulated by the half-GCD
// recursion. Its determinant stays a non-zero field constant throughout, so
// the inverse transform is the adjugate up to that constant.
type TransformMatrix[E field.Element[E]] struct {
	a00, a01, a10, a11 Polynomial[E]
}

// one returns the constant-one polynomial.
func one[E field.Element[E]]() Polynomial[E] {
	var zero E
	return FromCoefficients([]E{zero.One()})
}

// neg returns -p, expressed through field subtraction so the matrix code
// stays correct over any characteristic.
func neg[E field.Element[E]](p Polynomial[E]) Polynomial[E] {
	var zero Polynomial[E]
	return zero.Sub(p)
}

// Identity returns the identity transform.
func Identity[E field.Element[E]]() TransformMatrix[E] {
	return TransformMatrix[E]{a00: one[E](), a11: one[E]()}
}

// stepMatrix returns the matrix ((q, 1), (1, 0)) of a single Euclidean step
// with quotient q, mapping (b, r) back to (a, b).
func stepMatrix[E field.Element[E]](q Polynomial[E]) TransformMatrix[E] {
	return TransformMatrix[E]{a00: q, a01: one[E](), a10: one[E]()}
}

// Mul returns the matrix product m * other.
func (m TransformMatrix[E]) Mul(other TransformMatrix[E]) TransformMatrix[E] {
	return TransformMatrix[E]{
		a00: m.a00.Mul(other.a00).Add(m.a01.Mul(other.a10)),
		a01: m.a00.Mul(other.a01).Add(m.a01.Mul(other.a11)),
		a10: m.a10.Mul(other.a00).Add(m.a11.Mul(other.a10)),
		a11: m.a10.Mul(other.a01).Add(m.a11.Mul(other.a11)),
	}
}

// Adjugate returns adj(m) = ((a11, -a01), (-a10, a00)), which inverts the
// transform up to the determinant constant.
func (m TransformMatrix[E]) Adjugate() TransformMatrix[E] {
	return TransformMatrix[E]{
		a00: m.a11,
		a01: neg(m.a01),
		a10: neg(m.a10),
		a11: m.a00,
	}
}

// Apply returns m * (a, b) as a column vector.
func (m TransformMatrix[E]) Apply(a, b Polynomial[E]) (Polynomial[E], Polynomial[E]) {
	return m.a00.Mul(a).Add(m.a01.Mul(b)), m.a10.Mul(a).Add(m.a11.Mul(b))
}

// Determinant returns det(m). For matrices produced by the GCD routines it
// is a degree-zero non-zero polynomial.
func (m TransformMatrix[E]) Determinant() Polynomial[E] {
	return m.a00.Mul(m.a11).Sub(m.a01.Mul(m.a10))
}

// HalfGCD reduces (a, b) with deg a >= deg b past the halfway point: it
// returns a prefix of the Euclidean quotient sequence and the transform m
// such that applying adj(m) to (a, b) yields a pair whose second component
// has degree below ceil((deg a + 1)/2). The divide-and-conquer recursion on
// the top halves of the operands is what makes inversion subquadratic.
func HalfGCD[E field.Element[E]](a, b Polynomial[E]) ([]Polynomial[E], TransformMatrix[E], error) {
	if a.Degree() < b.Degree() {
		return nil, TransformMatrix[E]{}, fmt.Errorf("poly: half-gcd requires deg a >= deg b, got %d < %d", a.Degree(), b.Degree())
	}
	m := (a.Degree() + 2) / 2 // ceil((deg a + 1)/2)
	if b.Degree() < m {
		return nil, Identity[E](), nil
	}

	quots, mr, err := HalfGCD(a.DivXToDeg(m), b.DivXToDeg(m))
	if err != nil {
		return nil, TransformMatrix[E]{}, err
	}
	a, b = mr.Adjugate().Apply(a, b)
	if b.Degree() < m {
		return quots, mr, nil
	}

	q, r, err := a.DivRem(b)
	if err != nil {
		return nil, TransformMatrix[E]{}, err
	}
	a, b = b, r
	k := 2*m - a.Degree() - 1
	tail, ms, err := HalfGCD(a.DivXToDeg(k), b.DivXToDeg(k))
	if err != nil {
		return nil, TransformMatrix[E]{}, err
	}
	out := make([]Polynomial[E], 0, len(quots)+1+len(tail))
	out = append(out, quots...)
	out = append(out, q)
	out = append(out, tail...)
	return out, mr.Mul(stepMatrix(q)).Mul(ms), nil
}

// FullGCD runs the extended Euclidean algorithm on (a, b), delegating to
// HalfGCD whenever 2*deg b > deg a and performing a single Euclidean step
// otherwise. It returns the full quotient sequence and the composed
// transform m with m * (gcd, 0) = (a, b) up to a unit constant, so applying
// adj(m) to (a, b) recovers (gcd, 0) up to the same constant.
func FullGCD[E field.Element[E]](a, b Polynomial[E]) ([]Polynomial[E], TransformMatrix[E], error) {
	var quots []Polynomial[E]
	m := Identity[E]()
	for !b.IsZero() {
		if 2*b.Degree() > a.Degree() {
			part, tr, err := HalfGCD(a, b)
			if err != nil {
				return nil, TransformMatrix[E]{}, err
			}
			quots = append(quots, part...)
			m = m.Mul(tr)
			a, b = tr.Adjugate().Apply(a, b)
		} else {
			q, r, err := a.DivRem(b)
			if err != nil {
				return nil, TransformMatrix[E]{}, err
			}
			quots = append(quots, q)
			m = m.Mul(stepMatrix(q))
			a, b = b, r
		}
	}
	return quots, m, nil
}

// Invert returns the inverse of p in F[x]/(modulus), when it exists. The
// second return value reports whether an inverse was found; it is false
// when p is zero or shares a non-trivial factor with the modulus. A zero
// modulus fails with field.ErrDivisionByZero.
func (p Polynomial[E]) Invert(modulus Polynomial[E]) (Polynomial[E], bool, error) {
	if modulus.IsZero() {
		return Polynomial[E]{}, false, field.ErrDivisionByZero
	}
	if p.IsZero() {
		return Polynomial[E]{}, false, nil
	}
	b, err := p.Mod(modulus)
	if err != nil {
		return Polynomial[E]{}, false, err
	}
	if b.IsZero() {
		return Polynomial[E]{}, false, nil
	}

	_, m, err := FullGCD(modulus, b)
	if err != nil {
		return Polynomial[E]{}, false, err
	}
	g, _ := m.Adjugate().Apply(modulus, b)
	if g.IsZero() || g.Degree() > 0 {
		return Polynomial[E]{}, false, nil
	}

	// g = det(m) * gcd, a non-zero constant when p and modulus are coprime.
	// From adj(m)*(modulus, p) = (g, 0), the Bezout coefficient of p is
	// -m01, so the inverse is -m01 / g reduced mod modulus.
	var zero E
	scale, err := zero.One().Div(g.Coefficient(0))
	if err != nil {
		return Polynomial[E]{}, false, err
	}
	inv, err := neg(m.a01).MulScalar(scale).Mod(modulus)
	if err != nil {
		return Polynomial[E]{}, false, err
	}
	return inv, true, nil
}
