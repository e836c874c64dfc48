package mdpc

import (
	"errors"
	"fmt"
	"os"

	"qc-mdpc/field"
	"qc-mdpc/poly"
	"qc-mdpc/prng"
)

// ErrInverterBug reports that a computed inverse failed the h1 * h1^-1 = 1
// verification. It indicates a defect in the polynomial inverter and is
// never recoverable.
var ErrInverterBug = errors.New("mdpc: inverse verification failed, polynomial inverter is defective")

// GenerateContexts draws a key pair for block size r and row weight w over
// the field f. It samples h0 and h1 as weight-w rows, rejecting h1
// candidates that sum to zero (h1(1) = 0 would share the factor x - 1 with
// the modulus) or that are not invertible mod x^r - 1, and derives the
// public generator block g = -h0 * h1^-1 mod (x^r - 1).
//
// The draw-and-invert loop terminates with probability 1; the density of
// invertible weight-w rows is bounded below.
func GenerateContexts[E field.Element[E]](f field.Field[E], src *prng.Source, blockSize, blockWeight int) (*EncodingContext[E], *DecodingContext[E], error) {
	if blockSize < 1 {
		return nil, nil, fmt.Errorf("mdpc: block size must be positive, got %d", blockSize)
	}
	if blockWeight < 1 {
		return nil, nil, fmt.Errorf("mdpc: block weight must be positive, got %d", blockWeight)
	}

	h0, err := field.RandomWeightedVector(f, src, blockSize, blockWeight)
	if err != nil {
		return nil, nil, err
	}
	h0Poly := poly.FromCoefficients(h0)

	// modulus f(x) = x^r - 1; over characteristic 2 the constant term -1 is 1.
	var zero E
	modulus := poly.New[E](blockSize)
	modulus.SetCoefficient(0, zero.Sub(f.One()))
	modulus.SetCoefficient(blockSize, f.One())

	for trial := 1; ; trial++ {
		h1, err := field.RandomWeightedVector(f, src, blockSize, blockWeight)
		if err != nil {
			return nil, nil, err
		}
		if field.Sum(h1).IsZero() {
			dbg(os.Stderr, "[keygen] trial=%d rejected: row evaluates to zero at 1\n", trial)
			continue
		}
		h1Poly := poly.FromCoefficients(h1)
		inv, ok, err := h1Poly.Invert(modulus)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			dbg(os.Stderr, "[keygen] trial=%d rejected: not invertible mod x^%d - 1\n", trial, blockSize)
			continue
		}

		check, err := h1Poly.Mul(inv).Mod(modulus)
		if err != nil {
			return nil, nil, err
		}
		if !check.IsOne() {
			return nil, nil, ErrInverterBug
		}

		gPoly := neg(h0Poly.Mul(inv))
		gPoly, err = gPoly.Mod(modulus)
		if err != nil {
			return nil, nil, err
		}
		dbg(os.Stderr, "[keygen] trial=%d accepted\n", trial)
		ec := NewEncodingContext(gPoly.CoefficientVector(blockSize), blockSize)
		dc := NewDecodingContext(f, h0, h1, blockSize, blockWeight)
		return ec, dc, nil
	}
}

// neg returns -p via field subtraction; over characteristic 2 it is the
// identity.
func neg[E field.Element[E]](p poly.Polynomial[E]) poly.Polynomial[E] {
	var zero poly.Polynomial[E]
	return zero.Sub(p)
}
