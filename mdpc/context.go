package mdpc

import (
	"errors"
	"os"

	"qc-mdpc/field"
)

// ErrInputVectorLength reports an encoder or decoder input of the wrong
// length.
var ErrInputVectorLength = errors.New("mdpc: input vector has incorrect length")

// EncodingContext is the public half of a key pair: the single ring element
// g = -h0 * h1^-1 mod (x^r - 1) that defines the generator matrix
// G = [I | rot(g)^T]. G itself is never materialised.
type EncodingContext[E field.Element[E]] struct {
	secondBlockG []E
	blockSize    int
}

// NewEncodingContext builds an encoding context from the generator block g
// (length blockSize) and the block size r.
func NewEncodingContext[E field.Element[E]](secondBlockG []E, blockSize int) *EncodingContext[E] {
	g := make([]E, len(secondBlockG))
	copy(g, secondBlockG)
	return &EncodingContext[E]{secondBlockG: g, blockSize: blockSize}
}

// BlockSize returns r.
func (ec *EncodingContext[E]) BlockSize() int {
	return ec.blockSize
}

// GeneratorBlock returns a copy of the ring element g.
func (ec *EncodingContext[E]) GeneratorBlock() []E {
	out := make([]E, len(ec.secondBlockG))
	copy(out, ec.secondBlockG)
	return out
}

// Encode maps a length-r message to the length-2r codeword m*G: the first
// block is the message itself, the second the circulant convolution with g.
// The second block is emitted for i = r down to 1, matching the index
// convention of the syndrome; the decoder depends on the two agreeing.
func (ec *EncodingContext[E]) Encode(message []E) ([]E, error) {
	r := ec.blockSize
	if len(message) != r {
		return nil, ErrInputVectorLength
	}
	encoded := make([]E, 0, 2*r)
	encoded = append(encoded, message...)
	for i := r; i > 0; i-- {
		var acc E
		for j := 0; j < r; j++ {
			acc = acc.Add(message[j].Mul(ec.secondBlockG[(i+j)%r]))
		}
		encoded = append(encoded, acc)
	}
	return encoded, nil
}

// DecodingContext is the private half of a key pair: the two weight-w rows
// h0, h1 that define the parity-check matrix H = [rot(h0) | rot(h1)]. H
// itself is never materialised.
type DecodingContext[E field.Element[E]] struct {
	f           field.Field[E]
	h0          []E
	h1          []E
	blockSize   int
	blockWeight int
}

// NewDecodingContext builds a decoding context from the parity-check rows
// h0, h1 (each of length blockSize and Hamming weight blockWeight).
func NewDecodingContext[E field.Element[E]](f field.Field[E], h0, h1 []E, blockSize, blockWeight int) *DecodingContext[E] {
	c0 := make([]E, len(h0))
	copy(c0, h0)
	c1 := make([]E, len(h1))
	copy(c1, h1)
	return &DecodingContext[E]{f: f, h0: c0, h1: c1, blockSize: blockSize, blockWeight: blockWeight}
}

// BlockSize returns r.
func (dc *DecodingContext[E]) BlockSize() int {
	return dc.blockSize
}

// BlockWeight returns w.
func (dc *DecodingContext[E]) BlockWeight() int {
	return dc.blockWeight
}

// ParityRows returns copies of h0 and h1.
func (dc *DecodingContext[E]) ParityRows() ([]E, []E) {
	h0 := make([]E, len(dc.h0))
	copy(h0, dc.h0)
	h1 := make([]E, len(dc.h1))
	copy(h1, dc.h1)
	return h0, h1
}

// Syndrome computes s = v*H^T for a length-2r vector, with the outer index
// running from r down to 1. The syndrome is zero exactly when v is a
// codeword.
func (dc *DecodingContext[E]) Syndrome(vec []E) ([]E, error) {
	r := dc.blockSize
	if len(vec) != 2*r {
		return nil, ErrInputVectorLength
	}
	syndrome := make([]E, 0, r)
	for i := r; i > 0; i-- {
		var acc E
		for j := 0; j < r; j++ {
			acc = acc.Add(dc.h0[(i+j)%r].Mul(vec[j]))
			acc = acc.Add(dc.h1[(i+j)%r].Mul(vec[r+j]))
		}
		syndrome = append(syndrome, acc)
	}
	return syndrome, nil
}

// Decode runs the symbol-flipping decoder on a length-2r ciphertext for at
// most maxIterations flips. On success it returns the recovered error
// vector e (ciphertext - e is a codeword) and true. Decoding failure is a
// normal outcome of the probabilistic decoder, reported as (nil, false);
// callers may retry with a larger budget.
func (dc *DecodingContext[E]) Decode(ciphertext []E, maxIterations int) ([]E, bool, error) {
	errVec, _, ok, err := dc.decode(ciphertext, maxIterations, false)
	return errVec, ok, err
}

// DecodeTraced is Decode, additionally returning the syndrome Hamming
// weight after every flip. The trace is returned on failure too; it is the
// raw material of the analysis tool's trajectory charts.
func (dc *DecodingContext[E]) DecodeTraced(ciphertext []E, maxIterations int) ([]E, []int, bool, error) {
	return dc.decode(ciphertext, maxIterations, true)
}

// supportEntry is one non-zero position of a parity-check row.
type supportEntry[E any] struct {
	index int
	value E
}

func rowSupport[E field.Element[E]](row []E) []supportEntry[E] {
	sup := make([]supportEntry[E], 0, len(row))
	for i, v := range row {
		if !v.IsZero() {
			sup = append(sup, supportEntry[E]{index: i, value: v})
		}
	}
	return sup
}

// decode is the symbol-flipping loop. Each iteration scores every
// (position, candidate) pair by the signed syndrome-weight reduction sigma
// the flip would achieve, applies the best one (>= keeps the latest-scanned
// maximum, so ties go to the highest-scanned pair), and stops as soon as
// the syndrome clears.
//
// For a position j with shift k into row h, the affected syndrome entries
// are exactly the support of h: column entry h[(i+k) mod r] under the
// syndrome's i = r..1 ordering lands at syndrome index (k - t) mod r for
// each support index t. Scoring over the support alone is algebraically
// identical to scanning all r entries and keeps an iteration at
// O(2r * |F*| * w) instead of O(2r * |F*| * r).
func (dc *DecodingContext[E]) decode(ciphertext []E, maxIterations int, traced bool) ([]E, []int, bool, error) {
	r := dc.blockSize
	if len(ciphertext) != 2*r {
		return nil, nil, false, ErrInputVectorLength
	}
	syndrome, err := dc.Syndrome(ciphertext)
	if err != nil {
		return nil, nil, false, err
	}
	weight := field.HammingWeight(syndrome)
	errVec := make([]E, 2*r)
	var trace []int
	if weight == 0 {
		return errVec, trace, true, nil
	}

	h0sup := rowSupport(dc.h0)
	h1sup := rowSupport(dc.h1)
	candidates := dc.f.Nonzero()

	for iter := 0; iter < maxIterations && weight > 0; iter++ {
		bestSigma := -(r + 1) // below any achievable reduction
		var bestVal E
		bestPos := 0
		for j := 0; j < 2*r; j++ {
			sup, k := h0sup, j
			if j >= r {
				sup, k = h1sup, j-r
			}
			for _, a := range candidates {
				sigma := 0
				for _, se := range sup {
					idx := k - se.index
					if idx < 0 {
						idx += r
					}
					s := syndrome[idx]
					if s.Sub(a.Mul(se.value)).IsZero() {
						sigma++
					}
					if s.IsZero() {
						sigma--
					}
				}
				if sigma >= bestSigma {
					bestSigma, bestVal, bestPos = sigma, a, j
				}
			}
		}

		sup, k := h0sup, bestPos
		if bestPos >= r {
			sup, k = h1sup, bestPos-r
		}
		for _, se := range sup {
			idx := k - se.index
			if idx < 0 {
				idx += r
			}
			syndrome[idx] = syndrome[idx].Sub(bestVal.Mul(se.value))
		}
		errVec[bestPos] = errVec[bestPos].Add(bestVal)
		weight = field.HammingWeight(syndrome)
		if traced {
			trace = append(trace, weight)
		}
		dbg(os.Stderr, "[decode] iter=%d pos=%d val=%s sigma=%d weight=%d\n", iter+1, bestPos, bestVal, bestSigma, weight)
	}

	if weight == 0 {
		return errVec, trace, true, nil
	}
	return nil, trace, false, nil
}
