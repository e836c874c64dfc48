// Package prng provides the random source used by key generation and the
// vector samplers. It wraps lattigo's keyed BLAKE2b XOF PRNG behind a small
// integer-sampling API with inclusive bounds, and is always passed around as
// an explicit handle so that seeded runs are reproducible.
package prng

import (
	"encoding/binary"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// Source is a deterministic stream of uniform values. A Source is not safe
// for concurrent use; the whole core is single-threaded by construction.
type Source struct {
	prng utils.PRNG
}

// NewSource returns a Source keyed from the operating system.
func NewSource() *Source {
	p, _ := utils.NewPRNG()
	return &Source{prng: p}
}

// NewSeededSource returns a Source whose output is a pure function of seed.
// The PRNG key is derived with SHAKE-256 so seeds of any length are accepted.
func NewSeededSource(seed []byte) *Source {
	key := make([]byte, 64)
	sha3.ShakeSum256(key, seed)
	p, _ := utils.NewKeyedPRNG(key)
	return &Source{prng: p}
}

// Read fills p with pseudo-random bytes.
func (s *Source) Read(p []byte) (int, error) {
	return s.prng.Read(p)
}

// Uint64 returns a uniform 64-bit value.
func (s *Source) Uint64() uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.prng, buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Int returns a uniform integer in [0, inclusiveBound].
func (s *Source) Int(inclusiveBound uint64) uint64 {
	return s.below(inclusiveBound + 1)
}

// IntRange returns a uniform integer in [inclusiveLow, inclusiveHigh].
func (s *Source) IntRange(inclusiveLow, inclusiveHigh uint64) uint64 {
	if inclusiveLow > inclusiveHigh {
		panic("prng: empty range")
	}
	return inclusiveLow + s.below(inclusiveHigh-inclusiveLow+1)
}

// below returns a uniform integer in [0, n) with rejection sampling, so
// bounds that do not divide 2^64 stay unbiased. n = 0 means 2^64.
func (s *Source) below(n uint64) uint64 {
	if n == 0 {
		return s.Uint64()
	}
	if n&(n-1) == 0 {
		return s.Uint64() & (n - 1)
	}
	// Reject the low 2^64 mod n values; what remains splits evenly.
	threshold := -n % n
	for {
		v := s.Uint64()
		if v >= threshold {
			return v % n
		}
	}
}
