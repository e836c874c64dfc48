package field

import "qc-mdpc/prng"

// IsZeroVector reports whether every entry of vec is zero.
func IsZeroVector[E Element[E]](vec []E) bool {
	for _, v := range vec {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// HammingWeight returns the number of non-zero entries of vec.
func HammingWeight[E Element[E]](vec []E) int {
	weight := 0
	for _, v := range vec {
		if !v.IsZero() {
			weight++
		}
	}
	return weight
}

// Sum returns the field sum of all entries of vec.
func Sum[E Element[E]](vec []E) E {
	var s E
	for _, v := range vec {
		s = s.Add(v)
	}
	return s
}

// RandomVector draws a length-length vector with entries uniform over f.
func RandomVector[E Element[E]](f Field[E], src *prng.Source, length int) []E {
	out := make([]E, length)
	for i := range out {
		out[i] = f.Random(src)
	}
	return out
}

// RandomWeightedVector draws a length-length vector with exactly weight
// non-zero entries, each uniform over the non-zero elements of f. The
// non-zero draws are placed first and the whole vector is then shuffled
// in place with Fisher-Yates.
func RandomWeightedVector[E Element[E]](f Field[E], src *prng.Source, length, weight int) ([]E, error) {
	if weight > length {
		return nil, ErrImpossibleWeight
	}
	out := make([]E, length)
	for i := 0; i < weight; i++ {
		out[i] = f.RandomNonzero(src)
	}
	for i := 0; i < length; i++ {
		j := int(src.IntRange(uint64(i), uint64(length-1)))
		if i != j {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}
