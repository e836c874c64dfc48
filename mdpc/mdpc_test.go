package mdpc_test

import (
	"errors"
	"os"
	"testing"

	"qc-mdpc/field"
	"qc-mdpc/gf4"
	"qc-mdpc/mdpc"
	"qc-mdpc/prng"
)

var f gf4.Field

func genContexts(t *testing.T, src *prng.Source, r, w int) (*mdpc.EncodingContext[gf4.Element], *mdpc.DecodingContext[gf4.Element]) {
	t.Helper()
	enc, dec, err := mdpc.GenerateContexts[gf4.Element](f, src, r, w)
	if err != nil {
		t.Fatalf("GenerateContexts(r=%d, w=%d): %v", r, w, err)
	}
	return enc, dec
}

func addVectors(a, b []gf4.Element) []gf4.Element {
	out := make([]gf4.Element, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

func vectorsEqual(a, b []gf4.Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGeneratedKeysHaveExactWeight(t *testing.T) {
	src := prng.NewSeededSource([]byte("keygen weights"))
	const r, w = 53, 5
	enc, dec := genContexts(t, src, r, w)

	h0, h1 := dec.ParityRows()
	if len(h0) != r || len(h1) != r {
		t.Fatalf("row lengths %d, %d, want %d", len(h0), len(h1), r)
	}
	if got := field.HammingWeight(h0); got != w {
		t.Fatalf("weight(h0) = %d, want %d", got, w)
	}
	if got := field.HammingWeight(h1); got != w {
		t.Fatalf("weight(h1) = %d, want %d", got, w)
	}
	if field.Sum(h1).IsZero() {
		t.Fatal("h1 sums to zero; the rejection loop let a degenerate row through")
	}
	if len(enc.GeneratorBlock()) != r {
		t.Fatalf("generator block length %d, want %d", len(enc.GeneratorBlock()), r)
	}
}

func TestGenerateContextsRejectsBadParameters(t *testing.T) {
	src := prng.NewSeededSource([]byte("bad params"))
	if _, _, err := mdpc.GenerateContexts[gf4.Element](f, src, 10, 11); !errors.Is(err, field.ErrImpossibleWeight) {
		t.Fatalf("w > r: got %v, want ErrImpossibleWeight", err)
	}
	if _, _, err := mdpc.GenerateContexts[gf4.Element](f, src, 0, 1); err == nil {
		t.Fatal("r = 0 accepted")
	}
	if _, _, err := mdpc.GenerateContexts[gf4.Element](f, src, 10, 0); err == nil {
		t.Fatal("w = 0 accepted")
	}
}

func TestEncodedWordsHaveZeroSyndrome(t *testing.T) {
	src := prng.NewSeededSource([]byte("syndrome"))
	const r, w = 53, 5
	enc, dec := genContexts(t, src, r, w)

	for i := 0; i < 8; i++ {
		message := field.RandomVector[gf4.Element](f, src, r)
		codeword, err := enc.Encode(message)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if len(codeword) != 2*r {
			t.Fatalf("codeword length = %d, want %d", len(codeword), 2*r)
		}
		if !vectorsEqual(codeword[:r], message) {
			t.Fatal("systematic part differs from the message")
		}
		syndrome, err := dec.Syndrome(codeword)
		if err != nil {
			t.Fatalf("Syndrome: %v", err)
		}
		if !field.IsZeroVector(syndrome) {
			t.Fatalf("syndrome of a codeword has weight %d", field.HammingWeight(syndrome))
		}
	}
}

func TestSyndromeDetectsCorruption(t *testing.T) {
	src := prng.NewSeededSource([]byte("corruption"))
	const r, w = 53, 5
	enc, dec := genContexts(t, src, r, w)

	message := field.RandomVector[gf4.Element](f, src, r)
	codeword, err := enc.Encode(message)
	if err != nil {
		t.Fatal(err)
	}
	corrupted := append([]gf4.Element(nil), codeword...)
	corrupted[3] = corrupted[3].Add(gf4.Alpha)
	syndrome, err := dec.Syndrome(corrupted)
	if err != nil {
		t.Fatal(err)
	}
	if field.IsZeroVector(syndrome) {
		t.Fatal("syndrome of a corrupted word is zero")
	}
}

func TestInputLengthChecks(t *testing.T) {
	src := prng.NewSeededSource([]byte("lengths"))
	const r, w = 29, 3
	enc, dec := genContexts(t, src, r, w)

	if _, err := enc.Encode(make([]gf4.Element, r+1)); !errors.Is(err, mdpc.ErrInputVectorLength) {
		t.Fatalf("Encode wrong length: got %v, want ErrInputVectorLength", err)
	}
	if _, err := dec.Syndrome(make([]gf4.Element, 2*r-1)); !errors.Is(err, mdpc.ErrInputVectorLength) {
		t.Fatalf("Syndrome wrong length: got %v, want ErrInputVectorLength", err)
	}
	if _, _, err := dec.Decode(make([]gf4.Element, r), 10); !errors.Is(err, mdpc.ErrInputVectorLength) {
		t.Fatalf("Decode wrong length: got %v, want ErrInputVectorLength", err)
	}
}

func TestTinyRoundTrip(t *testing.T) {
	// r = 7, w = 3 over GF(4); message (1, 0, ..., 0)
	src := prng.NewSeededSource([]byte("tiny"))
	enc, dec := genContexts(t, src, 7, 3)

	message := make([]gf4.Element, 7)
	message[0] = gf4.One
	codeword, err := enc.Encode(message)
	if err != nil {
		t.Fatal(err)
	}
	errVec, ok, err := dec.Decode(codeword, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("decoder failed on an uncorrupted codeword")
	}
	if !field.IsZeroVector(errVec) {
		t.Fatalf("error vector has weight %d, want 0", field.HammingWeight(errVec))
	}
}

func TestCleanDecodeManyMessages(t *testing.T) {
	src := prng.NewSeededSource([]byte("clean"))
	const r, w = 101, 7
	enc, dec := genContexts(t, src, r, w)

	for i := 0; i < 8; i++ {
		message := field.RandomVector[gf4.Element](f, src, r)
		codeword, err := enc.Encode(message)
		if err != nil {
			t.Fatal(err)
		}
		errVec, ok, err := dec.Decode(codeword, 20)
		if err != nil {
			t.Fatal(err)
		}
		if !ok || !field.IsZeroVector(errVec) {
			t.Fatalf("clean decode failed on message %d", i)
		}
	}
}

func TestInjectedErrorRecovery(t *testing.T) {
	src := prng.NewSeededSource([]byte("injected"))
	const r, w, errWeight = 149, 9, 2
	enc, dec := genContexts(t, src, r, w)

	decoded := 0
	exact := 0
	const runs = 5
	for i := 0; i < runs; i++ {
		message := field.RandomVector[gf4.Element](f, src, r)
		codeword, err := enc.Encode(message)
		if err != nil {
			t.Fatal(err)
		}
		injected, err := field.RandomWeightedVector[gf4.Element](f, src, 2*r, errWeight)
		if err != nil {
			t.Fatal(err)
		}
		errVec, ok, err := dec.Decode(addVectors(codeword, injected), 30)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			continue
		}
		decoded++
		if vectorsEqual(errVec, injected) {
			exact++
		}
		// the recovered word must be the original codeword when recovery
		// is exact
		if vectorsEqual(errVec, injected) {
			recovered := addVectors(addVectors(codeword, injected), errVec)
			if !vectorsEqual(recovered[:r], message) {
				t.Fatal("message block not recovered from c' - e")
			}
		}
	}
	if decoded < runs-1 {
		t.Fatalf("decoded %d/%d corrupted words", decoded, runs)
	}
	if exact < runs-1 {
		t.Fatalf("exact recovery in %d/%d runs", exact, runs)
	}
}

func TestDecodeTracedReportsTrajectory(t *testing.T) {
	src := prng.NewSeededSource([]byte("traced"))
	const r, w = 101, 7
	enc, dec := genContexts(t, src, r, w)

	message := field.RandomVector[gf4.Element](f, src, r)
	codeword, err := enc.Encode(message)
	if err != nil {
		t.Fatal(err)
	}
	injected, err := field.RandomWeightedVector[gf4.Element](f, src, 2*r, 2)
	if err != nil {
		t.Fatal(err)
	}
	_, trace, ok, err := dec.DecodeTraced(addVectors(codeword, injected), 30)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("traced decode failed")
	}
	if len(trace) == 0 {
		t.Fatal("empty trace for a corrupted word")
	}
	if trace[len(trace)-1] != 0 {
		t.Fatalf("final syndrome weight = %d, want 0", trace[len(trace)-1])
	}

	// a clean word decodes without any flips
	_, trace, ok, err = dec.DecodeTraced(codeword, 30)
	if err != nil || !ok {
		t.Fatalf("clean traced decode: ok=%v err=%v", ok, err)
	}
	if len(trace) != 0 {
		t.Fatalf("clean decode recorded %d flips", len(trace))
	}
}

// TestRecommendedParameters exercises the recommended GF(4) parameter set
// (r=2339, w=37). It is expensive; set RUN_SLOW_MDPC=1 to run it.
func TestRecommendedParameters(t *testing.T) {
	if os.Getenv("RUN_SLOW_MDPC") != "1" {
		t.Skip("set RUN_SLOW_MDPC=1 to exercise the recommended parameter set")
	}
	src := prng.NewSeededSource([]byte("recommended"))
	const r, w = 2339, 37
	enc, dec := genContexts(t, src, r, w)

	h0, h1 := dec.ParityRows()
	if field.HammingWeight(h0) != w || field.HammingWeight(h1) != w {
		t.Fatal("parity rows do not have the designed weight")
	}

	// clean round trip
	message := field.RandomVector[gf4.Element](f, src, r)
	codeword, err := enc.Encode(message)
	if err != nil {
		t.Fatal(err)
	}
	errVec, ok, err := dec.Decode(codeword, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || !field.IsZeroVector(errVec) {
		t.Fatal("clean decode failed at recommended parameters")
	}

	// weight-10 injected error
	injected, err := field.RandomWeightedVector[gf4.Element](f, src, 2*r, 10)
	if err != nil {
		t.Fatal(err)
	}
	errVec, ok, err = dec.Decode(addVectors(codeword, injected), 100)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("decoder failed on a weight-10 error at recommended parameters")
	}
	if !vectorsEqual(errVec, injected) {
		t.Fatal("recovered error vector differs from the injected one")
	}
}
