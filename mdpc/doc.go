// Package mdpc implements the McEliece-style cryptosystem over non-binary
// QC-MDPC codes: key generation in F[x]/(x^r - 1), systematic encoding by
// circulant convolution, syndrome computation, and the iterative
// symbol-flipping decoder.
//
// The package is generic over the coefficient field; gf4.Field is the
// provided instance. All randomness flows through an explicit *prng.Source
// so runs are reproducible when seeded. Setting MDPC_DEBUG=1 in the
// environment prints key-generation and decoder diagnostics to stderr.
package mdpc
