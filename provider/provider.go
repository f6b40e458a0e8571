// Package provider defines the capability interface that the mercurial
// signature core requires from a Type-III pairing group: a scalar field
// Fr and two source groups G1, G2 paired into a target group Gt by a
// bilinear, non-degenerate map e.
//
// Layers above this package never touch a concrete curve library
// directly; they take a Provider value as an explicit argument and treat
// Fr, G1, G2, Gt as opaque. This keeps the algebra (Sign, Verify,
// ConvertKey, ConvertSig, ChangeRepresentation) generic over any curve
// that exposes a Type-III pairing.
package provider

import "io"

// Provider is the narrow set of group and pairing operations the core
// consumes. BLS12381 is the only concrete implementation shipped here;
// a caller who wants a different curve (BN254, BLS12-377, ...) supplies
// their own Provider rather than this package growing a second one.
type Provider interface {
	// FrZero and FrOne return the additive and multiplicative identities.
	FrZero() Fr
	FrOne() Fr
	// RandomFr samples uniformly from the whole scalar field, including
	// zero (probability 1/r, not excluded here).
	RandomFr(rng io.Reader) (Fr, error)
	// RandomNonZeroFr rejection-samples until a non-zero scalar is
	// drawn. Every scalar this core ever inverts (y in Sign, f in
	// ConvertSig/ChangeRepresentation) must come from here, not RandomFr.
	RandomNonZeroFr(rng io.Reader) (Fr, error)
	FrAdd(a, b Fr) Fr
	FrMul(a, b Fr) Fr
	FrInv(a Fr) Fr
	FrNeg(a Fr) Fr
	FrEqual(a, b Fr) bool

	G1Identity() G1
	G1Generator() G1
	RandomG1(rng io.Reader) (G1, error)
	G1Add(a, b G1) G1
	G1Neg(a G1) G1
	G1ScalarMul(s Fr, a G1) G1
	G1Equal(a, b G1) bool
	G1IsIdentity(a G1) bool

	G2Identity() G2
	G2Generator() G2
	RandomG2(rng io.Reader) (G2, error)
	G2Add(a, b G2) G2
	G2ScalarMul(s Fr, a G2) G2
	G2Equal(a, b G2) bool
	G2IsIdentity(a G2) bool

	// Pair computes e(a, b).
	Pair(a G1, b G2) Gt
	// MultiPair computes the product Π e(as[i], bs[i]), accumulating in
	// Gt rather than forcing the caller to call Pair in a loop and
	// multiply by hand; a provider backed by a true multi-Miller-loop
	// pairing library can override this for a speedup without changing
	// the contract.
	MultiPair(as []G1, bs []G2) Gt
	GtEqual(a, b Gt) bool

	MarshalFr(Fr) []byte
	UnmarshalFr([]byte) (Fr, error)
	MarshalG1(G1) []byte
	UnmarshalG1([]byte) (G1, error)
	MarshalG2(G2) []byte
	UnmarshalG2([]byte) (G2, error)
	MarshalGt(Gt) []byte
	UnmarshalGt([]byte) (Gt, error)
}
