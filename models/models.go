package models

import "github.com/pairingcrypto/mercurial-signature/provider"

// SecretKey is the signer's half of a key pair: x = (x1, ..., xl) in
// Fr^l. Length must be at least 1.
type SecretKey struct {
	X []provider.Fr
}

// Length returns l, the number of scalar coordinates in the key.
func (sk SecretKey) Length() int {
	return len(sk.X)
}

// PublicKey is the verifier's half of a key pair: bx = (p2^x1, ...,
// p2^xl), paired coordinate-for-coordinate with a SecretKey generated
// against the same PublicParams.
type PublicKey struct {
	Bx []provider.G2
}

// Length returns l, the number of G2 coordinates in the key.
func (pk PublicKey) Length() int {
	return len(pk.Bx)
}

// Signature is a mercurial signature on a message vector: z proves
// knowledge of the weighted sum of message coordinates, (y1, y2) is a
// matched pair proving the same discrete log 1/y across G1 and G2.
type Signature struct {
	Z  provider.G1
	Y1 provider.G1
	Y2 provider.G2
}
