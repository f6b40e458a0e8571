// Package convert implements the key-conversion half of the
// equivalence-class operations: ConvertKey on a PublicKey or SecretKey,
// and ConvertSig on a Signature. All three must be called with the same
// scalar p for a (pk, sk, sig) triple to remain self-consistent; see
// package changerep for the independent message-axis operation.
package convert

import (
	"io"

	"github.com/pairingcrypto/mercurial-signature/internal/convertf"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// PublicKey replaces each bxi with p*bxi, in place.
func PublicKey(pr provider.Provider, pk *models.PublicKey, p provider.Fr) {
	for i, bxi := range pk.Bx {
		pk.Bx[i] = pr.G2ScalarMul(p, bxi)
	}
}

// SecretKey replaces each xi with p*xi, in place.
func SecretKey(pr provider.Provider, sk *models.SecretKey, p provider.Fr) {
	for i, xi := range sk.X {
		sk.X[i] = pr.FrMul(p, xi)
	}
}

// Signature randomizes sig to a fresh representative consistent with
// PublicKey(pk, p) and SecretKey(sk, p), in place. It samples its own
// non-zero f; see convertf.WithF for the algebra.
func Signature(pr provider.Provider, rng io.Reader, sig *models.Signature, p provider.Fr) error {
	return convertf.WithF(pr, rng, sig, p)
}
