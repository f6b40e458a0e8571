// Package convertf holds the single "convert-with-f" helper shared by
// ConvertSig and ChangeRepresentation: both sample a fresh
// randomizer f and fold it into the signature the same way, differing
// only in whether the second scalar p multiplies into the key axis
// (ConvertSig) or the message axis (ChangeRepresentation). Keeping one
// copy of this helper is what makes the two operations' algebraic
// correctness easy to audit together.
package convertf

import (
	"io"

	"github.com/pairingcrypto/mercurial-signature/internal/telemetry"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// WithF samples a non-zero f and updates sig in place:
//
//	z  <- (p*f) * z
//	y1 <- (1/f) * y1
//	y2 <- (1/f) * y2
//
// p is the caller's key-conversion scalar for ConvertSig, or u, the
// message-conversion scalar, for ChangeRepresentation.
func WithF(pr provider.Provider, rng io.Reader, sig *models.Signature, p provider.Fr) error {
	telemetry.Debug().Msg("convertf: sampling randomizer f")
	f, err := pr.RandomNonZeroFr(rng)
	if err != nil {
		return err
	}
	ApplyWithF(pr, sig, p, f)
	return nil
}

// ApplyWithF is the deterministic half of WithF, split out so tests can
// drive it with a fixed f instead of a sampled one.
func ApplyWithF(pr provider.Provider, sig *models.Signature, p, f provider.Fr) {
	pf := pr.FrMul(p, f)
	fInv := pr.FrInv(f)

	sig.Z = pr.G1ScalarMul(pf, sig.Z)
	sig.Y1 = pr.G1ScalarMul(fInv, sig.Y1)
	sig.Y2 = pr.G2ScalarMul(fInv, sig.Y2)
}
