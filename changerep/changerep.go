// Package changerep implements ChangeRepresentation, the
// message-axis equivalence-class operation: it produces a signature on
// u*M that verifies under the unchanged key, for any u != 0. It shares
// its f-randomization step with package convert's Signature, via
// internal/convertf.
package changerep

import (
	"io"

	"github.com/pairingcrypto/mercurial-signature/internal/convertf"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// ChangeRepresentation updates message and sig in place: message[i] <-
// u*message[i] for every coordinate, and sig is re-randomized with the
// same convert-with-f step ConvertSig uses, passing u as the scalar that
// multiplies into z. The key is untouched.
func ChangeRepresentation(pr provider.Provider, rng io.Reader, message []provider.G1, sig *models.Signature, u provider.Fr) error {
	if err := convertf.WithF(pr, rng, sig, u); err != nil {
		return err
	}

	for i, mi := range message {
		message[i] = pr.G1ScalarMul(u, mi)
	}
	return nil
}
