// Package verify implements Verify, the fourth mercurial signature
// algorithm: checking a Signature on a message vector against a
// PublicKey. Verify never errors — an algebraic mismatch or a length
// mismatch is reported as a plain false.
package verify

import (
	"github.com/pairingcrypto/mercurial-signature/internal/telemetry"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// Verify checks the validity of a mercurial signature.
//
// Parameters:
//   - pk: the public key the signature should verify under.
//   - pp: the public parameters the key pair was generated against.
//   - message: the message vector the signature is claimed to be on.
//   - sig: the signature to verify.
//
// Returns:
//   - bool: true iff len(message) <= pk.Length() and both verification
//     equations hold.
func Verify(p provider.Provider, pk models.PublicKey, pp models.PublicParams, message []provider.G1, sig models.Signature) bool {
	if len(message) > pk.Length() {
		telemetry.Debug().Int("message_length", len(message)).Int("key_length", pk.Length()).Msg("verify: length mismatch")
		return false
	}

	if !checkYConsistency(p, pp, sig) {
		telemetry.Debug().Msg("verify: y-consistency check failed")
		return false
	}

	ok := checkZConsistency(p, pk, message, sig)
	telemetry.Debug().Bool("ok", ok).Msg("verify: z-consistency check")
	return ok
}

// checkYConsistency checks e(y1, p2) == e(p1, y2), proving y1 and y2
// share the same discrete log 1/y.
func checkYConsistency(p provider.Provider, pp models.PublicParams, sig models.Signature) bool {
	lhs := p.Pair(sig.Y1, pp.P2)
	rhs := p.Pair(pp.P1, sig.Y2)
	return p.GtEqual(lhs, rhs)
}

// checkZConsistency checks e(z, y2) == prod_i e(Mi, bxi), proving
// z = y * sum(xi * Mi).
func checkZConsistency(p provider.Provider, pk models.PublicKey, message []provider.G1, sig models.Signature) bool {
	lhs := p.Pair(sig.Z, sig.Y2)
	rhs := p.MultiPair(message, pk.Bx[:len(message)])
	return p.GtEqual(lhs, rhs)
}
