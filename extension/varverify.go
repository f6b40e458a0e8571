package extension

import (
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
	"github.com/pairingcrypto/mercurial-signature/verify"
)

// VarVerify recomputes the n tuples Mi = (g, i*g, n*g, h, ui) from the
// public VarMessage and the signature's own h, then base-verifies each
// (Mi, sigi) under the length-5 base public key. It accepts iff all n
// pass and the lengths agree.
func VarVerify(p provider.Provider, pk ExtPublicKey, pp models.PublicParams, message VarMessage, sig VarSignature) bool {
	if message.Length() != len(sig.Sigs) {
		return false
	}

	tuples := toTuples(p, message.G, message.U, sig.H)
	for i, tuple := range tuples {
		if !verify.Verify(p, pk.PK, pp, tuple[:], sig.Sigs[i]) {
			return false
		}
	}
	return true
}
