package extension

import (
	"io"

	"github.com/pairingcrypto/mercurial-signature/changerep"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// VarChangeRepresentation applies the base ChangeRepresentation to every
// (Mi, sigi) pair with the same u, each with its own freshly sampled f,
// then updates g <- u*g, every ui <- u*ui, and h <- u*h. i*g scales to
// u*i*g and n*g to u*n*g automatically, so the recomputed tuples stay
// consistent for VarVerify after scaling.
func VarChangeRepresentation(p provider.Provider, rng io.Reader, message *VarMessage, sig *VarSignature, u provider.Fr) error {
	h := sig.H
	tuples := toTuples(p, message.G, message.U, h)

	for i := range tuples {
		if err := changerep.ChangeRepresentation(p, rng, tuples[i][:], &sig.Sigs[i], u); err != nil {
			return err
		}
	}

	message.G = p.G1ScalarMul(u, message.G)
	for i, ui := range message.U {
		message.U[i] = p.G1ScalarMul(u, ui)
	}
	sig.H = p.G1ScalarMul(u, h)
	return nil
}
