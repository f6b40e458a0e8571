package extension

import (
	"io"

	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
	"github.com/pairingcrypto/mercurial-signature/sign"
)

// VarSign signs a variable-length message.
//
// It recovers the trapdoor (x, y1, y2) from the extension secret key's
// x6..x10, uses it to compute the glue element h, and signs the n
// resulting 5-tuples under the fixed length-5 base key.
//
// The resulting h is not accompanied by any proof that it was derived
// honestly from message and the trapdoor: a malicious signer can put an
// arbitrary value in h and this function has no way to catch it. The
// scheme's EUF-CMA claim for the extension therefore depends on a
// protocol layer above this library adding that proof (the reserved
// Bx6..Bx10/X6..X10 hooks exist for it).
func VarSign(p provider.Provider, rng io.Reader, sk ExtSecretKey, pp models.PublicParams, message VarMessage) (VarSignature, error) {
	h := computeGlueElement(p, sk, message)

	tuples := toTuples(p, message.G, message.U, h)
	sigs := make([]models.Signature, len(tuples))
	for i, tuple := range tuples {
		sig, err := sign.Sign(p, rng, sk.SK, pp, tuple[:])
		if err != nil {
			return VarSignature{}, err
		}
		sigs[i] = sig
	}

	return VarSignature{H: h, Sigs: sigs}, nil
}

// computeGlueElement recovers x = x7/x6, y1 = x9/x8, y2 = x10/x8, y =
// y1*y2, then computes h = y * sum_{i=1..n} x^(i-1) * ui.
func computeGlueElement(p provider.Provider, sk ExtSecretKey, message VarMessage) provider.G1 {
	x := p.FrMul(sk.X7, p.FrInv(sk.X6))
	y1 := p.FrMul(sk.X9, p.FrInv(sk.X8))
	y2 := p.FrMul(sk.X10, p.FrInv(sk.X8))
	y := p.FrMul(y1, y2)

	h := p.G1Identity()
	xi := p.FrOne()
	for i, ui := range message.U {
		if i > 0 {
			xi = p.FrMul(xi, x)
		}
		h = p.G1Add(h, p.G1ScalarMul(p.FrMul(xi, y), ui))
	}
	return h
}
