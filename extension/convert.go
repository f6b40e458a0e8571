package extension

import (
	"io"

	"github.com/pairingcrypto/mercurial-signature/convert"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// ConvertPublicKey converts the base 5-element public key with p, and
// multiplies bx6..bx10 by p as well.
func ConvertPublicKey(p provider.Provider, pk *ExtPublicKey, scalar provider.Fr) {
	convert.PublicKey(p, &pk.PK, scalar)
	pk.Bx6 = p.G2ScalarMul(scalar, pk.Bx6)
	pk.Bx7 = p.G2ScalarMul(scalar, pk.Bx7)
	pk.Bx8 = p.G2ScalarMul(scalar, pk.Bx8)
	pk.Bx9 = p.G2ScalarMul(scalar, pk.Bx9)
	pk.Bx10 = p.G2ScalarMul(scalar, pk.Bx10)
}

// ConvertSecretKey converts the base 5-element secret key with p, and
// multiplies x6..x10 by p as well.
func ConvertSecretKey(p provider.Provider, sk *ExtSecretKey, scalar provider.Fr) {
	convert.SecretKey(p, &sk.SK, scalar)
	sk.X6 = p.FrMul(scalar, sk.X6)
	sk.X7 = p.FrMul(scalar, sk.X7)
	sk.X8 = p.FrMul(scalar, sk.X8)
	sk.X9 = p.FrMul(scalar, sk.X9)
	sk.X10 = p.FrMul(scalar, sk.X10)
}

// VarConvertSig first applies VarChangeRepresentation with u, then
// base-ConvertSig's every per-coordinate signature with p.
func VarConvertSig(p provider.Provider, rng io.Reader, message *VarMessage, sig *VarSignature, scalarP, scalarU provider.Fr) error {
	if err := VarChangeRepresentation(p, rng, message, sig, scalarU); err != nil {
		return err
	}
	for i := range sig.Sigs {
		if err := convert.Signature(p, rng, &sig.Sigs[i], scalarP); err != nil {
			return err
		}
	}
	return nil
}
