package extension

import (
	"io"

	"github.com/pairingcrypto/mercurial-signature/keygen"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// KeyGenEx generates an extension key pair: a base key pair of length 5
// plus the trapdoor scalars x6..x10 (and their G2 images bx6..bx10) that
// VarSign uses to compute the glue element h.
func KeyGenEx(p provider.Provider, rng io.Reader, pp models.PublicParams) (ExtPublicKey, ExtSecretKey, error) {
	basePK, baseSK, err := keygen.KeyGen(p, rng, pp, 5)
	if err != nil {
		return ExtPublicKey{}, ExtSecretKey{}, err
	}

	// Trapdoor scalars x, y1, y2: reconstructible later only via the
	// secret key's x6..x10, never stored directly.
	x, err := p.RandomFr(rng)
	if err != nil {
		return ExtPublicKey{}, ExtSecretKey{}, err
	}
	y1, err := p.RandomFr(rng)
	if err != nil {
		return ExtPublicKey{}, ExtSecretKey{}, err
	}
	y2, err := p.RandomFr(rng)
	if err != nil {
		return ExtPublicKey{}, ExtSecretKey{}, err
	}

	x6, err := p.RandomNonZeroFr(rng)
	if err != nil {
		return ExtPublicKey{}, ExtSecretKey{}, err
	}
	x8, err := p.RandomNonZeroFr(rng)
	if err != nil {
		return ExtPublicKey{}, ExtSecretKey{}, err
	}

	x7 := p.FrMul(x6, x)
	x9 := p.FrMul(x8, y1)
	x10 := p.FrMul(x8, y2)

	sk := ExtSecretKey{SK: baseSK, X6: x6, X7: x7, X8: x8, X9: x9, X10: x10}
	pk := ExtPublicKey{
		PK:   basePK,
		Bx6:  p.G2ScalarMul(x6, pp.P2),
		Bx7:  p.G2ScalarMul(x7, pp.P2),
		Bx8:  p.G2ScalarMul(x8, pp.P2),
		Bx9:  p.G2ScalarMul(x9, pp.P2),
		Bx10: p.G2ScalarMul(x10, pp.P2),
	}
	return pk, sk, nil
}
