// Package sign implements Sign, the third mercurial signature
// algorithm: producing a Signature on a message vector under a
// SecretKey.
package sign

import (
	"io"

	"github.com/pairingcrypto/mercurial-signature/internal/telemetry"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// Sign produces a signature on message under sk.
//
// Parameters:
//   - sk: the secret key x = (x1, ..., xl).
//   - pp: the public parameters (p1, p2) sk was generated against.
//   - message: the message vector M = (M1, ..., Mm), m <= l.
//
// Returns:
//   - models.Signature: the generated signature (z, y1, y2).
//   - error: models.ErrMessageTooLong if len(message) > sk.Length(),
//     or a wrapped RNG failure.
func Sign(p provider.Provider, rng io.Reader, sk models.SecretKey, pp models.PublicParams, message []provider.G1) (models.Signature, error) {
	telemetry.Debug().Int("message_length", len(message)).Int("key_length", sk.Length()).Msg("sign: start")
	if len(message) > sk.Length() {
		return models.Signature{}, models.ErrMessageTooLong
	}

	// Step 1: sample y != 0, since it will be inverted below.
	y, err := p.RandomNonZeroFr(rng)
	if err != nil {
		return models.Signature{}, err
	}

	// Step 2: z = y * (x1*M1 + ... + xm*Mm).
	z := ComputeZ(p, y, sk, message)

	// Step 3: y1 = p1^(1/y), y2 = p2^(1/y).
	y1, y2 := ComputeY1Y2(p, y, pp)

	return models.Signature{Z: z, Y1: y1, Y2: y2}, nil
}

// ComputeZ computes z = y * sum_i(xi * Mi).
func ComputeZ(p provider.Provider, y provider.Fr, sk models.SecretKey, message []provider.G1) provider.G1 {
	z := p.G1Identity()
	for i, m := range message {
		scaledByXi := p.FrMul(y, sk.X[i])
		z = p.G1Add(z, p.G1ScalarMul(scaledByXi, m))
	}
	return z
}

// ComputeY1Y2 computes y1 = p1^(1/y) and y2 = p2^(1/y).
func ComputeY1Y2(p provider.Provider, y provider.Fr, pp models.PublicParams) (provider.G1, provider.G2) {
	yInv := p.FrInv(y)
	y1 := p.G1ScalarMul(yInv, pp.P1)
	y2 := p.G2ScalarMul(yInv, pp.P2)
	return y1, y2
}
