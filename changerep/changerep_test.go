package changerep

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairingcrypto/mercurial-signature/keygen"
	"github.com/pairingcrypto/mercurial-signature/provider"
	"github.com/pairingcrypto/mercurial-signature/setup"
	"github.com/pairingcrypto/mercurial-signature/sign"
	"github.com/pairingcrypto/mercurial-signature/verify"
)

func TestChangeRepresentationProducesVerifiableSignature(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	pk, sk, err := keygen.KeyGen(p, rand.Reader, pp, 3)
	require.NoError(t, err)

	message := make([]provider.G1, 3)
	for i := range message {
		g, err := p.RandomG1(rand.Reader)
		require.NoError(t, err)
		message[i] = g
	}
	sig, err := sign.Sign(p, rand.Reader, sk, pp, message)
	require.NoError(t, err)
	require.True(t, verify.Verify(p, pk, pp, message, sig))

	u, err := p.RandomNonZeroFr(rand.Reader)
	require.NoError(t, err)
	require.NoError(t, ChangeRepresentation(p, rand.Reader, message, &sig, u))

	assert.True(t, verify.Verify(p, pk, pp, message, sig), "u*M should verify under the same key as the rescaled signature")
}

func TestChangeRepresentationScalesEveryCoordinate(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	_, sk, err := keygen.KeyGen(p, rand.Reader, pp, 3)
	require.NoError(t, err)

	original := make([]provider.G1, 3)
	for i := range original {
		g, err := p.RandomG1(rand.Reader)
		require.NoError(t, err)
		original[i] = g
	}
	message := append([]provider.G1(nil), original...)
	sig, err := sign.Sign(p, rand.Reader, sk, pp, message)
	require.NoError(t, err)

	u, err := p.RandomNonZeroFr(rand.Reader)
	require.NoError(t, err)
	require.NoError(t, ChangeRepresentation(p, rand.Reader, message, &sig, u))

	for i, mi := range original {
		want := p.G1ScalarMul(u, mi)
		assert.True(t, p.G1Equal(want, message[i]), "message[%d] should equal u*original[%d]", i, i)
	}
}

func TestChangeRepresentationRejectsTamperedResult(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	pk, sk, err := keygen.KeyGen(p, rand.Reader, pp, 2)
	require.NoError(t, err)

	message := []provider.G1{p.G1Generator(), p.G1Generator()}
	sig, err := sign.Sign(p, rand.Reader, sk, pp, message)
	require.NoError(t, err)

	u, err := p.RandomNonZeroFr(rand.Reader)
	require.NoError(t, err)
	require.NoError(t, ChangeRepresentation(p, rand.Reader, message, &sig, u))

	message[0] = p.G1Add(message[0], p.G1Generator())
	assert.False(t, verify.Verify(p, pk, pp, message, sig), "tampering with the rescaled message should break verification")
}
