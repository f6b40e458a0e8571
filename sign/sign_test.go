package sign

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairingcrypto/mercurial-signature/keygen"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
	"github.com/pairingcrypto/mercurial-signature/setup"
)

func TestSignRejectsMessageLongerThanKey(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	_, sk, err := keygen.KeyGen(p, rand.Reader, pp, 2)
	require.NoError(t, err)

	message := make([]provider.G1, 3)
	for i := range message {
		g, err := p.RandomG1(rand.Reader)
		require.NoError(t, err)
		message[i] = g
	}

	_, err = Sign(p, rand.Reader, sk, pp, message)
	assert.ErrorIs(t, err, models.ErrMessageTooLong, "Sign should reject a message longer than the key")
}

func TestSignSatisfiesYConsistency(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	_, sk, err := keygen.KeyGen(p, rand.Reader, pp, 3)
	require.NoError(t, err)

	message := []provider.G1{p.G1Generator()}
	sig, err := Sign(p, rand.Reader, sk, pp, message)
	require.NoError(t, err, "Sign should not error")

	lhs := p.Pair(sig.Y1, pp.P2)
	rhs := p.Pair(pp.P1, sig.Y2)
	assert.True(t, p.GtEqual(lhs, rhs), "e(y1, p2) should equal e(p1, y2)")
}

func TestSignIsRandomizedAcrossCalls(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	_, sk, err := keygen.KeyGen(p, rand.Reader, pp, 2)
	require.NoError(t, err)

	message := []provider.G1{p.G1Generator()}
	first, err := Sign(p, rand.Reader, sk, pp, message)
	require.NoError(t, err)
	second, err := Sign(p, rand.Reader, sk, pp, message)
	require.NoError(t, err)

	assert.False(t, p.G1Equal(first.Z, second.Z), "two signatures on the same message should differ (fresh y per call)")
}
