package setup

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairingcrypto/mercurial-signature/provider"
)

func TestNewProducesNonIdentityGenerators(t *testing.T) {
	p := provider.BLS12381{}
	pp, err := New(p, rand.Reader)
	require.NoError(t, err, "New should not error")

	assert.False(t, p.G1IsIdentity(pp.P1), "P1 should not be the identity")
	assert.False(t, p.G2IsIdentity(pp.P2), "P2 should not be the identity")
}

func TestNewIsRandomizedAcrossCalls(t *testing.T) {
	p := provider.BLS12381{}
	first, err := New(p, rand.Reader)
	require.NoError(t, err)
	second, err := New(p, rand.Reader)
	require.NoError(t, err)

	assert.False(t, p.G1Equal(first.P1, second.P1), "two calls to New should not produce the same P1")
}

func TestDefaultReturnsCanonicalGenerators(t *testing.T) {
	p := provider.BLS12381{}
	pp := Default(p)

	assert.True(t, p.G1Equal(pp.P1, p.G1Generator()), "Default's P1 should be the canonical generator")
	assert.True(t, p.G2Equal(pp.P2, p.G2Generator()), "Default's P2 should be the canonical generator")
}
