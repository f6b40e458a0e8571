package serialize

import (
	"crypto/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairingcrypto/mercurial-signature/extension"
	"github.com/pairingcrypto/mercurial-signature/keygen"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
	"github.com/pairingcrypto/mercurial-signature/setup"
	"github.com/pairingcrypto/mercurial-signature/sign"
)

// TestMarshalSignatureIsDeterministic checks that encoding the same
// signature value twice produces byte-identical output, using cmp for a
// readable diff on failure rather than a bare byte comparison.
func TestMarshalSignatureIsDeterministic(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	_, sk, err := keygen.KeyGen(p, rand.Reader, pp, 2)
	require.NoError(t, err)

	message := []provider.G1{p.G1Generator()}
	sig, err := sign.Sign(p, rand.Reader, sk, pp, message)
	require.NoError(t, err)

	first := MarshalSignature(p, sig)
	second := MarshalSignature(p, sig)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("encoding the same signature twice should be byte-identical (-first +second):\n%s", diff)
	}
}

func TestPublicParamsRoundTrip(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)

	data := MarshalPublicParams(p, pp)
	got, err := UnmarshalPublicParams(p, data)
	require.NoError(t, err)

	assert.True(t, p.G1Equal(pp.P1, got.P1))
	assert.True(t, p.G2Equal(pp.P2, got.P2))
}

func TestUnmarshalPublicParamsRejectsIdentity(t *testing.T) {
	p := provider.BLS12381{}
	bad := models.PublicParams{P1: p.G1Identity(), P2: p.G2Generator()}
	data := MarshalPublicParams(p, bad)

	_, err := UnmarshalPublicParams(p, data)
	assert.ErrorIs(t, err, models.ErrMalformedKey, "an identity P1 should be rejected as malformed")
}

func TestKeyPairRoundTrip(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	pk, sk, err := keygen.KeyGen(p, rand.Reader, pp, 4)
	require.NoError(t, err)

	pkData := MarshalPublicKey(p, pk)
	pkBack, err := UnmarshalPublicKey(p, pkData)
	require.NoError(t, err)
	for i := range pk.Bx {
		assert.True(t, p.G2Equal(pk.Bx[i], pkBack.Bx[i]), "public key coordinate %d should round-trip", i)
	}

	skData := MarshalSecretKey(p, sk)
	skBack, err := UnmarshalSecretKey(p, skData)
	require.NoError(t, err)
	for i := range sk.X {
		assert.True(t, p.FrEqual(sk.X[i], skBack.X[i]), "secret key coordinate %d should round-trip", i)
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	_, sk, err := keygen.KeyGen(p, rand.Reader, pp, 2)
	require.NoError(t, err)

	message := []provider.G1{p.G1Generator()}
	sig, err := sign.Sign(p, rand.Reader, sk, pp, message)
	require.NoError(t, err)

	data := MarshalSignature(p, sig)
	got, err := UnmarshalSignature(p, data)
	require.NoError(t, err)

	assert.True(t, p.G1Equal(sig.Z, got.Z))
	assert.True(t, p.G1Equal(sig.Y1, got.Y1))
	assert.True(t, p.G2Equal(sig.Y2, got.Y2))
}

func TestVarMessageAndVarSignatureRoundTrip(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	_, sk, err := extension.KeyGenEx(p, rand.Reader, pp)
	require.NoError(t, err)

	g := p.G1Generator()
	m := make([]provider.Fr, 3)
	for i := range m {
		s, err := p.RandomNonZeroFr(rand.Reader)
		require.NoError(t, err)
		m[i] = s
	}
	message := extension.NewVarMessage(p, g, m)

	msgData := MarshalVarMessage(p, message)
	msgBack, err := UnmarshalVarMessage(p, msgData)
	require.NoError(t, err)
	assert.True(t, p.G1Equal(message.G, msgBack.G))
	for i := range message.U {
		assert.True(t, p.G1Equal(message.U[i], msgBack.U[i]), "VarMessage coordinate %d should round-trip", i)
	}

	sig, err := extension.VarSign(p, rand.Reader, sk, pp, message)
	require.NoError(t, err)

	sigData := MarshalVarSignature(p, sig)
	sigBack, err := UnmarshalVarSignature(p, sigData)
	require.NoError(t, err)
	assert.True(t, p.G1Equal(sig.H, sigBack.H))
	require.Len(t, sigBack.Sigs, len(sig.Sigs))
	for i := range sig.Sigs {
		assert.True(t, p.G1Equal(sig.Sigs[i].Z, sigBack.Sigs[i].Z), "VarSignature coordinate %d's z should round-trip", i)
	}
}

func TestUnmarshalSecretKeyRejectsTruncatedInput(t *testing.T) {
	p := provider.BLS12381{}
	pp := setup.Default(p)
	_, sk, err := keygen.KeyGen(p, rand.Reader, pp, 3)
	require.NoError(t, err)

	data := MarshalSecretKey(p, sk)
	_, err = UnmarshalSecretKey(p, data[:len(data)-1])
	assert.Error(t, err, "truncated secret key encoding should fail to unmarshal")
}
