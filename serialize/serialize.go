// Package serialize provides canonical byte encodings for the public
// types in models and for extension's VarMessage and VarSignature;
// ExtPublicKey and ExtSecretKey have no encoding here. It is kept separate from the algebraic
// types themselves (models, extension) per the scheme's re-architecture
// guidance: serialization is a concern of its own, not interleaved with
// the group arithmetic.
//
// Layout (compressed point encoding throughout, length prefixes are a
// fixed-width uint32 big-endian):
//
//	PublicParams = p1 || p2
//	SecretKey    = len || x1 || ... || xlen
//	PublicKey    = len || bx1 || ... || bxlen
//	Signature    = z || y1 || y2
//	VarMessage   = g || len || u1 || ... || ulen
//	VarSignature = h || len || sig1 || ... || siglen
package serialize

import (
	"encoding/binary"
	"fmt"

	"github.com/pairingcrypto/mercurial-signature/extension"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

func putLength(n int) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(n))
	return buf[:]
}

func takeLength(data []byte) (int, []byte, error) {
	if len(data) < 4 {
		return 0, nil, fmt.Errorf("serialize: truncated length prefix")
	}
	return int(binary.BigEndian.Uint32(data[:4])), data[4:], nil
}

// MarshalPublicParams encodes pp as p1 || p2.
func MarshalPublicParams(p provider.Provider, pp models.PublicParams) []byte {
	out := p.MarshalG1(pp.P1)
	out = append(out, p.MarshalG2(pp.P2)...)
	return out
}

// UnmarshalPublicParams decodes the output of MarshalPublicParams.
func UnmarshalPublicParams(p provider.Provider, data []byte) (models.PublicParams, error) {
	g1Len := len(p.MarshalG1(p.G1Generator()))
	if len(data) < g1Len {
		return models.PublicParams{}, fmt.Errorf("serialize: truncated public params")
	}
	p1, err := p.UnmarshalG1(data[:g1Len])
	if err != nil {
		return models.PublicParams{}, err
	}
	p2, err := p.UnmarshalG2(data[g1Len:])
	if err != nil {
		return models.PublicParams{}, err
	}
	if p.G1IsIdentity(p1) || p.G2IsIdentity(p2) {
		return models.PublicParams{}, models.ErrMalformedKey
	}
	return models.PublicParams{P1: p1, P2: p2}, nil
}

// MarshalSecretKey encodes sk as len || x1 || ... || xlen.
func MarshalSecretKey(p provider.Provider, sk models.SecretKey) []byte {
	out := putLength(len(sk.X))
	for _, xi := range sk.X {
		out = append(out, p.MarshalFr(xi)...)
	}
	return out
}

// UnmarshalSecretKey decodes the output of MarshalSecretKey.
func UnmarshalSecretKey(p provider.Provider, data []byte) (models.SecretKey, error) {
	length, rest, err := takeLength(data)
	if err != nil {
		return models.SecretKey{}, err
	}
	frLen := len(p.MarshalFr(p.FrOne()))
	x := make([]provider.Fr, length)
	for i := 0; i < length; i++ {
		if len(rest) < frLen {
			return models.SecretKey{}, fmt.Errorf("serialize: truncated secret key at coordinate %d", i)
		}
		xi, err := p.UnmarshalFr(rest[:frLen])
		if err != nil {
			return models.SecretKey{}, err
		}
		x[i] = xi
		rest = rest[frLen:]
	}
	return models.SecretKey{X: x}, nil
}

// MarshalPublicKey encodes pk as len || bx1 || ... || bxlen.
func MarshalPublicKey(p provider.Provider, pk models.PublicKey) []byte {
	out := putLength(len(pk.Bx))
	for _, bxi := range pk.Bx {
		out = append(out, p.MarshalG2(bxi)...)
	}
	return out
}

// UnmarshalPublicKey decodes the output of MarshalPublicKey.
func UnmarshalPublicKey(p provider.Provider, data []byte) (models.PublicKey, error) {
	length, rest, err := takeLength(data)
	if err != nil {
		return models.PublicKey{}, err
	}
	g2Len := len(p.MarshalG2(p.G2Generator()))
	bx := make([]provider.G2, length)
	for i := 0; i < length; i++ {
		if len(rest) < g2Len {
			return models.PublicKey{}, fmt.Errorf("serialize: truncated public key at coordinate %d", i)
		}
		bxi, err := p.UnmarshalG2(rest[:g2Len])
		if err != nil {
			return models.PublicKey{}, err
		}
		bx[i] = bxi
		rest = rest[g2Len:]
	}
	return models.PublicKey{Bx: bx}, nil
}

// MarshalSignature encodes sig as z || y1 || y2.
func MarshalSignature(p provider.Provider, sig models.Signature) []byte {
	out := p.MarshalG1(sig.Z)
	out = append(out, p.MarshalG1(sig.Y1)...)
	out = append(out, p.MarshalG2(sig.Y2)...)
	return out
}

// UnmarshalSignature decodes the output of MarshalSignature.
func UnmarshalSignature(p provider.Provider, data []byte) (models.Signature, error) {
	g1Len := len(p.MarshalG1(p.G1Generator()))
	g2Len := len(p.MarshalG2(p.G2Generator()))
	if len(data) < 2*g1Len+g2Len {
		return models.Signature{}, fmt.Errorf("serialize: truncated signature")
	}
	z, err := p.UnmarshalG1(data[:g1Len])
	if err != nil {
		return models.Signature{}, err
	}
	y1, err := p.UnmarshalG1(data[g1Len : 2*g1Len])
	if err != nil {
		return models.Signature{}, err
	}
	y2, err := p.UnmarshalG2(data[2*g1Len : 2*g1Len+g2Len])
	if err != nil {
		return models.Signature{}, err
	}
	return models.Signature{Z: z, Y1: y1, Y2: y2}, nil
}

// MarshalVarMessage encodes vm as g || len || u1 || ... || ulen.
func MarshalVarMessage(p provider.Provider, vm extension.VarMessage) []byte {
	out := p.MarshalG1(vm.G)
	out = append(out, putLength(len(vm.U))...)
	for _, ui := range vm.U {
		out = append(out, p.MarshalG1(ui)...)
	}
	return out
}

// UnmarshalVarMessage decodes the output of MarshalVarMessage.
func UnmarshalVarMessage(p provider.Provider, data []byte) (extension.VarMessage, error) {
	g1Len := len(p.MarshalG1(p.G1Generator()))
	if len(data) < g1Len {
		return extension.VarMessage{}, fmt.Errorf("serialize: truncated var message")
	}
	g, err := p.UnmarshalG1(data[:g1Len])
	if err != nil {
		return extension.VarMessage{}, err
	}
	length, rest, err := takeLength(data[g1Len:])
	if err != nil {
		return extension.VarMessage{}, err
	}
	u := make([]provider.G1, length)
	for i := 0; i < length; i++ {
		if len(rest) < g1Len {
			return extension.VarMessage{}, fmt.Errorf("serialize: truncated var message at coordinate %d", i)
		}
		ui, err := p.UnmarshalG1(rest[:g1Len])
		if err != nil {
			return extension.VarMessage{}, err
		}
		u[i] = ui
		rest = rest[g1Len:]
	}
	return extension.VarMessage{G: g, U: u}, nil
}

// MarshalVarSignature encodes vs as h || len || sig1 || ... || siglen.
func MarshalVarSignature(p provider.Provider, vs extension.VarSignature) []byte {
	out := p.MarshalG1(vs.H)
	out = append(out, putLength(len(vs.Sigs))...)
	for _, sig := range vs.Sigs {
		out = append(out, MarshalSignature(p, sig)...)
	}
	return out
}

// UnmarshalVarSignature decodes the output of MarshalVarSignature.
func UnmarshalVarSignature(p provider.Provider, data []byte) (extension.VarSignature, error) {
	g1Len := len(p.MarshalG1(p.G1Generator()))
	if len(data) < g1Len {
		return extension.VarSignature{}, fmt.Errorf("serialize: truncated var signature")
	}
	h, err := p.UnmarshalG1(data[:g1Len])
	if err != nil {
		return extension.VarSignature{}, err
	}
	length, rest, err := takeLength(data[g1Len:])
	if err != nil {
		return extension.VarSignature{}, err
	}
	sigLen := len(MarshalSignature(p, models.Signature{}))
	sigs := make([]models.Signature, length)
	for i := 0; i < length; i++ {
		if len(rest) < sigLen {
			return extension.VarSignature{}, fmt.Errorf("serialize: truncated var signature at coordinate %d", i)
		}
		sig, err := UnmarshalSignature(p, rest[:sigLen])
		if err != nil {
			return extension.VarSignature{}, err
		}
		sigs[i] = sig
		rest = rest[sigLen:]
	}
	return extension.VarSignature{H: h, Sigs: sigs}, nil
}
