package provider

import (
	"errors"
	"io"

	bls "github.com/cloudflare/circl/ecc/bls12381"
)

// Fr, G1, G2 and Gt are the opaque algebraic values the core operates
// on. They are defined as aliases of the circl types so that callers who
// need to drop to the concrete curve library (benchmarking, custom
// serialization) are not forced through an extra wrapper allocation, but
// every exported function in this module still takes them only through
// the Provider interface in provider.go.
type (
	Fr = bls.Scalar
	G1 = bls.G1
	G2 = bls.G2
	Gt = bls.Gt
)

const domainSeparationTag = "mercurial-signature-v1"

// BLS12381 implements Provider over the BLS12-381 Type-III pairing as
// exposed by github.com/cloudflare/circl/ecc/bls12381. It carries no
// state; its methods are pure functions of their arguments.
type BLS12381 struct{}

var _ Provider = BLS12381{}

func (BLS12381) FrZero() Fr {
	var z Fr
	z.SetUint64(0)
	return z
}

func (BLS12381) FrOne() Fr {
	var o Fr
	o.SetUint64(1)
	return o
}

func (BLS12381) RandomFr(rng io.Reader) (Fr, error) {
	var s Fr
	if err := s.Random(rng); err != nil {
		return Fr{}, errors.New("provider: failed to sample random scalar")
	}
	return s, nil
}

func (p BLS12381) RandomNonZeroFr(rng io.Reader) (Fr, error) {
	zero := p.FrZero()
	for {
		s, err := p.RandomFr(rng)
		if err != nil {
			return Fr{}, err
		}
		if !p.FrEqual(s, zero) {
			return s, nil
		}
	}
}

func (BLS12381) FrAdd(a, b Fr) Fr {
	var r Fr
	r.Add(&a, &b)
	return r
}

func (BLS12381) FrMul(a, b Fr) Fr {
	var r Fr
	r.Mul(&a, &b)
	return r
}

func (BLS12381) FrInv(a Fr) Fr {
	var r Fr
	r.Inv(&a)
	return r
}

func (BLS12381) FrNeg(a Fr) Fr {
	var r Fr
	r.Set(&a)
	r.Neg()
	return r
}

func (BLS12381) FrEqual(a, b Fr) bool {
	return a.IsEqual(&b) == 1
}

func (BLS12381) G1Identity() G1 {
	var g G1
	g.SetIdentity()
	return g
}

func (BLS12381) G1Generator() G1 {
	return *bls.G1Generator()
}

func (BLS12381) RandomG1(rng io.Reader) (G1, error) {
	raw := make([]byte, 64)
	if _, err := io.ReadFull(rng, raw); err != nil {
		return G1{}, errors.New("provider: failed to sample random G1 element")
	}
	var g G1
	g.Hash(raw, []byte(domainSeparationTag))
	return g, nil
}

func (BLS12381) G1Add(a, b G1) G1 {
	var r G1
	r.Add(&a, &b)
	return r
}

func (BLS12381) G1Neg(a G1) G1 {
	var r G1
	r.Set(&a)
	r.Neg()
	return r
}

func (BLS12381) G1ScalarMul(s Fr, a G1) G1 {
	var r G1
	r.ScalarMult(&s, &a)
	return r
}

func (BLS12381) G1Equal(a, b G1) bool {
	return a.IsEqual(&b)
}

func (BLS12381) G1IsIdentity(a G1) bool {
	return a.IsIdentity()
}

func (BLS12381) G2Identity() G2 {
	var g G2
	g.SetIdentity()
	return g
}

func (BLS12381) G2Generator() G2 {
	return *bls.G2Generator()
}

func (BLS12381) RandomG2(rng io.Reader) (G2, error) {
	raw := make([]byte, 64)
	if _, err := io.ReadFull(rng, raw); err != nil {
		return G2{}, errors.New("provider: failed to sample random G2 element")
	}
	var g G2
	g.Hash(raw, []byte(domainSeparationTag))
	return g, nil
}

func (BLS12381) G2Add(a, b G2) G2 {
	var r G2
	r.Add(&a, &b)
	return r
}

func (BLS12381) G2ScalarMul(s Fr, a G2) G2 {
	var r G2
	r.ScalarMult(&s, &a)
	return r
}

func (BLS12381) G2Equal(a, b G2) bool {
	return a.IsEqual(&b)
}

func (BLS12381) G2IsIdentity(a G2) bool {
	return a.IsIdentity()
}

func (BLS12381) Pair(a G1, b G2) Gt {
	return *bls.Pair(&a, &b)
}

// MultiPair has no access to circl's internal Miller-loop batching from
// outside the package, so it pays for n independent pairings and folds
// them with Gt.Mul. The interface leaves room for a provider built on a
// library that exposes a true multi-pairing to do better.
func (p BLS12381) MultiPair(as []G1, bs []G2) Gt {
	acc := new(bls.Gt)
	acc.SetIdentity()
	for i := range as {
		term := bls.Pair(&as[i], &bs[i])
		acc.Mul(acc, term)
	}
	return *acc
}

func (BLS12381) GtEqual(a, b Gt) bool {
	return a.IsEqual(&b)
}

func (BLS12381) MarshalFr(a Fr) []byte {
	return a.Bytes()
}

func (BLS12381) UnmarshalFr(data []byte) (Fr, error) {
	var s Fr
	if err := s.SetBytes(data); err != nil {
		return Fr{}, errors.New("provider: malformed scalar encoding")
	}
	return s, nil
}

func (BLS12381) MarshalG1(a G1) []byte {
	return a.Bytes()
}

func (BLS12381) UnmarshalG1(data []byte) (G1, error) {
	var g G1
	if err := g.SetBytes(data); err != nil {
		return G1{}, errors.New("provider: malformed G1 point encoding")
	}
	return g, nil
}

func (BLS12381) MarshalG2(a G2) []byte {
	return a.Bytes()
}

func (BLS12381) UnmarshalG2(data []byte) (G2, error) {
	var g G2
	if err := g.SetBytes(data); err != nil {
		return G2{}, errors.New("provider: malformed G2 point encoding")
	}
	return g, nil
}

func (BLS12381) MarshalGt(a Gt) []byte {
	data, _ := a.MarshalBinary()
	return data
}

func (BLS12381) UnmarshalGt(data []byte) (Gt, error) {
	var g Gt
	if err := g.UnmarshalBinary(data); err != nil {
		return Gt{}, errors.New("provider: malformed Gt element encoding")
	}
	return g, nil
}
