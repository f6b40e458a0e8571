// Package setup implements Setup, the first of the five mercurial
// signature algorithms: generation of the public parameters shared by
// every key pair.
package setup

import (
	"io"

	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// New samples p1 ∈ G1 and p2 ∈ G2 uniformly and independently.
func New(p provider.Provider, rng io.Reader) (models.PublicParams, error) {
	p1, err := p.RandomG1(rng)
	if err != nil {
		return models.PublicParams{}, err
	}
	p2, err := p.RandomG2(rng)
	if err != nil {
		return models.PublicParams{}, err
	}
	return models.PublicParams{P1: p1, P2: p2}, nil
}

// Default returns the curve's canonical generators (P1, P2) instead of
// random ones. The scheme's security does not depend on using a
// distinguished generator, but deterministic parameters are convenient
// for tests and for applications that want reproducible fixtures.
func Default(p provider.Provider) models.PublicParams {
	return models.PublicParams{
		P1: p.G1Generator(),
		P2: p.G2Generator(),
	}
}
