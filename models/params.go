// Package models provides the algebraic value types shared by every
// layer of the mercurial signature core: public parameters, key pairs
// and signatures. The variable-length-message types live in package
// extension.
//
// Every type here is a plain value with no pointers between entities.
// Equivalence-class operations (ConvertKey, ConvertSig,
// ChangeRepresentation and their Var* counterparts) live in sibling
// packages and mutate a caller-owned copy in place; they never alias.
package models

import "github.com/pairingcrypto/mercurial-signature/provider"

// PublicParams holds the two generators p1 ∈ G1, p2 ∈ G2 shared by every
// key pair derived from them. Both must be non-identity for the lifetime
// of the parameters.
type PublicParams struct {
	P1 provider.G1
	P2 provider.G2
}
