// Package extension implements the variable-length-message extension to
// the base mercurial signature scheme: a fixed length-5 base key signs,
// per message coordinate, a 5-tuple (g, i*g, n*g, h, ui), where h is a
// glue element binding all n coordinates into one VarSignature.
//
// The Bx6..Bx10 / X6..X10 fields on ExtPublicKey/ExtSecretKey are
// reserved for a zero-knowledge proof that h was computed honestly from
// the message and the extension's trapdoor; that proof is not
// implemented here; see VarSign's doc comment.
package extension

import (
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// ExtPublicKey is a base PublicKey of length 5, plus five extra G2
// elements reserved for the unimplemented glue-element proof.
type ExtPublicKey struct {
	PK   models.PublicKey
	Bx6  provider.G2
	Bx7  provider.G2
	Bx8  provider.G2
	Bx9  provider.G2
	Bx10 provider.G2
}

// ExtSecretKey is a base SecretKey of length 5, plus five trapdoor
// scalars: X7 = X6*x, X9 = X8*y1, X10 = X8*y2 for some x, y1, y2 sampled
// at KeyGenEx time. The trapdoor is recovered as x = X7/X6,
// y = (X9/X8)*(X10/X8).
type ExtSecretKey struct {
	SK  models.SecretKey
	X6  provider.Fr
	X7  provider.Fr
	X8  provider.Fr
	X9  provider.Fr
	X10 provider.Fr
}

// VarMessage is a variable-length message: a base element g and n
// derived elements ui = mi*g for scalars m1..mn.
type VarMessage struct {
	G provider.G1
	U []provider.G1
}

// NewVarMessage builds a VarMessage from a base element g and a slice
// of scalar coordinates, computing ui = mi*g for each.
func NewVarMessage(p provider.Provider, g provider.G1, m []provider.Fr) VarMessage {
	u := make([]provider.G1, len(m))
	for i, mi := range m {
		u[i] = p.G1ScalarMul(mi, g)
	}
	return VarMessage{G: g, U: u}
}

// Length returns n, the number of coordinates (excluding g).
func (vm VarMessage) Length() int {
	return len(vm.U)
}

// EncodedSize returns the byte size of vm's canonical encoding without
// retaining the encoding itself, so a caller can budget wire size ahead
// of an actual Marshal call.
func (vm VarMessage) EncodedSize(p provider.Provider) int {
	size := len(p.MarshalG1(vm.G)) + 4 // fixed-width uint32 length prefix
	for _, ui := range vm.U {
		size += len(p.MarshalG1(ui))
	}
	return size
}

// Randomize blinds the message by a scalar w: g <- w*g, ui <- w*ui. It
// is useful in an interactive signing protocol where a receiver hides
// the true message from the signer behind a random blind, later
// stripped out of the resulting signature by ChangeRepresentation with
// 1/w. Not otherwise used by VarSign/VarVerify.
func (vm *VarMessage) Randomize(p provider.Provider, w provider.Fr) {
	vm.G = p.G1ScalarMul(w, vm.G)
	for i, ui := range vm.U {
		vm.U[i] = p.G1ScalarMul(w, ui)
	}
}

// VarSignature is a signature on a VarMessage: one glue element h and
// one base Signature per message coordinate.
type VarSignature struct {
	H    provider.G1
	Sigs []models.Signature
}

// toTuples builds the n 5-tuples Mi = (g, i*g, n*g, h, ui) that the base
// scheme actually signs, one per message coordinate. i*g is built
// incrementally by repeated addition starting from g; n*g is the last
// element of that sequence. All n tuples share g, n*g, and h.
func toTuples(p provider.Provider, g provider.G1, u []provider.G1, h provider.G1) [][5]provider.G1 {
	n := len(u)
	igs := make([]provider.G1, n)
	gi := g
	for i := 0; i < n; i++ {
		igs[i] = gi
		gi = p.G1Add(gi, g)
	}
	ng := igs[n-1]

	tuples := make([][5]provider.G1, n)
	for i := 0; i < n; i++ {
		tuples[i] = [5]provider.G1{g, igs[i], ng, h, u[i]}
	}
	return tuples
}
