package models

import "errors"

// Error kinds surfaced by the core. Verify and VarVerify never return an
// error of any kind — an algebraic mismatch is reported as a plain
// false, per the scheme's failure semantics.
var (
	// ErrInvalidLength is returned by KeyGen/KeyGenBatch when asked for
	// a key of length zero.
	ErrInvalidLength = errors.New("mercurial: length parameter must be >= 1")

	// ErrMessageTooLong is returned by Sign (and VarSign's underlying
	// base signs) when the message vector is longer than the signing
	// key. It is a programming error on the caller's part, signalled
	// distinctly rather than panicking.
	ErrMessageTooLong = errors.New("mercurial: message longer than key")

	// ErrMalformedKey is returned by deserialization when a decoded
	// point is the identity element where the protocol requires
	// non-identity (PublicParams.P1, PublicParams.P2).
	ErrMalformedKey = errors.New("mercurial: malformed key or parameter")
)
