// Package keygen implements KeyGen, the second mercurial signature
// algorithm: derivation of a (PublicKey, SecretKey) pair of a chosen
// length against a fixed set of PublicParams.
package keygen

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/pairingcrypto/mercurial-signature/internal/telemetry"
	"github.com/pairingcrypto/mercurial-signature/models"
	"github.com/pairingcrypto/mercurial-signature/provider"
)

// KeyGen samples x1, ..., xl uniformly from Fr and computes bxi = xi *
// p2 for each. length must be at least 1.
func KeyGen(p provider.Provider, rng io.Reader, pp models.PublicParams, length int) (models.PublicKey, models.SecretKey, error) {
	telemetry.Debug().Int("length", length).Msg("keygen: start")
	if length < 1 {
		return models.PublicKey{}, models.SecretKey{}, models.ErrInvalidLength
	}

	x := make([]provider.Fr, length)
	bx := make([]provider.G2, length)
	for i := 0; i < length; i++ {
		xi, err := p.RandomFr(rng)
		if err != nil {
			return models.PublicKey{}, models.SecretKey{}, fmt.Errorf("keygen: failed to sample x_%d: %w", i, err)
		}
		x[i] = xi
		bx[i] = p.G2ScalarMul(xi, pp.P2)
	}

	return models.PublicKey{Bx: bx}, models.SecretKey{X: x}, nil
}

// KeyGenBatch generates n independent key pairs concurrently, one
// goroutine per pair. The caller's rng is read sequentially (not from goroutines)
// to seed one private io.Reader per pair from 32 raw bytes each, so
// no single io.Reader is ever touched from more than one goroutine.
func KeyGenBatch(p provider.Provider, rng io.Reader, pp models.PublicParams, length, n int) ([]models.PublicKey, []models.SecretKey, error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("keygen: batch size must be >= 0")
	}

	seeds := make([]io.Reader, n)
	for i := 0; i < n; i++ {
		seed, err := newSeededReader(rng)
		if err != nil {
			return nil, nil, fmt.Errorf("keygen: failed to seed batch member %d: %w", i, err)
		}
		seeds[i] = seed
	}

	pks := make([]models.PublicKey, n)
	sks := make([]models.SecretKey, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pk, sk, err := KeyGen(p, seeds[i], pp, length)
			if err != nil {
				errs[i] = fmt.Errorf("keygen: batch member %d: %w", i, err)
				return
			}
			pks[i] = pk
			sks[i] = sk
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return pks, sks, nil
}

// seedReader is a deterministic byte stream derived from a single read
// of the caller's rng, so each batch member's goroutine owns a private
// source of randomness.
type seedReader struct {
	seed    [32]byte
	counter uint64
}

func newSeededReader(rng io.Reader) (io.Reader, error) {
	var s seedReader
	if _, err := io.ReadFull(rng, s.seed[:]); err != nil {
		return nil, err
	}
	return &s, nil
}

// Read expands the seed into an arbitrary-length stream by hashing the
// seed concatenated with a monotonic counter, one sha256 block at a
// time; this is a fixed-output-size KDF-style expansion, not meant to
// be cryptographically independent of the parent rng, only private to
// this goroutine.
func (s *seedReader) Read(buf []byte) (int, error) {
	written := 0
	for written < len(buf) {
		var counterBytes [8]byte
		binary.BigEndian.PutUint64(counterBytes[:], s.counter)
		s.counter++

		block := sha256.Sum256(append(s.seed[:], counterBytes[:]...))
		written += copy(buf[written:], block[:])
	}
	return written, nil
}
