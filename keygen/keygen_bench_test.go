package keygen

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/pairingcrypto/mercurial-signature/provider"
	"github.com/pairingcrypto/mercurial-signature/setup"
)

func BenchmarkKeyGen(b *testing.B) {
	p := provider.BLS12381{}
	pp := setup.Default(p)

	for _, length := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("length=%d", length), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := KeyGen(p, rand.Reader, pp, length); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
