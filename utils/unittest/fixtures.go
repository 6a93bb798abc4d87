package unittest

import (
	crand "crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-seq/random"
)

// SeedFixture returns a seed for a Chacha20 generator, read from the system RNG.
func SeedFixture(t testing.TB) []byte {
	seed := make([]byte, random.Chacha20SeedLen)
	_, err := crand.Read(seed)
	require.NoError(t, err)
	return seed
}

// FixedSeedFixture returns the same Chacha20 seed at each call, for reproducible tests.
func FixedSeedFixture() []byte {
	seed := make([]byte, random.Chacha20SeedLen)
	seed[0] = 45
	return seed
}

// PRGFixture returns a Chacha20 generator seeded with seed and an empty customizer.
func PRGFixture(t testing.TB, seed []byte) *random.Chacha20 {
	rng, err := random.NewChacha20(seed, nil)
	require.NoError(t, err)
	return rng
}

// IntRangeFixture returns the slice [0, 1, ..., n-1].
func IntRangeFixture(n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	return a
}
