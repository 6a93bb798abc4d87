// Package random implements deterministic pseudo-random generators (PRG) seeded
// by the caller. Generators of this package satisfy sequence.Source, so that they
// can drive the shuffling and sampling algorithms of `flow-seq/sequence` with
// reproducible outputs.
//
// Generators are not thread safe. Use one generator per goroutine.
package random

import (
	"encoding/binary"
	"math/bits"

	"github.com/onflow/flow-seq/sequence"
)

// Rand is a pseudo random number generator
type Rand interface {
	// Read fills the input slice with random bytes.
	Read([]byte)

	// UintN returns a random number between 0 and N (exclusive).
	// The returned error is non-nil if N is zero.
	UintN(uint64) (uint64, error)

	// Permutation returns a permutation of the set [0,n-1]
	// the theoretical output space grows very fast with (!n) so that input (n) should be chosen carefully
	// to make sure the function output space covers a big chunk of the theoretical outputs.
	// The returned error is non-nil if the parameter is a negative integer.
	Permutation(n int) ([]int, error)

	// SubPermutation returns the m first elements of a permutation of [0,n-1]
	// the theoretical output space can be large (n!/(n-m)!) so that the inputs should be chosen carefully
	// to make sure the function output space covers a big chunk of the theoretical outputs.
	// The returned error is non-nil if any of the parameters is a negative integer or if m > n.
	SubPermutation(n int, m int) ([]int, error)

	// Shuffle permutes an ordered data structure of an arbitrary type in place. The main use-case is
	// permuting slice or array elements. (n) is the size of the data structure.
	// The returned error is non-nil if n is a negative integer.
	Shuffle(n int, swap func(i, j int)) error

	// Samples picks (m) random ordered elements of a data structure of an arbitrary type of total size (n). The (m) elements are placed
	// in the indices 0 to (m-1) with in place swapping. The data structure ends up being a permutation of the initial (n) elements.
	// While the sampling of the (m) elements is uniformly random, there is no guarantee about the uniformity of the permutation of
	// the (n) elements. The function Shuffle should be used in case the entire (n) elements need to be shuffled.
	// The returned error is non-nil if any of the parameters is a negative integer or if m > n.
	Samples(n int, m int, swap func(i, j int)) error

	// State returns the internal state of the random generator.
	// The internal state can be used as a seed input for the Restore
	// function of the implementation to restore an identical PRG.
	State() []byte
}

var _ sequence.Source = (Rand)(nil)

// randCore is PRG providing the core Read function of a PRG.
// All other Rand methods use the core Read method.
//
// In order to add a new Rand implementation,
// it should be enough to implement randCore.
type randCore interface {
	// Read fills the input slice with random bytes.
	Read([]byte)
}

// genericPRG implements all the Rand methods using the embedded randCore method.
// All implementations of the Rand interface should embed the genericPRG struct.
type genericPRG struct {
	randCore
}

// UintN returns an uint64 pseudo-random number in [0,n-1],
// using `p` as an entropy source.
//
// Reducing a 64 bits random modulo n does not give a uniform output, the
// function instead draws the bit size of n-1 until the sample is less than n.
// Each loop ends with a probability higher than 1/2.
func (p *genericPRG) UintN(n uint64) (uint64, error) {
	if n == 0 {
		return 0, NewInvalidInputsErrorf("n should be strictly positive, got %d", n)
	}
	max := n - 1
	if max == 0 {
		return 0, nil
	}
	bitSize := bits.Len64(max)
	byteSize := (bitSize + 7) / 8
	mask := uint64(1)<<bitSize - 1

	bytes := make([]byte, 8)
	for {
		p.Read(bytes[:byteSize])
		random := binary.LittleEndian.Uint64(bytes) & mask
		if random <= max {
			return random, nil
		}
	}
}

// Permutation returns a permutation of the set [0,n-1].
// It shuffles the identity permutation with the Fisher-Yates Shuffle using `p` as a random source.
//
// O(n) space and O(n) time.
func (p *genericPRG) Permutation(n int) ([]int, error) {
	if n < 0 {
		return nil, NewInvalidInputsErrorf("population size cannot be negative")
	}
	items := identity(n)
	if err := sequence.ShuffleSlice(items, p); err != nil {
		return nil, err
	}
	return items, nil
}

// SubPermutation returns the `m` first elements of a permutation of [0,n-1].
//
// It implements the first `m` steps of the Fisher-Yates Shuffle using `p` as a source of randoms.
//
// O(n) space and O(m) time
func (p *genericPRG) SubPermutation(n int, m int) ([]int, error) {
	if m < 0 {
		return nil, NewInvalidInputsErrorf("sample size cannot be negative")
	}
	if n < m {
		return nil, NewInvalidInputsErrorf("sample size (%d) cannot be larger than entire population (%d)", m, n)
	}
	items := identity(n)
	if _, err := sequence.Samples(sequence.Slice[int](items), m, p); err != nil {
		return nil, err
	}
	return items[:m], nil
}

// Shuffle permutes the given data structure in place.
//
// It implements Fisher-Yates Shuffle using `p` as a source of randoms.
//
// O(1) space and O(n) time
func (p *genericPRG) Shuffle(n int, swap func(i, j int)) error {
	if n < 0 {
		return NewInvalidInputsErrorf("population size cannot be negative")
	}
	return sequence.Shuffle(swapper{n: n, swap: swap}, p)
}

// Samples picks randomly m elements out of n elements and places them
// in random order at indices [0,m-1], the swapping being implemented in place.
//
// It implements the first (m) elements of Fisher-Yates Shuffle using `p` as a source of randoms.
//
// O(1) space and O(m) time
func (p *genericPRG) Samples(n int, m int, swap func(i, j int)) error {
	if m < 0 || n < 0 {
		return NewInvalidInputsErrorf("inputs cannot be negative")
	}
	if n < m {
		return NewInvalidInputsErrorf("sample size (%d) cannot be larger than entire population (%d)", m, n)
	}
	_, err := sequence.Samples(swapper{n: n, swap: swap}, m, p)
	return err
}

// swapper adapts a size and a swap function to sequence.Interface
type swapper struct {
	n    int
	swap func(i, j int)
}

func (s swapper) Len() int      { return s.n }
func (s swapper) Swap(i, j int) { s.swap(i, j) }

func identity(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}
