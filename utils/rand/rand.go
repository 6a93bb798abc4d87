// Package rand is a wrapper around `crypto/rand` that uses the system RNG underneath
// to extract entropy.
//
// It provides the system Source used by the sequence algorithms when the caller does
// not need reproducible outputs. This package does not implement any deterministic
// RNG (Pseudo-RNG) based on user input seeds. For the deterministic use-cases please
// use `flow-seq/random`.
//
// Functions in this package may return an error if the underlying reader fails
// to provide new randoms. When that happens, this package considers it an irrecoverable exception.
package rand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/onflow/flow-seq/sequence"
)

// Source draws randoms from an entropy reader.
// A Source is safe for concurrent use if its reader is.
type Source struct {
	reader io.Reader
}

var _ sequence.Source = (*Source)(nil)

// NewSource returns a Source reading its entropy from r.
func NewSource(r io.Reader) *Source {
	return &Source{reader: r}
}

// Default returns a Source backed by the system RNG of `crypto/rand`.
func Default() *Source {
	return NewSource(rand.Reader)
}

// Uint64 returns a random uint64.
//
// It returns:
//   - (0, exception) if the reader fails to provide entropy which is likely a result of a system error.
//   - (random, nil) otherwise
func (s *Source) Uint64() (uint64, error) {
	// allocate a new memory at each call. Another possibility
	// is to use a field but that would make the source non thread safe
	buffer := make([]byte, 8)
	if _, err := io.ReadFull(s.reader, buffer); err != nil {
		return 0, fmt.Errorf("entropy read failed: %w", err)
	}
	return binary.LittleEndian.Uint64(buffer), nil
}

// UintN returns a random uint64 strictly less than `n`.
// `n` has to be a strictly positive integer.
//
// For a uniform output, the function loops till a sample of the bit size of `n-1`
// is less or equal to `n-1`. Each loop ends with a probability higher than 1/2.
//
// It returns:
//   - (0, exception) if `n==0`
//   - (0, exception) if the reader fails to provide entropy which is likely a result of a system error.
//   - (random, nil) otherwise
func (s *Source) UintN(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("n should be strictly positive, got %d", n)
	}
	// the max returned random is n-1
	max := n - 1
	if max == 0 {
		return 0, nil
	}
	bitSize := bits.Len64(max)
	size := (bitSize + 7) / 8
	mask := uint64(1)<<bitSize - 1

	buffer := make([]byte, 8)
	for {
		if _, err := io.ReadFull(s.reader, buffer[:size]); err != nil {
			return 0, fmt.Errorf("entropy read failed: %w", err)
		}
		random := binary.LittleEndian.Uint64(buffer) & mask
		if random <= max {
			return random, nil
		}
	}
}

// Uint64 returns a random uint64 from the system RNG.
func Uint64() (uint64, error) {
	return Default().Uint64()
}

// Uint64n returns a random uint64 strictly less than `n` from the system RNG.
// See Source.UintN.
func Uint64n(n uint64) (uint64, error) {
	return Default().UintN(n)
}

// Uint32n returns a random uint32 strictly less than `n` from the system RNG.
func Uint32n(n uint32) (uint32, error) {
	r, err := Uint64n(uint64(n))
	return uint32(r), err
}

// Uintn returns a random uint strictly less than `n` from the system RNG.
func Uintn(n uint) (uint, error) {
	r, err := Uint64n(uint64(n))
	return uint(r), err
}

// Shuffle permutes a data structure in place based on the provided `swap` function,
// using the system RNG. It is not deterministic.
//
// It returns:
//   - (exception) if crypto/rand fails to provide entropy which is likely a result of a system error.
//   - (nil) otherwise
func Shuffle(n uint, swap func(i, j uint)) error {
	return sequence.Shuffle(uintSwapper{n: n, swap: swap}, Default())
}

// Samples picks randomly `m` elements out of `n` elements in a data structure
// and places them in random order at indices [0,m-1] using the system RNG,
// the swapping being implemented in place. `m` has to be less or equal to `n`.
//
// It returns:
//   - (exception) if `n < m`
//   - (exception) if crypto/rand fails to provide entropy which is likely a result of a system error.
//   - (nil) otherwise
func Samples(n uint, m uint, swap func(i, j uint)) error {
	if n < m {
		return fmt.Errorf("sample size (%d) cannot be larger than entire population (%d)", m, n)
	}
	_, err := sequence.Samples(uintSwapper{n: n, swap: swap}, int(m), Default())
	return err
}

type uintSwapper struct {
	n    uint
	swap func(i, j uint)
}

func (s uintSwapper) Len() int      { return int(s.n) }
func (s uintSwapper) Swap(i, j int) { s.swap(uint(i), uint(j)) }
