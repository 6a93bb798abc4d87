// Package sequence implements random and order-statistic algorithms over
// ordered, indexable and mutable sequences: uniform shuffling, sampling without
// replacement and min/max extraction with a reduced number of comparisons.
//
// The package holds no state. Randomness is always supplied by the caller
// through a Source, so that deterministic generators can be injected (for
// instance `flow-seq/random`) and the same inputs with the same seed produce
// the same outputs. A Source is not required to be safe for concurrent use;
// coordinating concurrent access to a shared Source is the caller's responsibility.
package sequence

import "fmt"

// Source provides uniformly distributed bounded integers.
type Source interface {
	// UintN returns a uniformly distributed random number in [0, n).
	// The functions of this package never call UintN with n == 0.
	// A non-nil error means the source could not produce a value; it is
	// returned to the caller of the sequence operation.
	UintN(n uint64) (uint64, error)
}

// Interface is a collection whose elements can be enumerated by an integer
// index and swapped in place. It is similar to sort.Interface.
type Interface interface {
	// Len is the number of elements in the collection.
	Len() int
	// Swap swaps the elements with indexes i and j.
	Swap(i, j int)
}

// Slice adapts a slice to Interface.
type Slice[E any] []E

func (s Slice[E]) Len() int      { return len(s) }
func (s Slice[E]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// drawIndex draws a random index in [0, bound) from rng.
// bound has to be strictly positive.
//
// It returns:
//   - (0, error) if rng fails or returns a value outside [0, bound)
//   - (index, nil) otherwise
func drawIndex(rng Source, bound int) (int, error) {
	r, err := rng.UintN(uint64(bound))
	if err != nil {
		return 0, fmt.Errorf("random source failed to draw an index in [0, %d): %w", bound, err)
	}
	if r >= uint64(bound) {
		return 0, fmt.Errorf("%w: got %d, bound %d", ErrSourceOutOfRange, r, bound)
	}
	return int(r), nil
}
