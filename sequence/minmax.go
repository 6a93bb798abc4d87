package sequence

import "golang.org/x/exp/constraints"

// MinMax returns the minimum and maximum elements of s in their natural order.
// Floating point NaNs are ordered before any other value.
// See MinMaxIndexFunc for the number of comparisons and the tie-breaking rules.
//
// It returns:
//   - (zero, zero, ErrEmptySequence) if s is empty
//   - (min, max, nil) otherwise
func MinMax[S ~[]E, E constraints.Ordered](s S) (E, E, error) {
	return MinMaxFunc(s, compareOrdered[E])
}

// MinMaxFunc returns the minimum and maximum elements of s according to cmp,
// which returns a negative number when a < b, a positive number when a > b
// and zero when a and b are equivalent. cmp must be a strict weak ordering,
// this is not verified.
// See MinMaxIndexFunc for the number of comparisons and the tie-breaking rules.
//
// It returns:
//   - (zero, zero, ErrEmptySequence) if s is empty
//   - (min, max, nil) otherwise
func MinMaxFunc[S ~[]E, E any](s S, cmp func(a, b E) int) (E, E, error) {
	minIdx, maxIdx, err := MinMaxIndexFunc(len(s), func(i, j int) int {
		return cmp(s[i], s[j])
	})
	if err != nil {
		var zero E
		return zero, zero, err
	}
	return s[minIdx], s[maxIdx], nil
}

// MinMaxIndexFunc returns the indices of the minimum and maximum elements of a
// sequence of n elements, compared by index with cmp.
//
// Elements are scanned in pairs: the two elements of a pair are compared with each
// other, then the smaller one against the running minimum and the larger one against
// the running maximum. This takes 3n/2 - 2 comparisons for an even n and 3(n-1)/2
// for an odd n, instead of the 2(n-1) of two separate scans.
// Among equivalent elements, the minimum is the first one and the maximum is the last one.
//
// It returns:
//   - (0, 0, ErrEmptySequence) if n is zero or negative
//   - (minIndex, maxIndex, nil) otherwise
func MinMaxIndexFunc(n int, cmp func(i, j int) int) (int, int, error) {
	if n <= 0 {
		return 0, 0, ErrEmptySequence
	}

	var minIdx, maxIdx, start int
	if n%2 == 1 {
		start = 1
	} else {
		minIdx, maxIdx = orderedPair(0, 1, cmp)
		start = 2
	}

	for i := start; i+1 < n; i += 2 {
		small, large := orderedPair(i, i+1, cmp)
		if cmp(small, minIdx) < 0 {
			minIdx = small
		}
		if cmp(large, maxIdx) >= 0 {
			maxIdx = large
		}
	}
	return minIdx, maxIdx, nil
}

// orderedPair returns (i, j) if element i is less or equivalent to element j,
// and (j, i) otherwise, using a single comparison. i must be smaller than j.
func orderedPair(i, j int, cmp func(i, j int) int) (int, int) {
	if cmp(i, j) <= 0 {
		return i, j
	}
	return j, i
}

func compareOrdered[E constraints.Ordered](a, b E) int {
	aNaN := isNaN(a)
	bNaN := isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// isNaN reports whether x is a NaN without requiring a math.IsNaN float64 conversion.
func isNaN[E constraints.Ordered](x E) bool {
	return x != x
}
