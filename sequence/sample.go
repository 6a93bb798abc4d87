package sequence

// sparseSampleRatio is the population to sample size ratio above which SampleN
// tracks displaced positions in a map instead of copying the whole population.
const sparseSampleRatio = 8

// Sample returns one element of s picked uniformly at random.
// The returned bool is false if s is empty, in which case rng is not used.
// A single element is returned without drawing from rng.
//
// It returns:
//   - (zero, false, nil) if s is empty
//   - (zero, false, error) if rng fails
//   - (element, true, nil) otherwise
func Sample[S ~[]E, E any](s S, rng Source) (E, bool, error) {
	var zero E
	switch len(s) {
	case 0:
		return zero, false, nil
	case 1:
		return s[0], true, nil
	}
	j, err := drawIndex(rng, len(s))
	if err != nil {
		return zero, false, err
	}
	return s[j], true, nil
}

// SampleN picks min(k, len(s)) elements of s uniformly at random without replacement
// and returns them in random order in a newly allocated slice. Elements are distinct
// by position, not necessarily by value: no duplicate is introduced, even when k
// is larger than len(s). s is not modified.
//
// It implements the first min(k, len(s)) steps of the Fisher-Yates shuffle, so that
// each of the n!/(n-k)! ordered samples is equally likely given a uniform rng.
// When the sample is small compared to s, only the displaced positions are tracked
// and s is not copied; both strategies draw the same randoms and return the same sample.
//
// It returns:
//   - (nil, InvalidArgumentError) if k is negative, rng is then not used
//   - (nil, error) if rng fails
//   - (sample, nil) otherwise, an empty slice if k or len(s) is zero
func SampleN[S ~[]E, E any](s S, k int, rng Source) (S, error) {
	if k < 0 {
		return nil, NewInvalidArgumentErrorf("sample size cannot be negative, got %d", k)
	}
	n := len(s)
	m := k
	if m > n {
		m = n
	}
	if m == 0 {
		return make(S, 0), nil
	}
	if m < n/sparseSampleRatio {
		return sampleSparse(s, m, rng)
	}

	working := make(S, n)
	copy(working, s)
	if _, err := Samples(Slice[E](working), m, rng); err != nil {
		return nil, err
	}
	return working[:m:m], nil
}

// Samples picks randomly min(k, n) elements out of the n elements of data and places
// them in random order at indices [0, min(k, n)), the swapping being implemented in place.
// While the picked elements are uniformly random, there is no guarantee about the
// order of the remaining elements; Shuffle should be used to permute the entire collection.
//
// It implements the first min(k, n) elements of the Fisher-Yates shuffle.
// O(1) space and O(k) time.
//
// It returns:
//   - (0, InvalidArgumentError) if k is negative, data and rng are then not used
//   - (0, error) if rng fails, data is then a permutation of its input
//   - (min(k, n), nil) otherwise
func Samples(data Interface, k int, rng Source) (int, error) {
	if k < 0 {
		return 0, NewInvalidArgumentErrorf("sample size cannot be negative, got %d", k)
	}
	n := data.Len()
	m := k
	if m > n {
		m = n
	}
	// the last position has a single candidate left, no draw is needed
	for i := 0; i < m && i < n-1; i++ {
		j, err := drawIndex(rng, n-i)
		if err != nil {
			return 0, err
		}
		data.Swap(i, i+j)
	}
	return m, nil
}

// sampleSparse runs the partial Fisher-Yates shuffle of Samples on a virtual copy of s.
// displaced maps a position to the index in s of the element currently at that position;
// positions missing from the map still hold their original element.
func sampleSparse[S ~[]E, E any](s S, m int, rng Source) (S, error) {
	n := len(s)
	displaced := make(map[int]int, m)
	at := func(p int) int {
		if v, ok := displaced[p]; ok {
			return v
		}
		return p
	}

	sample := make(S, m)
	for i := 0; i < m; i++ {
		r, err := drawIndex(rng, n-i)
		if err != nil {
			return nil, err
		}
		j := i + r
		picked := at(j)
		displaced[j] = at(i)
		delete(displaced, i)
		sample[i] = s[picked]
	}
	return sample, nil
}
