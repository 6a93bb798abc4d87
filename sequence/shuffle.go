package sequence

// Shuffle permutes data in place uniformly at random.
//
// It implements the backward Fisher-Yates shuffle using rng as the source of randoms:
// each of the n! permutations is equally likely given a uniform rng, regardless of
// the element values. Collections of length 0 or 1 are left untouched without
// drawing from rng.
// O(1) space and O(n) time.
//
// It returns:
//   - (error) if rng fails, the collection is then a partially shuffled permutation of its input
//   - (nil) otherwise
func Shuffle(data Interface, rng Source) error {
	for i := data.Len() - 1; i > 0; i-- {
		j, err := drawIndex(rng, i+1)
		if err != nil {
			return err
		}
		data.Swap(i, j)
	}
	return nil
}

// ShuffleSlice permutes the elements of s in place uniformly at random.
// See Shuffle.
func ShuffleSlice[S ~[]E, E any](s S, rng Source) error {
	return Shuffle(Slice[E](s), rng)
}

// Shuffled returns a uniformly random permutation of s in a newly allocated slice.
// s is not modified. A nil s returns a nil slice.
//
// It returns:
//   - (nil, error) if rng fails
//   - (permutation, nil) otherwise
func Shuffled[S ~[]E, E any](s S, rng Source) (S, error) {
	if s == nil {
		return nil, nil
	}
	shuffled := make(S, len(s))
	copy(shuffled, s)
	if err := ShuffleSlice(shuffled, rng); err != nil {
		return nil, err
	}
	return shuffled, nil
}
