package sequence_test

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"pgregory.net/rapid"

	"github.com/onflow/flow-seq/random"
	"github.com/onflow/flow-seq/sequence"
	"github.com/onflow/flow-seq/sequence/mock"
	"github.com/onflow/flow-seq/utils/unittest"
)

// TestSampleN_Properties checks that SampleN returns min(k, n) elements of the input
// picked at distinct positions.
func TestSampleN_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.SliceOfN(rapid.Byte(), random.Chacha20SeedLen, random.Chacha20SeedLen).Draw(t, "seed")
		n := rapid.IntRange(0, 200).Draw(t, "n")
		k := rapid.IntRange(0, 250).Draw(t, "k")

		rng, err := random.NewChacha20(seed, nil)
		require.NoError(t, err)
		// positions as values, to track the originating position of each element
		list := unittest.IntRangeFixture(n)

		samples, err := sequence.SampleN(list, k, rng)
		require.NoError(t, err)

		expectedLen := k
		if n < k {
			expectedLen = n
		}
		require.Len(t, samples, expectedLen)
		require.Equal(t, unittest.IntRangeFixture(n), list, "input of SampleN was modified")

		has := make(map[int]struct{})
		for _, e := range samples {
			require.GreaterOrEqual(t, e, 0)
			require.Less(t, e, n)
			_, ok := has[e]
			require.False(t, ok, "duplicated position in the samples")
			has[e] = struct{}{}
		}
	})
}

// TestSampleN_Distribution is a very basic randomness test of the sampled subsets and of
// their ordering, for a dense and for a sparse sample.
func TestSampleN_Distribution(t *testing.T) {
	for _, subsetSize := range []int{5, 20} {
		t.Run(fmt.Sprintf("sample size %d", subsetSize), func(t *testing.T) {
			listSize := 100
			rng := unittest.PRGFixture(t, unittest.FixedSeedFixture())
			// statictics parameters
			sampleSize := 64768
			tolerance := 0.05
			// tests the subset sampling randomness
			samplingDistribution := make([]float64, listSize)
			// tests the subset ordering randomness (using a particular element testElement)
			orderingDistribution := make([]float64, subsetSize)
			testElement := rand.Intn(listSize)
			list := unittest.IntRangeFixture(listSize)

			for i := 0; i < sampleSize; i++ {
				samples, err := sequence.SampleN(list, subsetSize, rng)
				require.NoError(t, err)
				require.Len(t, samples, subsetSize)
				for j, e := range samples {
					samplingDistribution[e] += 1.0
					if e == testElement {
						orderingDistribution[j] += 1.0
					}
				}
			}
			stdev := stat.StdDev(samplingDistribution, nil)
			mean := stat.Mean(samplingDistribution, nil)
			assert.Greater(t, tolerance*mean, stdev, fmt.Sprintf("basic subset randomness test failed. stdev %v, mean %v", stdev, mean))
			stdev = stat.StdDev(orderingDistribution, nil)
			mean = stat.Mean(orderingDistribution, nil)
			assert.Greater(t, 2*tolerance*mean, stdev, fmt.Sprintf("basic ordering randomness test failed. stdev %v, mean %v", stdev, mean))
		})
	}
}

// TestSampleN_OrderedDraws checks that the 12 ordered samples of 2 elements out of 4
// are equally likely.
func TestSampleN_OrderedDraws(t *testing.T) {
	rng := unittest.PRGFixture(t, unittest.FixedSeedFixture())
	sampleSize := 60000
	list := []string{"a", "b", "c", "d"}

	counts := make(map[string]float64)
	for i := 0; i < sampleSize; i++ {
		samples, err := sequence.SampleN(list, 2, rng)
		require.NoError(t, err)
		counts[fmt.Sprint(samples)] += 1.0
	}
	require.Len(t, counts, 12)
	for draw, count := range counts {
		assert.InDelta(t, 1.0/12, count/float64(sampleSize), 0.01, "ordered sample %s", draw)
	}
}

// TestSampleN_SparseMatchesDense checks that the sparse strategy used for small samples
// returns the same elements as the in place partial shuffle for the same randoms.
func TestSampleN_SparseMatchesDense(t *testing.T) {
	seed := unittest.SeedFixture(t)
	listSize := 1000
	for _, k := range []int{1, 10, 100} {
		list := unittest.IntRangeFixture(listSize)

		samples, err := sequence.SampleN(list, k, unittest.PRGFixture(t, seed))
		require.NoError(t, err)

		working := unittest.IntRangeFixture(listSize)
		m, err := sequence.Samples(sequence.Slice[int](working), k, unittest.PRGFixture(t, seed))
		require.NoError(t, err)
		require.Equal(t, k, m)

		assert.Equal(t, working[:k], samples)
	}
}

func TestSampleN_EdgeCases(t *testing.T) {
	t.Run("zero sample size", func(t *testing.T) {
		// the mock fails the test on any call
		rng := mock.NewSource(t)
		samples, err := sequence.SampleN([]int{1, 2, 3}, 0, rng)
		require.NoError(t, err)
		assert.NotNil(t, samples)
		assert.Empty(t, samples)
	})

	t.Run("empty sequence", func(t *testing.T) {
		rng := mock.NewSource(t)
		for _, k := range []int{0, 1, 10} {
			samples, err := sequence.SampleN([]int{}, k, rng)
			require.NoError(t, err)
			assert.Empty(t, samples)

			samples, err = sequence.SampleN([]int(nil), k, rng)
			require.NoError(t, err)
			assert.Empty(t, samples)
		}
	})

	t.Run("negative sample size", func(t *testing.T) {
		rng := mock.NewSource(t)
		list := []int{1, 2, 3}
		samples, err := sequence.SampleN(list, -1, rng)
		require.Error(t, err)
		assert.True(t, sequence.IsInvalidArgumentError(err))
		assert.Nil(t, samples)
		assert.Equal(t, []int{1, 2, 3}, list)

		m, err := sequence.Samples(sequence.Slice[int](list), -3, rng)
		assert.True(t, sequence.IsInvalidArgumentError(err))
		assert.Zero(t, m)
		assert.Equal(t, []int{1, 2, 3}, list)
	})

	t.Run("sample size larger than the sequence", func(t *testing.T) {
		rng := unittest.PRGFixture(t, unittest.SeedFixture(t))
		// duplicated values are kept, no new duplicate is introduced
		list := []int{1, 1, 1, 2, 2, 3}
		samples, err := sequence.SampleN(list, 2*len(list), rng)
		require.NoError(t, err)
		require.Len(t, samples, len(list))
		sort.Ints(samples)
		assert.Equal(t, list, samples)
	})

	t.Run("single element", func(t *testing.T) {
		rng := mock.NewSource(t)
		samples, err := sequence.SampleN([]string{"x"}, 3, rng)
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, samples)
	})
}

func TestSampleN_SourceFailure(t *testing.T) {
	sourceErr := errors.New("entropy exhausted")
	// dense and sparse strategies
	for _, k := range []int{50, 2} {
		rng := mock.NewSource(t)
		rng.On("UintN", uint64(100)).Return(uint64(0), sourceErr).Once()

		samples, err := sequence.SampleN(unittest.IntRangeFixture(100), k, rng)
		require.ErrorIs(t, err, sourceErr)
		assert.Nil(t, samples)
	}
}

func TestSample(t *testing.T) {
	t.Run("empty sequence", func(t *testing.T) {
		rng := mock.NewSource(t)
		e, ok, err := sequence.Sample([]string{}, rng)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "", e)
	})

	t.Run("single element", func(t *testing.T) {
		rng := mock.NewSource(t)
		e, ok, err := sequence.Sample([]string{"x"}, rng)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "x", e)
	})

	t.Run("element of the sequence", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			seed := rapid.SliceOfN(rapid.Byte(), random.Chacha20SeedLen, random.Chacha20SeedLen).Draw(t, "seed")
			list := rapid.SliceOfN(rapid.String(), 1, 50).Draw(t, "list")
			rng, err := random.NewChacha20(seed, nil)
			require.NoError(t, err)

			e, ok, err := sequence.Sample(list, rng)
			require.NoError(t, err)
			require.True(t, ok)
			require.Contains(t, list, e)
		})
	})

	t.Run("same element as a sample of size one", func(t *testing.T) {
		seed := unittest.SeedFixture(t)
		list := unittest.IntRangeFixture(1000)

		e, ok, err := sequence.Sample(list, unittest.PRGFixture(t, seed))
		require.NoError(t, err)
		require.True(t, ok)
		samples, err := sequence.SampleN(list, 1, unittest.PRGFixture(t, seed))
		require.NoError(t, err)
		assert.Equal(t, []int{e}, samples)
	})

	t.Run("distribution", func(t *testing.T) {
		rng := unittest.PRGFixture(t, unittest.SeedFixture(t))
		sampleSize := 64768
		tolerance := 0.05
		listSize := 10
		distribution := make([]float64, listSize)
		list := unittest.IntRangeFixture(listSize)

		for i := 0; i < sampleSize; i++ {
			e, ok, err := sequence.Sample(list, rng)
			require.NoError(t, err)
			require.True(t, ok)
			distribution[e] += 1.0
		}
		stdev := stat.StdDev(distribution, nil)
		mean := stat.Mean(distribution, nil)
		assert.Greater(t, tolerance*mean, stdev, fmt.Sprintf("basic randomness test failed. stdev %v, mean %v", stdev, mean))
	})

	t.Run("source failure", func(t *testing.T) {
		sourceErr := errors.New("entropy exhausted")
		rng := mock.NewSource(t)
		rng.On("UintN", uint64(3)).Return(uint64(0), sourceErr).Once()

		_, ok, err := sequence.Sample([]int{1, 2, 3}, rng)
		require.ErrorIs(t, err, sourceErr)
		assert.False(t, ok)
	})
}

func TestSample_Deterministic(t *testing.T) {
	seed := unittest.SeedFixture(t)
	rng1 := unittest.PRGFixture(t, seed)
	rng2 := unittest.PRGFixture(t, seed)
	list := unittest.IntRangeFixture(64)

	for i := 0; i < 10; i++ {
		e1, _, err := sequence.Sample(list, rng1)
		require.NoError(t, err)
		e2, _, err := sequence.Sample(list, rng2)
		require.NoError(t, err)
		require.Equal(t, e1, e2)

		samples1, err := sequence.SampleN(list, 10, rng1)
		require.NoError(t, err)
		samples2, err := sequence.SampleN(list, 10, rng2)
		require.NoError(t, err)
		require.Equal(t, samples1, samples2)
	}
}

func TestSamples(t *testing.T) {
	rng := unittest.PRGFixture(t, unittest.SeedFixture(t))
	list := unittest.IntRangeFixture(10)

	m, err := sequence.Samples(sequence.Slice[int](list), 4, rng)
	require.NoError(t, err)
	assert.Equal(t, 4, m)

	m, err = sequence.Samples(sequence.Slice[int](list), 40, rng)
	require.NoError(t, err)
	assert.Equal(t, 10, m)

	// the whole collection remains a permutation of its input
	sort.Ints(list)
	assert.Equal(t, unittest.IntRangeFixture(10), list)
}
