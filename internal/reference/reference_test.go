package reference

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortsAgreeWithStdlib(t *testing.T) {
	sorts := map[string]func([]int) []int{
		"bubble": BubbleSort,
		"merge":  MergeSort,
		"quick":  QuickSort,
		"radix":  LSDRadixSort,
	}

	rng := rand.New(rand.NewSource(11))
	for name, sortFn := range sorts {
		t.Run(name, func(t *testing.T) {
			for trial := 0; trial < 50; trial++ {
				in := make([]int, rng.Intn(200))
				for i := range in {
					in[i] = rng.Intn(2001) - 1000
				}
				orig := slices.Clone(in)

				got := sortFn(in)

				require.Equal(t, orig, in, "input must not be mutated")
				require.Len(t, got, len(in))
				assert.True(t, slices.IsSorted(got), "output %v not sorted", got)
				assert.ElementsMatch(t, orig, got)
			}
		})
	}
}

func TestSortsHandleEdgeCases(t *testing.T) {
	for _, sortFn := range []func([]int) []int{BubbleSort, MergeSort, QuickSort, LSDRadixSort} {
		assert.Empty(t, sortFn(nil))
		assert.Equal(t, []int{7}, sortFn([]int{7}))
		assert.Equal(t, []int{0, 0, 0}, sortFn([]int{0, 0, 0}))
	}
}

func TestLSDRadixSortExtremeRange(t *testing.T) {
	assert.Equal(t, []int{-5, math.MaxInt}, LSDRadixSort([]int{math.MaxInt, -5}))
	assert.Equal(t, []int{math.MinInt, 5}, LSDRadixSort([]int{5, math.MinInt}))
	assert.Equal(t, []int{math.MinInt, -1, 0, math.MaxInt}, LSDRadixSort([]int{0, math.MaxInt, -1, math.MinInt}))
	assert.Equal(t, []int{3, math.MaxInt - 1, math.MaxInt}, LSDRadixSort([]int{math.MaxInt, 3, math.MaxInt - 1}))
}

func TestLinearSearchAll(t *testing.T) {
	assert.Equal(t, []int{1, 3}, LinearSearchAll([]int{4, 50, 6, 50}, 50))
	assert.Empty(t, LinearSearchAll([]int{1, 2, 3}, 50))
}
