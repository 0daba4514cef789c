package algo

import (
	"iter"
	"slices"
)

// Radix is an LSD base-10 radix sort built on a stable counting sort.
// Each counting pass yields once per write-back, and one final snapshot
// follows the last pass. An empty input yields a single snapshot.
//
// Digits are taken from v-min when the array holds negative values, so
// negatives sort correctly; non-negative arrays use the values directly.
// Keys are unsigned so any int range fits.
func Radix(values []int) iter.Seq[[]int] {
	src := snapshot(values)
	return func(yield func([]int) bool) {
		a := snapshot(src)
		if len(a) == 0 {
			yield(snapshot(a))
			return
		}

		var offset int
		if lo := slices.Min(a); lo < 0 {
			offset = lo
		}
		maxKey := key(slices.Max(a), offset)

		for exp := uint(1); maxKey/exp > 0; exp *= 10 {
			if !countingPass(a, exp, offset, yield) {
				return
			}
			if exp > maxKey/10 {
				break
			}
		}
		yield(snapshot(a))
	}
}

func countingPass(a []int, exp uint, offset int, yield func([]int) bool) bool {
	n := len(a)
	output := make([]int, n)
	var count [10]int

	for _, v := range a {
		count[digit(v, exp, offset)]++
	}
	for d := 1; d < len(count); d++ {
		count[d] += count[d-1]
	}
	for i := n - 1; i >= 0; i-- {
		d := digit(a[i], exp, offset)
		output[count[d]-1] = a[i]
		count[d]--
	}

	for i := range output {
		a[i] = output[i]
		if !yield(snapshot(a)) {
			return false
		}
	}
	return true
}

// key maps v to its distance above offset, the array minimum when it is
// negative. uint subtraction wraps, so the distance is exact even when it
// exceeds math.MaxInt.
func key(v, offset int) uint {
	return uint(v) - uint(offset)
}

func digit(v int, exp uint, offset int) int {
	return int((key(v, offset) / exp) % 10)
}
