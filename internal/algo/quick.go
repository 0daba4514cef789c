package algo

import "iter"

// Quick sorts with the Lomuto scheme, pivoting on the last element of
// each range. It yields after each partition swap, after the pivot is
// placed, and after every recursive call returns. Arrays of length one
// or less yield a single snapshot.
func Quick(values []int) iter.Seq[[]int] {
	src := snapshot(values)
	return func(yield func([]int) bool) {
		a := snapshot(src)
		if len(a) <= 1 {
			yield(snapshot(a))
			return
		}
		var sortRange func(low, high int) bool
		sortRange = func(low, high int) bool {
			if low < high {
				p, ok := partition(a, low, high, yield)
				if !ok || !sortRange(low, p-1) || !sortRange(p+1, high) {
					return false
				}
			}
			return yield(snapshot(a))
		}
		sortRange(0, len(a)-1)
	}
}

func partition(a []int, low, high int, yield func([]int) bool) (int, bool) {
	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if a[j] < pivot {
			i++
			a[i], a[j] = a[j], a[i]
			if !yield(snapshot(a)) {
				return 0, false
			}
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	return i + 1, yield(snapshot(a))
}
