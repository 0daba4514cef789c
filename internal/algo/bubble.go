package algo

import "iter"

// Bubble yields after every swap. A pass without swaps ends the sort
// early; one final snapshot is always emitted.
func Bubble(values []int) iter.Seq[[]int] {
	src := snapshot(values)
	return func(yield func([]int) bool) {
		a := snapshot(src)
		n := len(a)
		for i := 0; i < n; i++ {
			swapped := false
			for j := 0; j < n-i-1; j++ {
				if a[j] > a[j+1] {
					a[j], a[j+1] = a[j+1], a[j]
					swapped = true
					if !yield(snapshot(a)) {
						return
					}
				}
			}
			if !swapped {
				break
			}
		}
		yield(snapshot(a))
	}
}
