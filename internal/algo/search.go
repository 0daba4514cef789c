package algo

import "iter"

// DefaultTarget is the linear search target used until one is chosen.
const DefaultTarget = 50

// Linear returns a generator that scans for target. It yields once per
// inspected index, once more when the element matches, and once at the
// end. The array itself never changes.
func Linear(target int) Generator {
	return func(values []int) iter.Seq[[]int] {
		src := snapshot(values)
		return func(yield func([]int) bool) {
			for _, v := range src {
				if !yield(snapshot(src)) {
					return
				}
				if v == target {
					if !yield(snapshot(src)) {
						return
					}
				}
			}
			yield(snapshot(src))
		}
	}
}

// Matches returns the indices of values equal to target.
func Matches(values []int, target int) []int {
	var idx []int
	for i, v := range values {
		if v == target {
			idx = append(idx, i)
		}
	}
	return idx
}
