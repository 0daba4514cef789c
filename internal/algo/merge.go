package algo

import "iter"

// Merge is a top-down merge sort over half-open ranges. It yields after
// every write of a merge and after every recursive call returns,
// including calls on ranges of length zero or one.
func Merge(values []int) iter.Seq[[]int] {
	src := snapshot(values)
	return func(yield func([]int) bool) {
		a := snapshot(src)
		var sortRange func(start, end int) bool
		sortRange = func(start, end int) bool {
			if end-start > 1 {
				mid := (start + end) / 2
				if !sortRange(start, mid) || !sortRange(mid, end) || !mergeRuns(a, start, mid, end, yield) {
					return false
				}
			}
			return yield(snapshot(a))
		}
		sortRange(0, len(a))
	}
}

// mergeRuns merges a[start:mid] and a[mid:end]. Ties take from the left
// run so the sort is stable.
func mergeRuns(a []int, start, mid, end int, yield func([]int) bool) bool {
	left := snapshot(a[start:mid])
	right := snapshot(a[mid:end])
	i, j, k := 0, 0, start

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		k++
		if !yield(snapshot(a)) {
			return false
		}
	}
	for ; i < len(left); i++ {
		a[k] = left[i]
		k++
		if !yield(snapshot(a)) {
			return false
		}
	}
	for ; j < len(right); j++ {
		a[k] = right[j]
		k++
		if !yield(snapshot(a)) {
			return false
		}
	}
	return true
}
