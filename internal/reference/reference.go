// Package reference holds plain, non-animated implementations of the
// visualized algorithms. They exist to be timed; the animation core
// lives in package algo.
package reference

// BubbleSort returns a sorted copy of values.
func BubbleSort(values []int) []int {
	a := clone(values)
	n := len(a)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return a
}

// MergeSort returns a sorted copy of values.
func MergeSort(values []int) []int {
	if len(values) <= 1 {
		return clone(values)
	}
	mid := len(values) / 2
	left := MergeSort(values[:mid])
	right := MergeSort(values[mid:])

	out := make([]int, 0, len(values))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

// QuickSort returns a sorted copy of values.
func QuickSort(values []int) []int {
	a := clone(values)
	quick(a, 0, len(a)-1)
	return a
}

func quick(a []int, low, high int) {
	for low < high {
		pivot := a[high]
		i := low - 1
		for j := low; j < high; j++ {
			if a[j] < pivot {
				i++
				a[i], a[j] = a[j], a[i]
			}
		}
		a[i+1], a[high] = a[high], a[i+1]
		p := i + 1

		// recurse into the smaller side to bound stack depth
		if p-low < high-p {
			quick(a, low, p-1)
			low = p + 1
		} else {
			quick(a, p+1, high)
			high = p - 1
		}
	}
}

// LSDRadixSort returns a sorted copy of values using base-10 digits.
func LSDRadixSort(values []int) []int {
	a := clone(values)
	if len(a) == 0 {
		return a
	}
	lo, hi := a[0], a[0]
	for _, v := range a {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	var offset uint
	if lo < 0 {
		offset = uint(lo)
	}
	top := uint(hi) - offset

	buf := make([]int, len(a))
	for exp := uint(1); top/exp > 0; exp *= 10 {
		var count [10]int
		for _, v := range a {
			count[((uint(v)-offset)/exp)%10]++
		}
		for d := 1; d < 10; d++ {
			count[d] += count[d-1]
		}
		for i := len(a) - 1; i >= 0; i-- {
			d := ((uint(a[i]) - offset) / exp) % 10
			count[d]--
			buf[count[d]] = a[i]
		}
		a, buf = buf, a
		if exp > top/10 {
			break
		}
	}
	return a
}

// LinearSearchAll returns every index holding target.
func LinearSearchAll(values []int, target int) []int {
	var idx []int
	for i, v := range values {
		if v == target {
			idx = append(idx, i)
		}
	}
	return idx
}

func clone(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	return out
}
