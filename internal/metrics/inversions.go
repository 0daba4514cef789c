package metrics

// Inversions reports the inversion count of the latest snapshot: the
// number of pairs i < j with a[i] > a[j]. A sorted array has zero.
type Inversions struct {
	name    string
	latest  int
	history []float64
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions"}
}

func (v *Inversions) Name() string { return v.name }

func (v *Inversions) Observe(snapshot []int) {
	v.latest = CountInversions(snapshot)
	v.history = append(v.history, float64(v.latest))
}

func (v *Inversions) Value() float64 { return float64(v.latest) }

// History returns the inversion count of every observed snapshot.
func (v *Inversions) History() []float64 { return v.history }

func (v *Inversions) Reset() {
	v.latest = 0
	v.history = nil
}

// CountInversions counts inverted pairs with a merge pass, leaving a
// untouched.
func CountInversions(a []int) int {
	buf := make([]int, len(a))
	copy(buf, a)
	tmp := make([]int, len(a))
	return countSplit(buf, tmp)
}

func countSplit(a, tmp []int) int {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	n := countSplit(a[:mid], tmp[:mid]) + countSplit(a[mid:], tmp[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if a[i] <= a[j] {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			n += mid - i
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:])
	copy(a, tmp[:len(a)])
	return n
}
