package metrics

// Writes counts array positions that changed between consecutive
// snapshots, summed over the run. When seeded, the first snapshot is
// compared with the input array.
type Writes struct {
	name  string
	prev  []int
	total int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(snapshot []int) {
	if w.prev != nil {
		for i := range snapshot {
			if i >= len(w.prev) || w.prev[i] != snapshot[i] {
				w.total++
			}
		}
	}
	w.prev = append(w.prev[:0], snapshot...)
	if w.prev == nil {
		w.prev = []int{}
	}
}

// Seed sets the array the first snapshot is compared with.
func (w *Writes) Seed(initial []int) {
	w.prev = append(make([]int, 0, len(initial)), initial...)
}

func (w *Writes) Value() float64 { return float64(w.total) }

func (w *Writes) Reset() {
	w.prev = nil
	w.total = 0
}

// Steps counts observed snapshots.
type Steps struct {
	count int
}

func NewSteps() *Steps { return &Steps{} }

func (s *Steps) Name() string           { return "steps" }
func (s *Steps) Observe(snapshot []int) { s.count++ }
func (s *Steps) Value() float64         { return float64(s.count) }
func (s *Steps) Reset()                 { s.count = 0 }
