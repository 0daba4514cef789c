package metrics

// Sortedness is the fraction of adjacent pairs in order in the latest
// snapshot. Arrays shorter than two count as fully sorted.
type Sortedness struct {
	name   string
	latest float64
	seen   bool
}

func NewSortedness() *Sortedness {
	return &Sortedness{name: "sortedness"}
}

func (s *Sortedness) Name() string {
	return s.name
}

func (s *Sortedness) Observe(snapshot []int) {
	s.seen = true
	if len(snapshot) < 2 {
		s.latest = 1
		return
	}
	ordered := 0
	for i := 1; i < len(snapshot); i++ {
		if snapshot[i-1] <= snapshot[i] {
			ordered++
		}
	}
	s.latest = float64(ordered) / float64(len(snapshot)-1)
}

func (s *Sortedness) Value() float64 {
	if !s.seen {
		return 1.0
	}
	return s.latest
}

func (s *Sortedness) Reset() {
	s.latest = 0
	s.seen = false
}
