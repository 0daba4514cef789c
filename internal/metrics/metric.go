// Package metrics observes array snapshots as an animation advances.
package metrics

// Metric accumulates a value over a sequence of snapshots.
type Metric interface {
	Name() string
	Observe(snapshot []int)
	Value() float64
	Reset()
}

// Seeder is implemented by metrics that compare each snapshot with the
// one before it and need the run's input as the starting point.
type Seeder interface {
	Seed(initial []int)
}

// Start resets every metric and seeds those that take the input array.
func Start(ms []Metric, initial []int) {
	for _, m := range ms {
		m.Reset()
		if s, ok := m.(Seeder); ok {
			s.Seed(initial)
		}
	}
}

// Defaults returns a fresh set of the standard metrics.
func Defaults() []Metric {
	return []Metric{
		NewSteps(),
		NewWrites(),
		NewInversions(),
		NewSortedness(),
	}
}

// Collect reads every metric into a map keyed by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
