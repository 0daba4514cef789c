// Package perf measures wall-clock running time of the reference
// algorithm implementations, for the comparison chart.
package perf

import (
	"fmt"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/experiment"
)

// DefaultRuns is the number of timed runs averaged per algorithm.
const DefaultRuns = 5

// Timing is the mean running time of one algorithm.
type Timing struct {
	Name  string // display title, e.g. "Merge Sort"
	Label string // short chart label, e.g. "Merge"
	Mean  time.Duration
}

// Millis reports the mean in milliseconds.
func (t Timing) Millis() float64 {
	return float64(t.Mean) / float64(time.Millisecond)
}

// String formats the mean as "%.3f ms".
func (t Timing) String() string {
	return fmt.Sprintf("%.3f ms", t.Millis())
}

// Clock returns the current instant. Tests substitute a fake.
type Clock func() time.Time

// Meter runs timings with a configurable run count and clock.
type Meter struct {
	runs     int
	clock    Clock
	registry *experiment.Registry
}

// NewMeter returns a Meter averaging over runs (DefaultRuns when <= 0).
func NewMeter(runs int) *Meter {
	if runs <= 0 {
		runs = DefaultRuns
	}
	return &Meter{runs: runs, clock: time.Now, registry: experiment.NewRegistry()}
}

// WithClock replaces the clock used to time runs.
func (m *Meter) WithClock(c Clock) *Meter {
	m.clock = c
	return m
}

// Runs is the number of runs averaged per algorithm.
func (m *Meter) Runs() int { return m.runs }

// Sorts times every sorting reference on fresh copies of values and
// returns the means in display order.
func (m *Meter) Sorts(values []int) []Timing {
	sorts := algo.Sorts()
	out := make([]Timing, 0, len(sorts))
	for _, info := range sorts {
		t, err := m.time(info.Name, values, nil)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

// LinearSearch times the linear search reference alone.
func (m *Meter) LinearSearch(values []int, target int) []Timing {
	t, err := m.time("linear", values, map[string]int{"target": target})
	if err != nil {
		return nil
	}
	return []Timing{t}
}

func (m *Meter) time(name string, values []int, params map[string]int) (Timing, error) {
	e, err := m.registry.Get(name)
	if err != nil {
		return Timing{}, err
	}
	return Timing{
		Name:  e.Info.Title,
		Label: e.Info.ShortTitle(),
		Mean:  m.mean(values, func(a []int) { e.Reference(a, params) }),
	}, nil
}

func (m *Meter) mean(values []int, fn func([]int)) time.Duration {
	var total time.Duration
	for i := 0; i < m.runs; i++ {
		a := make([]int, len(values))
		copy(a, values)
		start := m.clock()
		fn(a)
		total += m.clock().Sub(start)
	}
	return total / time.Duration(m.runs)
}

// Measure times the sorting references with DefaultRuns.
func Measure(values []int) []Timing {
	return NewMeter(DefaultRuns).Sorts(values)
}

// MeasureLinearSearch times linear search with DefaultRuns.
func MeasureLinearSearch(values []int, target int) []Timing {
	return NewMeter(DefaultRuns).LinearSearch(values, target)
}

// Max returns the largest mean, or zero for no timings.
func Max(timings []Timing) time.Duration {
	var m time.Duration
	for _, t := range timings {
		m = max(m, t.Mean)
	}
	return m
}

// Heights scales each timing to a bar height in [0, full] relative to
// the slowest one, then applies the reveal percentage (0..100). A
// single timing fills 90% of full, as the linear search chart does.
func Heights(timings []Timing, full float64, percent int) []float64 {
	percent = max(0, min(percent, 100))
	reveal := float64(percent) / 100
	out := make([]float64, len(timings))
	if len(timings) == 1 {
		out[0] = full * 0.9 * reveal
		return out
	}
	top := Max(timings)
	if top == 0 {
		return out
	}
	for i, t := range timings {
		out[i] = float64(t.Mean) / float64(top) * full * reveal
	}
	return out
}
