package experiment

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/reference"
)

// Entry binds an algorithm to its animated generator factory and the
// plain implementation used for timing.
type Entry struct {
	Info      algo.Info
	Generator func(params map[string]int) algo.Generator
	Reference func(values []int, params map[string]int) []int
}

type Registry struct {
	entries map[string]Entry
}

func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Entry)}

	sorts := map[string]struct {
		gen algo.Generator
		ref func([]int) []int
	}{
		"bubble": {algo.Bubble, reference.BubbleSort},
		"merge":  {algo.Merge, reference.MergeSort},
		"quick":  {algo.Quick, reference.QuickSort},
		"radix":  {algo.Radix, reference.LSDRadixSort},
	}
	for name, s := range sorts {
		info, _ := algo.Lookup(name)
		gen, ref := s.gen, s.ref
		r.entries[name] = Entry{
			Info:      info,
			Generator: func(map[string]int) algo.Generator { return gen },
			Reference: func(values []int, _ map[string]int) []int { return ref(values) },
		}
	}

	linear, _ := algo.Lookup("linear")
	r.entries["linear"] = Entry{
		Info: linear,
		Generator: func(params map[string]int) algo.Generator {
			return algo.Linear(target(params))
		},
		Reference: func(values []int, params map[string]int) []int {
			return reference.LinearSearchAll(values, target(params))
		},
	}

	return r
}

func target(params map[string]int) int {
	if t, ok := params["target"]; ok {
		return t
	}
	return algo.DefaultTarget
}

func (r *Registry) Get(name string) (Entry, error) {
	info, err := algo.Lookup(name)
	if err != nil {
		return Entry{}, err
	}
	e, ok := r.entries[info.Name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", algo.ErrUnknownAlgorithm, name)
	}
	return e, nil
}

func (r *Registry) GetGenerator(name string, params map[string]int) (algo.Generator, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Generator(params), nil
}

// ListAlgorithms returns registered names in display order.
func (r *Registry) ListAlgorithms() []string {
	names := make([]string, 0, len(r.entries))
	for _, n := range algo.Names() {
		if _, ok := r.entries[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

func (r *Registry) DefaultMetrics(name string) []metrics.Metric {
	return metrics.Defaults()
}
