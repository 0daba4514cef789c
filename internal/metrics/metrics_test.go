package metrics

import (
	"testing"
)

func TestCountInversions(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{nil, 0},
		{[]int{1}, 0},
		{[]int{1, 2, 3}, 0},
		{[]int{3, 2, 1}, 3},
		{[]int{2, 4, 1, 3, 5}, 3},
		{[]int{5, 5, 5}, 0},
	}
	for _, tt := range tests {
		if got := CountInversions(tt.in); got != tt.want {
			t.Errorf("CountInversions(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCountInversionsDoesNotMutate(t *testing.T) {
	in := []int{4, 3, 2, 1}
	CountInversions(in)
	if in[0] != 4 || in[3] != 1 {
		t.Errorf("input mutated: %v", in)
	}
}

func TestInversionsHistory(t *testing.T) {
	m := NewInversions()
	m.Observe([]int{3, 1, 2})
	m.Observe([]int{1, 3, 2})
	m.Observe([]int{1, 2, 3})

	if m.Value() != 0 {
		t.Errorf("expected 0 inversions at the end, got %f", m.Value())
	}
	h := m.History()
	if len(h) != 3 || h[0] != 2 || h[1] != 1 || h[2] != 0 {
		t.Errorf("unexpected history %v", h)
	}

	m.Reset()
	if len(m.History()) != 0 {
		t.Error("expected empty history after reset")
	}
}

func TestSortedness(t *testing.T) {
	m := NewSortedness()
	if m.Value() != 1.0 {
		t.Errorf("expected 1.0 before observing, got %f", m.Value())
	}

	m.Observe([]int{4, 3, 2, 1})
	if m.Value() != 0 {
		t.Errorf("expected 0 for reversed, got %f", m.Value())
	}

	m.Observe([]int{1, 3, 2, 4})
	if got := m.Value(); got < 0.66 || got > 0.67 {
		t.Errorf("expected ~2/3, got %f", got)
	}

	m.Observe([]int{7})
	if m.Value() != 1 {
		t.Errorf("expected 1 for single element, got %f", m.Value())
	}
}

func TestWrites(t *testing.T) {
	m := NewWrites()
	m.Observe([]int{3, 1, 2})
	m.Observe([]int{1, 3, 2})
	m.Observe([]int{1, 2, 3})
	m.Observe([]int{1, 2, 3})

	if m.Value() != 4 {
		t.Errorf("expected 4 writes, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestWritesSeeded(t *testing.T) {
	m := NewWrites()
	m.Seed([]int{2, 1})
	m.Observe([]int{1, 2})
	m.Observe([]int{1, 2})
	if m.Value() != 2 {
		t.Errorf("expected 2 writes from the input, got %f", m.Value())
	}

	m.Reset()
	m.Observe([]int{1, 2})
	if m.Value() != 0 {
		t.Errorf("expected unseeded first snapshot to count nothing, got %f", m.Value())
	}
}

func TestStartSeedsAndResets(t *testing.T) {
	ms := Defaults()
	for _, m := range ms {
		m.Observe([]int{9, 8, 7})
	}
	Start(ms, []int{2, 1})
	for _, m := range ms {
		m.Observe([]int{1, 2})
	}
	got := Collect(ms)
	if got["writes"] != 2 || got["steps"] != 1 {
		t.Errorf("unexpected metrics after Start: %v", got)
	}
}

func TestDefaultsAndCollect(t *testing.T) {
	ms := Defaults()
	for _, m := range ms {
		m.Observe([]int{2, 1})
		m.Observe([]int{1, 2})
	}
	got := Collect(ms)

	want := map[string]float64{"steps": 2, "writes": 2, "inversions": 0, "sortedness": 1}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %f, want %f", k, got[k], v)
		}
	}
}
