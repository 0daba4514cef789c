package experiment

import (
	"context"
	"errors"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/metrics"
)

var ErrNotSetup = errors.New("experiment: not setup")

type Config struct {
	Algorithm string
	Values    []int
	Target    int
	// KeepSnapshots retains every snapshot in the result.
	KeepSnapshots bool
}

type Result struct {
	Algorithm string
	Initial   []int
	Final     []int
	Snapshots [][]int
	Steps     int
	Metrics   map[string]float64
}

type Experiment struct {
	cfg     Config
	gen     algo.Generator
	metrics []metrics.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(gen algo.Generator, ms []metrics.Metric) error {
	if gen == nil {
		return ErrNotSetup
	}
	e.gen = gen
	e.metrics = ms
	return nil
}

// SetupFromRegistry resolves the configured algorithm and its default metrics.
func (e *Experiment) SetupFromRegistry(r *Registry) error {
	gen, err := r.GetGenerator(e.cfg.Algorithm, map[string]int{"target": e.cfg.Target})
	if err != nil {
		return err
	}
	return e.Setup(gen, r.DefaultMetrics(e.cfg.Algorithm))
}

// Run drains the generator, checking ctx between steps. On cancellation
// the partial result is returned together with ctx.Err().
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.gen == nil {
		return nil, ErrNotSetup
	}

	initial := make([]int, len(e.cfg.Values))
	copy(initial, e.cfg.Values)
	metrics.Start(e.metrics, initial)

	result := &Result{
		Algorithm: e.cfg.Algorithm,
		Initial:   initial,
		Final:     initial,
		Metrics:   make(map[string]float64),
	}

	for s := range e.gen(initial) {
		select {
		case <-ctx.Done():
			result.Metrics = metrics.Collect(e.metrics)
			return result, ctx.Err()
		default:
		}

		for _, m := range e.metrics {
			m.Observe(s)
		}
		if e.cfg.KeepSnapshots {
			result.Snapshots = append(result.Snapshots, s)
		}
		result.Final = s
		result.Steps++
	}

	result.Metrics = metrics.Collect(e.metrics)
	return result, nil
}

// Metric returns the attached metric with the given name, if any.
func (e *Experiment) Metric(name string) (metrics.Metric, bool) {
	for _, m := range e.metrics {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}
