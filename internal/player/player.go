package player

import (
	"iter"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/metrics"
)

const (
	// RevealStep is the chart reveal increment per tick after completion.
	RevealStep = 2
	MinSpeed   = 1
	MaxSpeed   = 16
)

type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}
	return "idle"
}

// Observer is notified of every snapshot the player pulls.
type Observer interface {
	OnStep(snapshot []int, step int)
}

type Player struct {
	next func() ([]int, bool)
	stop func()

	state   State
	current []int
	steps   int
	speed   int
	reveal  int

	started time.Time
	visual  time.Duration
	clock   func() time.Time

	metrics   []metrics.Metric
	observers []Observer
}

func New() *Player {
	return &Player{
		speed:   MinSpeed,
		clock:   time.Now,
		metrics: make([]metrics.Metric, 0),
	}
}

// WithClock replaces the clock used for the visual timing.
func (p *Player) WithClock(c func() time.Time) *Player {
	p.clock = c
	return p
}

func (p *Player) AddMetric(m metrics.Metric) { p.metrics = append(p.metrics, m) }
func (p *Player) AddObserver(o Observer)     { p.observers = append(p.observers, o) }
func (p *Player) Metrics() []metrics.Metric  { return p.metrics }
func (p *Player) Observers() []Observer      { return p.observers }
func (p *Player) State() State               { return p.state }
func (p *Player) Steps() int                 { return p.steps }
func (p *Player) Speed() int                 { return p.speed }
func (p *Player) Reveal() int                { return p.reveal }
func (p *Player) Completed() bool            { return p.state == Completed }
func (p *Player) Active() bool               { return p.state == Running || p.state == Paused }
func (p *Player) VisualTime() time.Duration  { return p.visual }
func (p *Player) Current() []int             { return p.current }

// Start begins a run of gen over values, replacing any run in progress.
func (p *Player) Start(gen algo.Generator, values []int) {
	p.StartSeq(gen(values), values)
}

// StartSeq begins a run over an arbitrary snapshot sequence. values is
// shown until the first snapshot arrives.
func (p *Player) StartSeq(seq iter.Seq[[]int], values []int) {
	p.release()

	p.current = make([]int, len(values))
	copy(p.current, values)
	p.next, p.stop = iter.Pull(seq)
	p.state = Running
	p.steps = 0
	p.reveal = 0
	p.visual = 0
	p.started = p.clock()

	metrics.Start(p.metrics, values)
}

// Tick advances the animation by one frame and reports whether the
// displayed array changed.
func (p *Player) Tick() bool {
	changed := false
	if p.state == Running {
		for i := 0; i < p.speed; i++ {
			s, ok := p.next()
			if !ok {
				p.finish()
				break
			}
			p.current = s
			p.steps++
			changed = true
			for _, m := range p.metrics {
				m.Observe(s)
			}
			for _, o := range p.observers {
				o.OnStep(s, p.steps)
			}
		}
	}

	switch p.state {
	case Completed:
		if p.reveal < 100 {
			p.reveal = min(100, p.reveal+RevealStep)
		}
	case Running:
		p.reveal = 0
	}
	return changed
}

// TogglePause flips between running and paused. It does nothing when
// no run is active.
func (p *Player) TogglePause() {
	switch p.state {
	case Running:
		p.state = Paused
	case Paused:
		p.state = Running
	}
}

// Stop abandons the current run and returns to Idle. The last shown
// array stays available through Current.
func (p *Player) Stop() {
	p.release()
	p.state = Idle
	p.reveal = 0
	p.visual = 0
}

// SetSpeed sets the snapshots pulled per tick, clamped to [MinSpeed, MaxSpeed].
func (p *Player) SetSpeed(n int) {
	p.speed = max(MinSpeed, min(n, MaxSpeed))
}

func (p *Player) Faster() { p.SetSpeed(p.speed * 2) }
func (p *Player) Slower() { p.SetSpeed(p.speed / 2) }

func (p *Player) finish() {
	p.release()
	p.state = Completed
	p.visual = p.clock().Sub(p.started)
}

func (p *Player) release() {
	if p.stop != nil {
		p.stop()
	}
	p.next = nil
	p.stop = nil
}
