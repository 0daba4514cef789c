// Package session holds the control panel state shared by the front-ends:
// the input fields, the chosen algorithm, the working array and the
// timing chart. Front-ends forward button presses and call Tick once
// per frame.
package session

import (
	"math/rand"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/perf"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/viz"
	"go.uber.org/zap"
)

// HeaderLimit is the number of elements shown in the array header.
const HeaderLimit = 30

type Session struct {
	cfg    *config.Config
	rng    config.Rand
	logger *zap.Logger
	meter  *perf.Meter
	player *player.Player

	numbers    string
	size       string
	targetText string

	values   []int
	original []int
	selected string
	target   int
	timings  []perf.Timing
}

// New builds a session from cfg. A nil cfg uses the defaults.
func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed(cfg.Seed))),
		logger: zap.NewNop(),
		meter:  perf.NewMeter(cfg.Runs),
		player: player.New(),
		target: cfg.Target,
	}
	s.player.SetSpeed(cfg.Speed)
	if info, err := algo.Lookup(cfg.Algorithm); err == nil {
		s.selected = info.Name
	}
	s.values = cfg.InitialValues(s.rng)
	s.original = clone(s.values)
	return s
}

func seed(n int64) int64 {
	if n == 0 {
		return time.Now().UnixNano()
	}
	return n
}

func (s *Session) WithLogger(l *zap.Logger) *Session {
	s.logger = l
	return s
}

// WithRand replaces the random source and regenerates a random
// starting array.
func (s *Session) WithRand(rng config.Rand) *Session {
	s.rng = rng
	if len(s.cfg.Values) == 0 {
		s.values = s.cfg.InitialValues(rng)
		s.original = clone(s.values)
	}
	return s
}

func (s *Session) WithMeter(m *perf.Meter) *Session {
	s.meter = m
	return s
}

func (s *Session) Player() *player.Player { return s.player }
func (s *Session) Logger() *zap.Logger    { return s.logger }

func (s *Session) SetNumbers(text string) { s.numbers = text }
func (s *Session) SetSize(text string)    { s.size = text }
func (s *Session) SetTarget(text string)  { s.targetText = text }
func (s *Session) Numbers() string        { return s.numbers }
func (s *Session) Size() string           { return s.size }
func (s *Session) TargetText() string     { return s.targetText }

// Enter replaces the working array from the numbers field, or failing
// that from a random array of the requested size. Both fields are
// cleared whatever the outcome. Invalid input leaves the array as it was.
func (s *Session) Enter() error {
	numbers, size := s.numbers, s.size
	s.numbers, s.size = "", ""

	switch {
	case strings.TrimSpace(numbers) != "":
		vals, err := ParseNumbers(numbers)
		if err != nil {
			return s.warn(err, zap.String("numbers", numbers))
		}
		s.replace(vals)
	case strings.TrimSpace(size) != "":
		n, err := ParseSize(size)
		if err != nil {
			return s.warn(err, zap.String("size", size))
		}
		s.replace(s.cfg.RandomValues(s.rng, n))
	}
	return nil
}

func (s *Session) replace(vals []int) {
	s.player.Stop()
	s.values = vals
	s.original = clone(vals)
	s.logger.Debug("array replaced", zap.Int("len", len(vals)))
}

// TogglePause pauses or resumes a running animation.
func (s *Session) TogglePause() {
	s.player.TogglePause()
}

// Reset clears every field and the selection, stops the animation,
// drops the timings and restores the last entered array.
func (s *Session) Reset() {
	s.numbers, s.size, s.targetText = "", "", ""
	s.selected = ""
	s.player.Stop()
	s.values = clone(s.original)
	s.timings = nil
}

// Select chooses the algorithm to launch, replacing any earlier choice.
func (s *Session) Select(name string) error {
	info, err := algo.Lookup(name)
	if err != nil {
		return err
	}
	s.selected = info.Name
	return nil
}

// Selected returns the chosen algorithm.
func (s *Session) Selected() (algo.Info, bool) {
	if s.selected == "" {
		return algo.Info{}, false
	}
	info, err := algo.Lookup(s.selected)
	return info, err == nil
}

// Launch measures the reference timings on the last entered array and
// starts the animation of the selected algorithm on a copy of it. For
// linear search the target field is consumed first; an unparsable
// target is reported but the run still starts with the previous target.
func (s *Session) Launch() error {
	info, ok := s.Selected()
	if !ok {
		return s.warn(ErrNoAlgorithm)
	}

	var warning error
	if info.Search {
		text := s.targetText
		s.targetText = ""
		if strings.TrimSpace(text) != "" {
			n, err := ParseTarget(text)
			if err != nil {
				warning = s.warn(err, zap.String("target", text), zap.Int("previous", s.target))
			} else {
				s.target = n
			}
		}
		s.timings = s.meter.LinearSearch(s.original, s.target)
	} else {
		s.timings = s.meter.Sorts(s.original)
	}

	gen, err := algo.New(info.Name, s.target)
	if err != nil {
		return err
	}
	s.values = clone(s.original)
	s.player.Start(gen, s.values)
	s.logger.Info("launch",
		zap.String("algorithm", info.Title),
		zap.Int("len", len(s.values)),
		zap.Stringers("timings", s.timings),
	)
	return warning
}

// Tick advances the animation one frame and reports whether the array
// changed.
func (s *Session) Tick() bool {
	wasActive := s.player.Active()
	changed := s.player.Tick()
	if changed {
		s.values = s.player.Current()
	}
	if wasActive && s.player.Completed() {
		s.logger.Debug("animation finished",
			zap.Int("steps", s.player.Steps()),
			zap.Duration("visual", s.player.VisualTime()),
		)
	}
	return changed
}

func (s *Session) Values() []int          { return s.values }
func (s *Session) Original() []int        { return s.original }
func (s *Session) Target() int            { return s.target }
func (s *Session) Timings() []perf.Timing { return s.timings }
func (s *Session) Reveal() int            { return s.player.Reveal() }
func (s *Session) Running() bool          { return s.player.State() == player.Running }
func (s *Session) Paused() bool           { return s.player.State() == player.Paused }
func (s *Session) Completed() bool        { return s.player.Completed() }

// Header is the working array as shown above the bars.
func (s *Session) Header() string {
	return viz.FormatArray(s.values, HeaderLimit)
}

// TargetVisible reports whether the target field applies.
func (s *Session) TargetVisible() bool {
	info, ok := s.Selected()
	return ok && info.Search
}

// Highlighted reports whether the bar at i shows the search target.
func (s *Session) Highlighted(i int) bool {
	return s.TargetVisible() && i >= 0 && i < len(s.values) && s.values[i] == s.target
}

func (s *Session) warn(err error, fields ...zap.Field) error {
	s.logger.Warn(err.Error(), fields...)
	return err
}

func clone(a []int) []int {
	out := make([]int, len(a))
	copy(out, a)
	return out
}
