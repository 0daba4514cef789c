package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/san-kum/sortviz/internal/viz"
)

const (
	liveWidth   = 70
	liveHeight  = 16
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints animation frames to a plain terminal. It observes
// a player and redraws at most frameRate times per second.
type LiveRenderer struct {
	out       io.Writer
	title     string
	frameRate int
	lastFrame time.Time
	clock     func() time.Time
	theme     viz.Theme
	highlight func(values []int, i int) bool
	frames    int
}

func NewLiveRenderer(out io.Writer, title string, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &LiveRenderer{
		out:       out,
		title:     title,
		frameRate: frameRate,
		clock:     time.Now,
		theme:     viz.ThemeOcean,
	}
}

func (r *LiveRenderer) WithClock(c func() time.Time) *LiveRenderer {
	r.clock = c
	return r
}

func (r *LiveRenderer) WithTheme(t viz.Theme) *LiveRenderer {
	r.theme = t
	return r
}

// WithHighlight colors bars for which fn reports true.
func (r *LiveRenderer) WithHighlight(fn func(values []int, i int) bool) *LiveRenderer {
	r.highlight = fn
	return r
}

// Frames is the number of frames drawn so far.
func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) OnStep(snapshot []int, step int) {
	now := r.clock()
	if !r.lastFrame.IsZero() && now.Sub(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = now
	r.render(snapshot, step)
}

// Flush draws snapshot regardless of the frame budget.
func (r *LiveRenderer) Flush(snapshot []int, step int) {
	r.lastFrame = r.clock()
	r.render(snapshot, step)
}

func (r *LiveRenderer) render(snapshot []int, step int) {
	var hl func(int) bool
	if r.highlight != nil {
		hl = func(i int) bool { return r.highlight(snapshot, i) }
	}
	fmt.Fprint(r.out, clearScreen)
	fmt.Fprintln(r.out, viz.Truncate(r.title+"  "+viz.FormatArray(snapshot, 30), liveWidth))
	fmt.Fprintln(r.out, viz.ArrayChart(snapshot, liveWidth, liveHeight, hl, r.theme))
	fmt.Fprintln(r.out, viz.MetricLabel.Render("step ")+viz.MetricValue.Render(fmt.Sprint(step)))
	r.frames++
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
