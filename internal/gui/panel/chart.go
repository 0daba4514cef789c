package panel

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/perf"
)

const ChartTitle = "Algorithm Performance (milliseconds)"

// ChartBar is one bar of the timing chart with its captions.
type ChartBar struct {
	Rect
	Name   string
	Value  string
	Series int
}

// Chart is the geometry of the timing chart.
type Chart struct {
	Bars []ChartBar
	// Axis is drawn for comparisons only; Scale labels its top.
	Axis  bool
	Scale string
}

// PerfChart lays out timings inside area, revealed to percent (0..100).
// A single timing is drawn as one wide bar at 90% height with its full
// name; several timings share the width with an axis scaled to the
// slowest.
func PerfChart(timings []perf.Timing, area Rect, percent int) Chart {
	if len(timings) == 0 {
		return Chart{}
	}
	plot := area.H - 50
	heights := perf.Heights(timings, float64(plot), percent)

	if len(timings) == 1 {
		h := float32(heights[0])
		return Chart{Bars: []ChartBar{{
			Rect:  Rect{area.X + 10, area.Bottom() - h - 20, area.W - 20, h},
			Name:  timings[0].Name,
			Value: timings[0].String(),
		}}}
	}

	c := Chart{
		Axis:  true,
		Scale: fmt.Sprintf("%.2f", float64(perf.Max(timings))/1e6),
	}
	w := (area.W - 20) / float32(len(timings))
	for i, t := range timings {
		h := float32(heights[i])
		c.Bars = append(c.Bars, ChartBar{
			Rect:   Rect{area.X + 25 + float32(i)*w, area.Bottom() - h - 20, w - 5, h},
			Name:   t.Label,
			Value:  fmt.Sprintf("%.3f", t.Millis()),
			Series: i,
		})
	}
	return c
}
