package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/perf"
)

var blocks = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// ArrayChart draws values as vertical block bars in a width x height
// cell area, scaled to the largest value. Bars for which highlight
// returns true use the theme's highlight color. Arrays with more values
// than columns fall back to BrailleBars without highlighting.
func ArrayChart(values []int, width, height int, highlight func(i int) bool, t Theme) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", width)+"\n", height), "\n")
	}
	if len(values) > width {
		return lipgloss.NewStyle().Foreground(t.Bar).Render(BrailleBars(values, width, height))
	}

	colWidth := width / len(values)
	gap := 0
	if colWidth > 2 {
		gap = 1
	}
	top := maxValue(values)
	eighths := make([]int, len(values))
	for i, v := range values {
		eighths[i] = scale(v, top, height*8)
	}

	bar := lipgloss.NewStyle().Foreground(t.Bar)
	hit := lipgloss.NewStyle().Foreground(t.Highlight)

	rows := make([]string, height)
	for r := range rows {
		level := (height - r - 1) * 8
		var b strings.Builder
		for i, e := range eighths {
			fill := max(0, min(e-level, 8))
			cell := " "
			if fill > 0 {
				cell = blocks[fill-1]
			}
			style := bar
			if highlight != nil && highlight(i) {
				style = hit
			}
			b.WriteString(style.Render(strings.Repeat(cell, colWidth-gap)))
			b.WriteString(strings.Repeat(" ", gap))
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

// PerfChartTitle heads the timing chart.
const PerfChartTitle = "Algorithm Performance (milliseconds)"

// PerfChart draws timings as horizontal bars of at most width cells,
// revealed to percent (0..100) of their full length. It returns "" when
// there is nothing to show.
func PerfChart(timings []perf.Timing, width, percent int, t Theme) string {
	if len(timings) == 0 {
		return ""
	}

	labelWidth := 0
	for _, tm := range timings {
		labelWidth = max(labelWidth, lipgloss.Width(label(tm, len(timings))))
	}
	barWidth := max(width-labelWidth-14, 1)
	heights := perf.Heights(timings, float64(barWidth), percent)

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render(PerfChartTitle),
	}
	if len(timings) > 1 {
		scaleLine := fmt.Sprintf("%*s 0.00%*s", labelWidth, "", barWidth-4, fmt.Sprintf("%.2f", float64(perf.Max(timings))/1e6))
		lines = append(lines, Subtle.Render(scaleLine))
	}
	for i, tm := range timings {
		n := int(heights[i] + 0.5)
		fill := lipgloss.NewStyle().Foreground(t.SeriesColor(i)).Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("%-*s %s%s %s",
			labelWidth, label(tm, len(timings)),
			fill, strings.Repeat(" ", barWidth-n),
			MetricValue.Render(tm.String()),
		))
	}
	return strings.Join(lines, "\n")
}

// label is the short name for comparison bars and the full name when a
// single timing is charted.
func label(tm perf.Timing, n int) string {
	if n == 1 {
		return tm.Name
	}
	return tm.Label
}
