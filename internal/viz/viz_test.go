package viz

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/perf"
)

func TestFormatArray(t *testing.T) {
	long := make([]int, 40)
	for i := range long {
		long[i] = i + 1
	}

	tests := []struct {
		name   string
		values []int
		limit  int
		want   string
	}{
		{"empty", nil, 30, "[]"},
		{"short", []int{3, 1, 2}, 30, "[3, 1, 2]"},
		{"exact", long[:30], 30, "[" + joinRange(1, 30) + "]"},
		{"long", long, 30, "[" + joinRange(1, 15) + " ... " + joinRange(26, 40) + "]"},
		{"odd limit", long[:10], 5, "[1, 2 ... 8, 9, 10]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatArray(tt.values, tt.limit); got != tt.want {
				t.Errorf("FormatArray() = %q, want %q", got, tt.want)
			}
		})
	}
}

func joinRange(lo, hi int) string {
	vals := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		vals = append(vals, v)
	}
	return join(vals)
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate kept = %q", got)
	}
	got := Truncate("abcdefghijkl", 8)
	if got != "abcde..." {
		t.Errorf("Truncate = %q, want %q", got, "abcde...")
	}
	if w := lipgloss.Width(Truncate("[1, 2, 3, 4, 5, 6, 7, 8, 9]", 12)); w > 12 {
		t.Errorf("Truncate width = %d, want <= 12", w)
	}
	if got := Truncate("abcdef", 2); got != "..." {
		t.Errorf("Truncate tiny = %q", got)
	}
}

func TestBrailleBars(t *testing.T) {
	out := BrailleBars([]int{4, 0}, 1, 1)
	// Left column fully lit: dots 1,2,3,7.
	if out != string(rune(brailleBlank|0x1|0x2|0x4|0x40)) {
		t.Errorf("BrailleBars = %q", out)
	}

	lines := strings.Split(BrailleBars([]int{1, 2, 3, 4, 5}, 3, 2), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, l := range lines {
		if n := len([]rune(l)); n != 3 {
			t.Errorf("row width = %d, want 3", n)
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct{ v, top, n, want int }{
		{0, 10, 8, 0},
		{-3, 10, 8, 0},
		{10, 10, 8, 8},
		{5, 10, 8, 4},
		{1, 100, 8, 0},
		{7, 100, 8, 1},
	}
	for _, tt := range tests {
		if got := scale(tt.v, tt.top, tt.n); got != tt.want {
			t.Errorf("scale(%d, %d, %d) = %d, want %d", tt.v, tt.top, tt.n, got, tt.want)
		}
	}
}

func TestArrayChartShape(t *testing.T) {
	out := ArrayChart([]int{1, 2, 4}, 12, 3, nil, ThemeOcean)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w != 12 {
			t.Errorf("row width = %d, want 12", w)
		}
	}
	if !strings.Contains(lines[0], "█") {
		t.Error("tallest bar should reach the top row")
	}
}

func TestArrayChartEmpty(t *testing.T) {
	out := ArrayChart(nil, 4, 2, nil, ThemeOcean)
	if out != "    \n    " {
		t.Errorf("empty chart = %q", out)
	}
	if ArrayChart([]int{1}, 0, 2, nil, ThemeOcean) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestArrayChartHighlight(t *testing.T) {
	called := map[int]bool{}
	ArrayChart([]int{5, 50, 7}, 9, 2, func(i int) bool {
		called[i] = true
		return i == 1
	}, ThemeOcean)
	if len(called) != 3 {
		t.Errorf("highlight consulted for %d bars, want 3", len(called))
	}
}

func TestPerfChart(t *testing.T) {
	if PerfChart(nil, 40, 100, ThemeOcean) != "" {
		t.Error("no timings should render nothing")
	}

	timings := []perf.Timing{
		{Name: "Bubble Sort", Label: "Bubble", Mean: 4 * time.Millisecond},
		{Name: "Merge Sort", Label: "Merge", Mean: 2 * time.Millisecond},
	}
	out := PerfChart(timings, 50, 100, ThemeOcean)
	for _, want := range []string{PerfChartTitle, "Bubble", "Merge", "4.000 ms", "2.000 ms", "4.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}

	hidden := PerfChart(timings, 50, 0, ThemeOcean)
	if strings.Contains(hidden, "█") {
		t.Error("bars should be hidden at 0% reveal")
	}

	single := PerfChart([]perf.Timing{{Name: "Linear Search", Label: "Linear", Mean: time.Millisecond}}, 50, 100, ThemeOcean)
	if !strings.Contains(single, "Linear Search") {
		t.Errorf("single chart should use the full name:\n%s", single)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "ocean" {
		t.Error("unknown theme should fall back to ocean")
	}
	if NextTheme("ocean").Name != "cyberpunk" {
		t.Error("NextTheme(ocean) should be cyberpunk")
	}
	if NextTheme("sunset").Name != "ocean" {
		t.Error("NextTheme should wrap around")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
	if ThemeOcean.SeriesColor(5) != ThemeOcean.Series[1] {
		t.Error("SeriesColor should cycle")
	}
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#0a10ff")
	if r != 10 || g != 16 || b != 255 {
		t.Errorf("parseHex = %d,%d,%d", r, g, b)
	}
	if hexColor(300, -1, 16) != "#ff0010" {
		t.Errorf("hexColor = %s", hexColor(300, -1, 16))
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty sparkline = %q", got)
	}
	out := Sparkline([]float64{9, 1, 2, 3, 0}, 3)
	if w := lipgloss.Width(out); w != 3 {
		t.Errorf("sparkline width = %d, want 3", w)
	}
}
