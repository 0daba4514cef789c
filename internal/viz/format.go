package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ellipsis = "..."

// FormatArray prints values as "[a, b, c]". Arrays longer than limit
// show the first limit/2 and the last limit-limit/2 values around " ... ".
func FormatArray(values []int, limit int) string {
	if limit <= 0 || len(values) <= limit {
		return "[" + join(values) + "]"
	}
	head := limit / 2
	tail := limit - head
	return "[" + join(values[:head]) + " ... " + join(values[len(values)-tail:]) + "]"
}

func join(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Truncate shortens text to fit width display cells, ending it with
// "..." when anything was cut.
func Truncate(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	room := width - lipgloss.Width(ellipsis)
	runes := []rune(text)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > room {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
