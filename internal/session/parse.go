package session

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumbers parses a comma-separated list of integers. Blank items
// are skipped; any other non-integer item rejects the whole list.
func ParseNumbers(text string) ([]int, error) {
	var out []int
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumbers, item)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, ErrNoNumbers
	}
	return out, nil
}

// ParseSize parses the random array size field.
func ParseSize(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, text)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositiveSize, n)
	}
	return n, nil
}

// ParseTarget parses the linear search target field.
func ParseTarget(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTarget, text)
	}
	return n, nil
}
