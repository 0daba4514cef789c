package algo

import (
	"fmt"
	"iter"
	"strings"
)

// Generator turns an input array into a sequence of array snapshots.
type Generator func(values []int) iter.Seq[[]int]

// Info describes a registered algorithm.
type Info struct {
	Name   string // canonical key, e.g. "quick"
	Title  string // display name, e.g. "Quick Sort"
	Search bool   // takes a target and leaves the array unchanged
}

// ShortTitle is the first word of the title, used for chart labels.
func (i Info) ShortTitle() string {
	if f := strings.Fields(i.Title); len(f) > 0 {
		return f[0]
	}
	return i.Title
}

var catalog = []Info{
	{Name: "bubble", Title: "Bubble Sort"},
	{Name: "merge", Title: "Merge Sort"},
	{Name: "quick", Title: "Quick Sort"},
	{Name: "radix", Title: "Radix Sort"},
	{Name: "linear", Title: "Linear Search", Search: true},
}

// All returns every algorithm in display order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Sorts returns the sorting algorithms in display order.
func Sorts() []Info {
	out := make([]Info, 0, len(catalog))
	for _, info := range catalog {
		if !info.Search {
			out = append(out, info)
		}
	}
	return out
}

// Names returns the canonical names in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, info := range catalog {
		names[i] = info.Name
	}
	return names
}

// Lookup resolves a canonical name or display title, ignoring case and
// the trailing "sort"/"search" word ("Quick Sort", "quick_sort", "QUICK").
func Lookup(name string) (Info, error) {
	key := normalize(name)
	for _, info := range catalog {
		if key == info.Name || key == normalize(info.Title) {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// New returns the generator for name. target is used only by search
// algorithms.
func New(name string, target int) (Generator, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	switch info.Name {
	case "bubble":
		return Bubble, nil
	case "merge":
		return Merge, nil
	case "quick":
		return Quick, nil
	case "radix":
		return Radix, nil
	case "linear":
		return Linear(target), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	key = strings.TrimSuffix(key, " sort")
	key = strings.TrimSuffix(key, " search")
	return strings.TrimSpace(key)
}

// snapshot copies a into a new, never-nil slice.
func snapshot(a []int) []int {
	out := make([]int, len(a))
	copy(out, a)
	return out
}
