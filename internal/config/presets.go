package config

import "sort"

// Presets are named starting arrays.
var Presets = map[string]*Config{
	"classic": {
		Algorithm: "quick",
		Values:    []int{64, 25, 12, 22, 11, 90, 3, 47, 71, 38, 56, 8, 95, 19, 33, 80, 5, 61, 42, 27},
	},
	"sorted": {
		Algorithm: "bubble",
		Values:    []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80},
	},
	"reversed": {
		Algorithm: "bubble",
		Values:    []int{80, 75, 70, 65, 60, 55, 50, 45, 40, 35, 30, 25, 20, 15, 10, 5},
	},
	"few_unique": {
		Algorithm: "merge",
		Values:    []int{3, 1, 2, 3, 1, 2, 2, 3, 1, 1, 3, 2, 2, 1, 3, 3},
	},
	"nearly_sorted": {
		Algorithm: "quick",
		Values:    []int{1, 2, 4, 3, 5, 6, 7, 9, 8, 10, 11, 12, 14, 13, 15, 16},
	},
	"wide_digits": {
		Algorithm: "radix",
		Values:    []int{170, 45, 75, 90, 802, 24, 2, 66, 1000, 7},
	},
	"search": {
		Algorithm: "linear",
		Values:    []int{12, 50, 33, 7, 50, 91, 4, 50, 28},
		Target:    50,
	},
}

// GetPreset returns a copy of the named preset laid over the defaults,
// or nil if no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Algorithm = p.Algorithm
	cfg.Values = append([]int(nil), p.Values...)
	if p.Target != 0 {
		cfg.Target = p.Target
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
