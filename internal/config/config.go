package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/sortviz/internal/algo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize          = 20
	DefaultMaxRandomSize = 100
	DefaultMinValue      = 1
	DefaultMaxValue      = 100
	DefaultTarget        = algo.DefaultTarget
	DefaultFPS           = 60
	DefaultSpeed         = 1
	DefaultRuns          = 5
	DefaultTheme         = "ocean"
)

var (
	ErrInvalidRange = errors.New("config: min_value must not exceed max_value")
	ErrInvalidSize  = errors.New("config: sizes must be positive")
	ErrInvalidRate  = errors.New("config: fps, speed and runs must be positive")
)

type Config struct {
	Algorithm     string `yaml:"algorithm"`
	Values        []int  `yaml:"values,omitempty"`
	RandomSize    int    `yaml:"random_size"`
	MaxRandomSize int    `yaml:"max_random_size"`
	MinValue      int    `yaml:"min_value"`
	MaxValue      int    `yaml:"max_value"`
	Target        int    `yaml:"target"`
	Seed          int64  `yaml:"seed"`
	FPS           int    `yaml:"fps"`
	Speed         int    `yaml:"speed"`
	Runs          int    `yaml:"runs"`
	Theme         string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		RandomSize:    DefaultSize,
		MaxRandomSize: DefaultMaxRandomSize,
		MinValue:      DefaultMinValue,
		MaxValue:      DefaultMaxValue,
		Target:        DefaultTarget,
		FPS:           DefaultFPS,
		Speed:         DefaultSpeed,
		Runs:          DefaultRuns,
		Theme:         DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges and that a named algorithm exists.
func (c *Config) Validate() error {
	if c.MinValue > c.MaxValue {
		return ErrInvalidRange
	}
	if c.RandomSize <= 0 || c.MaxRandomSize <= 0 {
		return ErrInvalidSize
	}
	if c.FPS <= 0 || c.Speed <= 0 || c.Runs <= 0 {
		return ErrInvalidRate
	}
	if c.Algorithm != "" {
		if _, err := algo.Lookup(c.Algorithm); err != nil {
			return err
		}
	}
	return nil
}

// InitialValues returns the configured values, or a random array of
// RandomSize (capped at MaxRandomSize) drawn from [MinValue, MaxValue].
func (c *Config) InitialValues(rng Rand) []int {
	if len(c.Values) > 0 {
		out := make([]int, len(c.Values))
		copy(out, c.Values)
		return out
	}
	return c.RandomValues(rng, c.RandomSize)
}

// RandomValues draws min(n, MaxRandomSize) values from [MinValue, MaxValue].
func (c *Config) RandomValues(rng Rand, n int) []int {
	n = min(n, c.MaxRandomSize)
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	span := c.MaxValue - c.MinValue + 1
	for i := range out {
		out[i] = c.MinValue + rng.Intn(span)
	}
	return out
}

// Rand is the subset of *rand.Rand used to generate arrays.
type Rand interface {
	Intn(n int) int
}
