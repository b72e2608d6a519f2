package cave

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FillMode selects how cells are drawn on initialize and reset.
type FillMode string

const (
	// FillCoin draws every cell with an independent fair coin flip.
	FillCoin FillMode = "coin"
	// FillNoise thresholds a freshly seeded simplex noise field.
	FillNoise FillMode = "noise"
)

// Rule holds the liveness thresholds. A live cell survives when it has more
// than SurviveAbove live neighbours, a dead cell comes alive when it has more
// than BirthAbove.
type Rule struct {
	SurviveAbove int `yaml:"surviveAbove"`
	BirthAbove   int `yaml:"birthAbove"`
}

// Config controls the cave automaton.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Rule Rule     `yaml:"rule"`
	Fill FillMode `yaml:"fill"`

	NoiseScale     float64 `yaml:"noiseScale"`
	NoiseThreshold float64 `yaml:"noiseThreshold"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          80,
		Height:         80,
		Seed:           42,
		Rule:           Rule{SurviveAbove: 3, BirthAbove: 4},
		Fill:           FillCoin,
		NoiseScale:     0.12,
		NoiseThreshold: 0.5,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["survive_above"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && validThreshold(parsed) {
			c.Rule.SurviveAbove = parsed
		}
	}
	if v, ok := cfg["birth_above"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && validThreshold(parsed) {
			c.Rule.BirthAbove = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if mode := FillMode(v); mode.valid() {
			c.Fill = mode
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseScale = parsed
		}
	}
	if v, ok := cfg["noise_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.NoiseThreshold = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read cave config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML document on top of DefaultConfig and validates
// the result.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse cave config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid cave config: %w", err)
	}
	return c, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be > 0, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be > 0, got %d", c.Height)
	}
	if !validThreshold(c.Rule.SurviveAbove) {
		return fmt.Errorf("rule.surviveAbove must be between 0 and 8, got %d", c.Rule.SurviveAbove)
	}
	if !validThreshold(c.Rule.BirthAbove) {
		return fmt.Errorf("rule.birthAbove must be between 0 and 8, got %d", c.Rule.BirthAbove)
	}
	if !c.Fill.valid() {
		return fmt.Errorf("fill must be %q or %q, got %q", FillCoin, FillNoise, c.Fill)
	}
	if c.NoiseScale <= 0 {
		return fmt.Errorf("noiseScale must be > 0, got %g", c.NoiseScale)
	}
	if c.NoiseThreshold < 0 || c.NoiseThreshold > 1 {
		return fmt.Errorf("noiseThreshold must be between 0 and 1, got %g", c.NoiseThreshold)
	}
	return nil
}

func validThreshold(n int) bool { return n >= 0 && n <= 8 }

func (m FillMode) valid() bool { return m == FillCoin || m == FillNoise }
