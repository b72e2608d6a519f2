package app

import (
	"flag"
	"fmt"

	"cavegen/pkg/sims/cave"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Width      int
	Height     int
	Seed       int64
	CellSize   int
	TPS        int
	StepRate   int
	Paused     bool

	seedSet bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{CellSize: 10, TPS: 60, StepRate: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML cave config file")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (0 keeps the config value)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (0 keeps the config value)")
	fs.Func("seed", "seed for the initial cave (defaults to the config value)", func(s string) error {
		if _, err := fmt.Sscan(s, &c.Seed); err != nil {
			return fmt.Errorf("invalid seed %q: %w", s, err)
		}
		c.seedSet = true
		return nil
	})
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.StepRate, "rate", c.StepRate, "automaton steps per second")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// CaveConfig resolves the automaton configuration: the YAML file (or the
// defaults) with any size and seed flags applied on top.
func (c *Config) CaveConfig() (cave.Config, error) {
	cfg := cave.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := cave.LoadConfig(c.ConfigPath)
		if err != nil {
			return cave.Config{}, err
		}
		cfg = loaded
	}
	if c.Width > 0 {
		cfg.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Height = c.Height
	}
	if c.seedSet {
		cfg.Seed = c.Seed
	}
	return cfg, nil
}
