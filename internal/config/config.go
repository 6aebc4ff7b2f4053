// Package config collects the settings for the Life front ends from defaults,
// an optional HCL file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"lifegrid/pkg/sims/life"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the settings shared by the GUI and headless runners.
type Config struct {
	// ConfigPath names an optional HCL file layered between defaults and flags.
	ConfigPath string

	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64

	Density float64
	Paused  bool

	Pattern     string
	PatternTop  int
	PatternLeft int

	LogLevel  string
	LogFormat string

	file *fileConfig
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     55,
		Height:    30,
		Scale:     20,
		TPS:       5,
		Density:   0.5,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to an HCL configuration file")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills (0 picks one from the clock)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a random fill marks a cell alive")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file to stamp onto the board")
	fs.IntVar(&c.PatternTop, "top", c.PatternTop, "row offset for -pattern")
	fs.IntVar(&c.PatternLeft, "left", c.PatternLeft, "column offset for -pattern")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// Overlay re-applies every flag explicitly set on fs onto c.
func (c *Config) Overlay(fs *flag.FlagSet) error {
	mirror := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	c.Bind(mirror)
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil || mirror.Lookup(f.Name) == nil {
			return
		}
		err = mirror.Set(f.Name, f.Value.String())
	})
	return err
}

// Resolve returns the effective configuration after fs has been parsed into
// c: when c.ConfigPath is set, defaults are replaced by the file and the flags
// the user set explicitly are applied on top.
func (c *Config) Resolve(fs *flag.FlagSet) (*Config, error) {
	out := *c
	if c.ConfigPath != "" {
		fresh := NewConfig()
		fresh.ConfigPath = c.ConfigPath
		if err := LoadFile(c.ConfigPath, fresh); err != nil {
			return nil, err
		}
		if err := fresh.Overlay(fs); err != nil {
			return nil, err
		}
		out = *fresh
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalidConfig, c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density must be within [0, 1], got %g", ErrInvalidConfig, c.Density)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level must be 'debug', 'info', 'warn' or 'error', got %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// LifeConfig converts c into engine settings. A zero seed is replaced with
// one derived from the clock.
func (c *Config) LifeConfig() life.Config {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return life.Config{Width: c.Width, Height: c.Height, Seed: seed, Density: c.Density}
}
