package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/exprtree"
)

// config holds all settings for a run. Values from a config file are
// overridden by flags given on the command line.
type config struct {
	Logging LoggerConfig `yaml:"logging"`

	Formula      string  `yaml:"formula"`
	MaxX         float64 `yaml:"max_x"`
	MaxY         float64 `yaml:"max_y"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Simplify     bool    `yaml:"simplify"`
	NestingLimit int     `yaml:"nesting_limit"`
}

// defaultConfig returns a config with sensible defaults.
func defaultConfig() config {
	return config{
		Logging: LoggerConfig{
			LogLevel:   "warn",
			Format:     "text",
			MaxSize:    10,
			MaxAge:     28,
			MaxBackups: 3,
		},
		MaxX:         10,
		MaxY:         10,
		Width:        79,
		Height:       25,
		Simplify:     true,
		NestingLimit: exprtree.DefaultNestingLimit,
	}
}

// loadConfig reads a YAML config file over cfg. Fields absent from the file
// keep their values. Unknown fields are an error.
func loadConfig(path string, cfg *config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(b, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *config) validate() error {
	switch {
	case !(c.MaxX > 0):
		return fmt.Errorf("max x (%g) must be positive", c.MaxX)
	case !(c.MaxY > 0):
		return fmt.Errorf("max y (%g) must be positive", c.MaxY)
	case c.Width < 3:
		return fmt.Errorf("width (%d) must be at least 3", c.Width)
	case c.Height < 3:
		return fmt.Errorf("height (%d) must be at least 3", c.Height)
	case c.NestingLimit <= 0:
		return fmt.Errorf("nesting limit (%d) must be positive", c.NestingLimit)
	}
	switch c.Logging.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.LogLevel)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}
