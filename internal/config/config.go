// Package config holds the run settings shared by the beam commands.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"contraption/internal/logging"
	"contraption/pkg/beam"
)

// Config represents the settings for a run. Field tags name the keys of the
// optional YAML file.
type Config struct {
	Input string `yaml:"input"`

	Row int    `yaml:"row"`
	Col int    `yaml:"col"`
	Dir string `yaml:"dir"`

	Workers int `yaml:"workers"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Viewer only.
	Sim     string `yaml:"sim"`
	Scale   int    `yaml:"scale"`
	TPS     int    `yaml:"tps"`
	PerTick int    `yaml:"per_tick"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Dir:       "right",
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
		LogFormat: "text",
		Sim:       "trace",
		Scale:     8,
		TPS:       30,
		PerTick:   4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "path to the contraption layout")
	fs.IntVar(&c.Row, "row", c.Row, "start row for the single trace")
	fs.IntVar(&c.Col, "col", c.Col, "start column for the single trace")
	fs.StringVar(&c.Dir, "dir", c.Dir, "start direction: up, right, down or left")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of worker goroutines for the edge sweep")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
	fs.StringVar(&c.Sim, "sim", c.Sim, "viewer simulation: trace or coverage")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.PerTick, "per-tick", c.PerTick, "beam fronts expanded per tick")
}

// Load overlays the YAML file at path onto c. Keys missing from the file keep
// their current values.
func (c *Config) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// SimSettings renders the viewer settings as the key/value map the sim
// factories take.
func (c *Config) SimSettings() map[string]string {
	return map[string]string{
		"row":      strconv.Itoa(c.Row),
		"col":      strconv.Itoa(c.Col),
		"dir":      c.Dir,
		"per_tick": strconv.Itoa(c.PerTick),
	}
}

// Direction returns the parsed start direction.
func (c *Config) Direction() (beam.Direction, error) {
	return beam.ParseDirection(c.Dir)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input is required"))
	}
	if _, err := c.Direction(); err != nil {
		errs = append(errs, err)
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("invalid log-level %q: must be one of %v", c.LogLevel, logging.Levels))
	}
	if !slices.Contains(logging.Formats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be one of %v", c.LogFormat, logging.Formats))
	}
	if c.Scale <= 0 || c.TPS <= 0 || c.PerTick <= 0 {
		errs = append(errs, errors.New("scale, tps and per-tick must be positive"))
	}
	return errors.Join(errs...)
}
