package beams

import (
	"strconv"

	"contraption/pkg/beam"
)

// Config controls the animated simulations.
type Config struct {
	Start   beam.State
	PerTick int
}

// DefaultConfig returns the standard configuration: enter the top-left cell
// heading right and expand four fronts per tick.
func DefaultConfig() Config {
	return Config{Start: beam.At(0, 0, beam.Right), PerTick: 4}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Start.Row = parsed
		}
	}
	if v, ok := cfg["col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Start.Col = parsed
		}
	}
	if v, ok := cfg["dir"]; ok {
		if parsed, err := beam.ParseDirection(v); err == nil {
			c.Start.Dir = parsed
		}
	}
	if v, ok := cfg["per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PerTick = parsed
		}
	}
	return c
}
