package emergent

import "strconv"

// Config controls grid dimensions, run length and seeding. The update rule
// constants are fixed and live in update.go.
type Config struct {
	Width  int
	Height int

	Ticks int
	Seed  int64

	// Loop wraps the tick index back to zero after Ticks frames while the
	// grid keeps evolving.
	Loop bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  32,
		Height: 32,
		Ticks:  300,
		Seed:   42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Ticks = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["loop"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Loop = parsed
		}
	}
	return c
}
