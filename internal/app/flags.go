package app

import (
	"flag"
	"strconv"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	Interval time.Duration
	Seed     int64
	Ticks    int
	Loop     bool
	Panel    int
	Record   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "emergent",
		Scale:    16,
		Interval: 100 * time.Millisecond,
		Seed:     42,
		Ticks:    300,
		Panel:    240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between simulation ticks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "number of ticks before the run stops")
	fs.BoolVar(&c.Loop, "loop", c.Loop, "keep running past -ticks, wrapping the tick index")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Record, "record", c.Record, "also write every frame to this AVI file")
}

// SimConfig converts the flags into the string map accepted by sim factories.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"seed":  strconv.FormatInt(c.Seed, 10),
		"ticks": strconv.Itoa(c.Ticks),
		"loop":  strconv.FormatBool(c.Loop),
	}
}
