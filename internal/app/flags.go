package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Settings string
	State    string
	Load     bool
	Scale    int
	TPS      int
	Delay    time.Duration
	Seed     int64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Settings: "settings.json",
		State:    "state.json",
		Scale:    8,
		TPS:      60,
		Delay:    100 * time.Millisecond,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Settings, "settings", c.Settings, "settings file (empty for defaults)")
	fs.StringVar(&c.State, "state", c.State, "snapshot file used by save and load")
	fs.BoolVar(&c.Load, "load", c.Load, "load the snapshot file at startup")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 keeps the settings seed)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels")
}
