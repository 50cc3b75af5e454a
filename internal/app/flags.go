package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	SimTPS int
	Seed   int64
	HUD    int
	Paused bool

	Options Options
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, SimTPS: 10, Seed: 42, HUD: 220, Options: Options{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width of the control panel in pixels (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with automatic stepping paused")
	fs.Var(c.Options, "set", "simulation option in key=value form (repeatable)")
}

// Options collects repeated key=value flags into a sim configuration map.
type Options map[string]string

func (o Options) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set parses a single key=value pair.
func (o Options) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q: want key=value", value)
	}
	o[key] = strings.TrimSpace(val)
	return nil
}
