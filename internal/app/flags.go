package app

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	SPS      int
	Seed     int64
	HUDWidth int
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ising", Scale: 20, TPS: 60, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per lattice cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks (rendered frames) per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "simulation frames per second (0 = one per tick)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 = -set seed=N if given, else wall clock)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// Options converts the -set overrides into the map consumed by sim factories.
func (c *Config) Options() (map[string]string, error) {
	opts := make(map[string]string, len(c.Set))
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("app: malformed override %q, expected key=value", kv)
		}
		opts[key] = strings.TrimSpace(value)
	}
	return opts, nil
}

// InitialSeed picks the seed passed to the sim's first Reset. An explicit
// -seed wins. A "seed" override leaves the factory's seeding in place and
// reports false. Otherwise the wall clock is used.
func (c *Config) InitialSeed(opts map[string]string) (int64, bool) {
	if c.Seed != 0 {
		return c.Seed, true
	}
	if _, ok := opts["seed"]; ok {
		return 0, false
	}
	return time.Now().UnixNano(), true
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends a value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
