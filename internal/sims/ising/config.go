package ising

import (
	"math"
	"strconv"
)

// Config controls the Ising model dimensions and dynamics.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Temperature must be positive.
	Temperature float64
	// Field is the initial external field; it stays fixed when Feedback is off.
	Field float64
	// Feedback recomputes the field as the negative mean magnetization after
	// every inner iteration.
	Feedback bool

	Boundary Boundary
	Sampler  Sampler

	// Attempts bounds the tries per single-site update.
	Attempts int
	// Batch is the number of lattice sweeps per frame.
	Batch int
}

// MinTemperature is the smallest temperature accepted from configuration.
const MinTemperature = 1e-6

// DefaultConfig returns the standard configuration: a 80×50 periodic lattice
// near zero temperature with field feedback.
func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      50,
		Seed:        1337,
		Temperature: 0.0001,
		Field:       0,
		Feedback:    true,
		Boundary:    Periodic,
		Sampler:     EnvelopeSampler,
		Attempts:    1,
		Batch:       10,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && validTemperature(parsed) {
			c.Temperature = parsed
		}
	}
	if v, ok := cfg["field"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			c.Field = parsed
		}
	}
	if v, ok := cfg["feedback"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Feedback = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["sampler"]; ok {
		if parsed, err := ParseSampler(v); err == nil {
			c.Sampler = parsed
		}
	}
	if v, ok := cfg["attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Attempts = parsed
		}
	}
	if v, ok := cfg["batch"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Batch = parsed
		}
	}
	return c
}

func validTemperature(t float64) bool {
	return t >= MinTemperature && !math.IsInf(t, 0)
}
