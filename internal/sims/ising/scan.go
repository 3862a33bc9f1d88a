package ising

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Observation summarizes a fixed-temperature run.
type Observation struct {
	Temperature float64
	// MeanAbsMagnetization is the average of |m| per site over the measured
	// frames.
	MeanAbsMagnetization float64
	// StdAbsMagnetization is the sample standard deviation of |m|.
	StdAbsMagnetization float64
	// Susceptibility is Area·Var(|m|)/T.
	Susceptibility float64
	// MeanField averages the field seen at the end of each measured frame.
	MeanField float64
	// FinalMagnetization is the total magnetization after the last frame.
	FinalMagnetization int
	// Frames is the number of measured frames.
	Frames int
}

// Observe runs a model built from cfg for burnIn unmeasured frames followed by
// frames measured ones.
func Observe(cfg Config, burnIn, frames int) Observation {
	model := NewWithConfig(cfg)
	obs := Observation{Temperature: model.Temperature()}
	if frames <= 0 {
		obs.FinalMagnetization = model.Magnetization()
		return obs
	}
	for i := 0; i < burnIn; i++ {
		model.Advance()
	}

	abs := make([]float64, frames)
	fields := make([]float64, frames)
	for i := 0; i < frames; i++ {
		model.Advance()
		abs[i] = math.Abs(model.MeanMagnetization())
		fields[i] = model.Field()
	}

	mean, std := stat.MeanStdDev(abs, nil)
	if frames < 2 {
		std = 0
	}
	obs.MeanAbsMagnetization = mean
	obs.StdAbsMagnetization = std
	obs.Susceptibility = float64(model.Lattice().Area()) * std * std / obs.Temperature
	obs.MeanField = stat.Mean(fields, nil)
	obs.FinalMagnetization = model.Magnetization()
	obs.Frames = frames
	return obs
}

// Scan observes each temperature independently, running up to workers models
// at once. Results keep the order of temps. Each point is seeded from
// base.Seed plus its index so a scan is reproducible.
func Scan(base Config, temps []float64, burnIn, frames, workers int) []Observation {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Observation, len(temps))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, t := range temps {
		cfg := base
		cfg.Temperature = t
		cfg.Seed = base.Seed + int64(i)
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, cfg Config) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = Observe(cfg, burnIn, frames)
		}(i, cfg)
	}
	wg.Wait()
	return results
}

// Temperatures returns n evenly spaced temperatures from lo to hi inclusive.
// Values below MinTemperature are raised to it.
func Temperatures(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	temps := make([]float64, n)
	if n == 1 {
		temps[0] = lo
	} else {
		floats.Span(temps, lo, hi)
	}
	for i, t := range temps {
		if t < MinTemperature {
			temps[i] = MinTemperature
		}
	}
	return temps
}
