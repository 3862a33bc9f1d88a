package ising

import "math"

// Coupling is the nearest-neighbour exchange constant J.
const Coupling = 1.0

// LocalEnergy returns E = -spin·(H + J·neighbors).
func LocalEnergy(spin int8, neighbors int, field float64) float64 {
	return -float64(spin) * (field + Coupling*float64(neighbors))
}

// FlipRate returns the Glauber flip probability 1/(1+exp(-2E/T)) for a site.
// Flipping changes the energy by -2E, so the rate falls as that cost grows.
// temperature must be positive.
func FlipRate(spin int8, neighbors int, field, temperature float64) float64 {
	e := LocalEnergy(spin, neighbors, field)
	return 1.0 / (1.0 + math.Exp(-2.0*e/temperature))
}

// EnvelopeRate is the rate of a zero spin with no neighbours. Its energy is
// always zero so the result is 0.5 for every field and positive temperature;
// it does not bound FlipRate over real configurations.
func EnvelopeRate(field, temperature float64) float64 {
	return FlipRate(0, 0, field, temperature)
}
