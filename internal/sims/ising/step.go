package ising

import (
	"fmt"
	"strings"
)

// Source is the randomness consumed by the lattice updates. *rand.Rand from
// math/rand/v2 and *core.RNG both satisfy it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Reseeder is implemented by sources that can restart from a seed, such as
// *core.RNG.
type Reseeder interface {
	Reseed(seed int64)
}

// Sampler selects the acceptance scheme used by Attempt.
type Sampler uint8

const (
	// EnvelopeSampler scales the uniform draw by EnvelopeRate (0.5) before
	// comparing it with the flip rate. Sites with rate p are flipped with
	// probability min(1, 2p), which over-accepts relative to Glauber dynamics.
	EnvelopeSampler Sampler = iota
	// HeatBathSampler compares an unscaled uniform draw with the flip rate,
	// flipping with probability exactly p.
	HeatBathSampler
)

func (s Sampler) String() string {
	switch s {
	case EnvelopeSampler:
		return "envelope"
	case HeatBathSampler:
		return "heatbath"
	default:
		return fmt.Sprintf("sampler(%d)", uint8(s))
	}
}

// ParseSampler maps a sampler name to its value.
func ParseSampler(s string) (Sampler, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "envelope":
		return EnvelopeSampler, nil
	case "heatbath", "heat-bath", "glauber":
		return HeatBathSampler, nil
	}
	return 0, fmt.Errorf("ising: unknown sampler %q", s)
}

// StepParams carries the conditions for a single flip attempt.
type StepParams struct {
	Field       float64
	Temperature float64
	Boundary    Boundary
	Sampler     Sampler
}

func (p StepParams) envelope() float64 {
	if p.Sampler == HeatBathSampler {
		return 1
	}
	return EnvelopeRate(p.Field, p.Temperature)
}

// Attempt tries up to tries times to flip one uniformly chosen site. It stops
// at the first accepted flip and reports whether one happened.
func Attempt(l *Lattice, src Source, p StepParams, tries int) bool {
	if tries < 1 {
		tries = 1
	}
	envelope := p.envelope()
	for i := 0; i < tries; i++ {
		x := src.IntN(l.W)
		y := src.IntN(l.H)
		r := envelope * src.Float64()
		rate := FlipRate(l.At(x, y), l.NeighborSum(x, y, p.Boundary), p.Field, p.Temperature)
		if r < rate {
			l.Flip(x, y)
			return true
		}
	}
	return false
}
