package ising

import (
	"math"
	"testing"

	"ising/internal/core"
)

// scriptedSource replays fixed draws.
type scriptedSource struct {
	ints   []int
	floats []float64
	ni, nf int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[s.ni%len(s.ints)]
	s.ni++
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.nf%len(s.floats)]
	s.nf++
	return v
}

func TestAttemptFlipsChosenSite(t *testing.T) {
	l := NewLattice(3, 3)
	src := &scriptedSource{ints: []int{1, 2}, floats: []float64{0.99}}
	p := StepParams{Field: -100, Temperature: 1, Boundary: Periodic}

	if !Attempt(l, src, p, 1) {
		t.Fatal("expected the flip to be accepted")
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Up
			if x == 1 && y == 2 {
				want = Down
			}
			if got := l.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestAttemptRejectsAlignedSpinAtLowTemperature(t *testing.T) {
	l := NewLattice(4, 4)
	src := &scriptedSource{ints: []int{0, 0, 3, 3, 2, 1}, floats: []float64{0}}
	p := StepParams{Field: 0, Temperature: 0.0001, Boundary: Periodic}

	if Attempt(l, src, p, 3) {
		t.Fatal("aligned spins must not flip at low temperature")
	}
	if l.Magnetization() != 16 {
		t.Fatalf("lattice changed: magnetization %d", l.Magnetization())
	}
	if src.ni != 6 || src.nf != 3 {
		t.Fatalf("expected three full tries, got %d int and %d float draws", src.ni, src.nf)
	}
}

func TestAttemptStopsAtFirstAcceptedFlip(t *testing.T) {
	l := NewLattice(4, 4)
	l.Set(2, 2, Down)
	src := &scriptedSource{ints: []int{0, 0, 2, 2, 3, 0}, floats: []float64{0.5}}
	p := StepParams{Field: 0, Temperature: 0.0001, Boundary: Periodic}

	if !Attempt(l, src, p, 3) {
		t.Fatal("expected the isolated down spin to flip")
	}
	if l.At(2, 2) != Up || l.Magnetization() != 16 {
		t.Fatalf("unexpected lattice after flip: %v", l.Spins())
	}
	if src.ni != 4 {
		t.Fatalf("expected two tries, got %d int draws", src.ni)
	}
}

func TestAttemptTreatsNonPositiveTriesAsOne(t *testing.T) {
	l := NewLattice(2, 2)
	src := &scriptedSource{ints: []int{0}, floats: []float64{0}}
	Attempt(l, src, StepParams{Temperature: 0.0001, Boundary: Periodic}, 0)
	if src.ni != 2 || src.nf != 1 {
		t.Fatalf("expected a single try, got %d int and %d float draws", src.ni, src.nf)
	}
}

func acceptanceRate(l *Lattice, reset func(), p StepParams, trials int, seed int64) float64 {
	rng := core.NewRNG(seed)
	accepted := 0
	for i := 0; i < trials; i++ {
		reset()
		if Attempt(l, rng, p, 1) {
			accepted++
		}
	}
	return float64(accepted) / float64(trials)
}

func TestAcceptanceNearZeroForOrderedLatticeAtLowTemperature(t *testing.T) {
	l := NewLattice(4, 4)
	reset := func() { l.Fill(Up) }
	for _, s := range []Sampler{EnvelopeSampler, HeatBathSampler} {
		rate := acceptanceRate(l, reset, StepParams{Field: 0, Temperature: 0.01, Boundary: Periodic, Sampler: s}, 10000, 5)
		if rate > 0.001 {
			t.Fatalf("%s acceptance %.4f, expected ~0", s, rate)
		}
	}
}

func TestAcceptanceNearOneForStrongOpposingField(t *testing.T) {
	l := NewLattice(4, 4)
	reset := func() { l.Fill(Up) }
	for _, s := range []Sampler{EnvelopeSampler, HeatBathSampler} {
		rate := acceptanceRate(l, reset, StepParams{Field: -100, Temperature: 1, Boundary: Periodic, Sampler: s}, 10000, 6)
		if rate < 0.99 {
			t.Fatalf("%s acceptance %.4f, expected ~1", s, rate)
		}
	}
}

func TestEnvelopeSamplerDoublesAcceptance(t *testing.T) {
	const temp = 1.0
	// An isolated up spin with E = -H has rate 1/(1+exp(2H/T)) = 0.25.
	field := temp * math.Log(3) / 2
	l := NewLattice(1, 1)
	reset := func() { l.Fill(Up) }

	envelope := acceptanceRate(l, reset, StepParams{Field: field, Temperature: temp, Boundary: Dirichlet, Sampler: EnvelopeSampler}, 20000, 7)
	heatBath := acceptanceRate(l, reset, StepParams{Field: field, Temperature: temp, Boundary: Dirichlet, Sampler: HeatBathSampler}, 20000, 8)

	if math.Abs(envelope-0.5) > 0.03 {
		t.Fatalf("envelope acceptance %.4f, expected ~0.5", envelope)
	}
	if math.Abs(heatBath-0.25) > 0.03 {
		t.Fatalf("heat-bath acceptance %.4f, expected ~0.25", heatBath)
	}
}

func TestSpinsStayValidUnderRepeatedAttempts(t *testing.T) {
	rng := core.NewRNG(11)
	l := NewLattice(5, 4)
	l.Randomize(rng)
	area := l.Area()
	params := []StepParams{
		{Field: 0, Temperature: 2.5, Boundary: Periodic},
		{Field: 1.2, Temperature: 0.3, Boundary: Neumann, Sampler: HeatBathSampler},
		{Field: -0.4, Temperature: 5, Boundary: DirichletNegative},
		{Field: 0, Temperature: 1, Boundary: DirichletPositive},
		{Field: 0.1, Temperature: 0.01, Boundary: Dirichlet},
	}
	for _, p := range params {
		for i := 0; i < 2000; i++ {
			Attempt(l, rng, p, 2)
		}
		assertSpins(t, l)
		if m := l.Magnetization(); m < -area || m > area {
			t.Fatalf("magnetization %d outside [-%d,%d]", m, area, area)
		}
	}
}

func TestParseSampler(t *testing.T) {
	for _, s := range []Sampler{EnvelopeSampler, HeatBathSampler} {
		got, err := ParseSampler(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseSampler(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseSampler("Glauber"); err != nil || got != HeatBathSampler {
		t.Fatalf("ParseSampler(Glauber) = %v, %v", got, err)
	}
	if _, err := ParseSampler("metropolis"); err == nil {
		t.Fatal("expected error for unknown sampler")
	}
}
