package ising

import (
	"ising/internal/core"
)

// Model drives a Lattice with single-spin-flip dynamics and a field fed back
// from the magnetization. It owns the lattice exclusively.
type Model struct {
	cfg Config

	lattice *Lattice
	src     Source

	field       float64
	temperature float64
	boundary    Boundary

	running bool
	frames  int
	display []uint8
	energy  []float32
}

// New returns an Ising model with the provided dimensions using defaults.
func New(w, h int) *Model {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a model seeded from cfg.Seed.
func NewWithConfig(cfg Config) *Model {
	return NewWithSource(cfg, core.NewRNG(cfg.Seed))
}

// NewWithSource returns a model drawing all randomness from src. The lattice
// starts randomized and the model starts running. src is kept for the life of
// the model; Reset reseeds it only when it implements Reseeder.
func NewWithSource(cfg Config, src Source) *Model {
	if !validTemperature(cfg.Temperature) {
		cfg.Temperature = DefaultConfig().Temperature
	}
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if cfg.Batch < 1 {
		cfg.Batch = 1
	}
	l := NewLattice(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = l.W, l.H
	m := &Model{
		cfg:         cfg,
		lattice:     l,
		src:         src,
		field:       cfg.Field,
		temperature: cfg.Temperature,
		boundary:    cfg.Boundary,
		running:     true,
		display:     make([]uint8, l.Area()),
		energy:      make([]float32, l.Area()),
	}
	l.Randomize(src)
	return m
}

// Name returns the simulation identifier.
func (m *Model) Name() string { return "ising" }

// Size reports the lattice dimensions.
func (m *Model) Size() core.Size { return core.Size{W: m.lattice.W, H: m.lattice.H} }

// Lattice exposes the spin lattice. Callers must not mutate it.
func (m *Model) Lattice() *Lattice { return m.lattice }

// Config returns the configuration the model was built from.
func (m *Model) Config() Config { return m.cfg }

// Cells exposes a display buffer holding 1 for Up and 0 for Down spins.
func (m *Model) Cells() []uint8 {
	for i, s := range m.lattice.Spins() {
		if s > 0 {
			m.display[i] = 1
			continue
		}
		m.display[i] = 0
	}
	return m.display
}

// EnergyMask marks with 1 every site whose flip would lower the energy.
func (m *Model) EnergyMask() []float32 {
	l := m.lattice
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			e := LocalEnergy(l.At(x, y), l.NeighborSum(x, y, m.boundary), m.field)
			idx := l.Index(x, y)
			if e > 0 {
				m.energy[idx] = 1
				continue
			}
			m.energy[idx] = 0
		}
	}
	return m.energy
}

// Reset re-randomizes every spin regardless of the running state. A non-zero
// seed reseeds a Reseeder source and is recorded in Config; zero, or a source
// that cannot be reseeded, continues the current stream.
func (m *Model) Reset(seed int64) {
	if r, ok := m.src.(Reseeder); ok && seed != 0 {
		r.Reseed(seed)
		m.cfg.Seed = seed
	}
	m.lattice.Randomize(m.src)
}

// Step advances one frame while running and does nothing while paused.
func (m *Model) Step() {
	if !m.running {
		return
	}
	m.Advance()
}

// Advance performs one frame regardless of the running state: Batch sweeps
// of W×H single-site attempts, refreshing the field after each sweep.
func (m *Model) Advance() {
	area := m.lattice.Area()
	for b := 0; b < m.cfg.Batch; b++ {
		p := m.stepParams()
		for i := 0; i < area; i++ {
			Attempt(m.lattice, m.src, p, m.cfg.Attempts)
		}
		if m.cfg.Feedback {
			m.field = -m.MeanMagnetization()
		}
	}
	m.frames++
}

func (m *Model) stepParams() StepParams {
	return StepParams{
		Field:       m.field,
		Temperature: m.temperature,
		Boundary:    m.boundary,
		Sampler:     m.cfg.Sampler,
	}
}

// Running reports whether Step advances the lattice.
func (m *Model) Running() bool { return m.running }

// SetRunning switches between the running and paused states.
func (m *Model) SetRunning(running bool) { m.running = running }

// ToggleRunning flips between running and paused.
func (m *Model) ToggleRunning() { m.running = !m.running }

// ToggleCell flips the spin at (x, y) and pauses the model. Out-of-range
// coordinates are ignored.
func (m *Model) ToggleCell(x, y int) bool {
	if !m.lattice.InBounds(x, y) {
		return false
	}
	m.lattice.Flip(x, y)
	m.running = false
	return true
}

// Field returns the current external field H.
func (m *Model) Field() float64 { return m.field }

// SetField overrides the field. With feedback on it is replaced after the
// next sweep.
func (m *Model) SetField(h float64) { m.field = h }

// Temperature returns T.
func (m *Model) Temperature() float64 { return m.temperature }

// SetTemperature updates T, rejecting values below MinTemperature.
func (m *Model) SetTemperature(t float64) bool {
	if !validTemperature(t) {
		return false
	}
	m.temperature = t
	return true
}

// Boundary returns the active boundary condition.
func (m *Model) Boundary() Boundary { return m.boundary }

// SetBoundary switches the boundary condition used by subsequent updates.
func (m *Model) SetBoundary(b Boundary) bool {
	if b > Periodic {
		return false
	}
	m.boundary = b
	return true
}

// Magnetization returns the sum of all spins.
func (m *Model) Magnetization() int { return m.lattice.Magnetization() }

// MeanMagnetization returns the magnetization per site in [-1, 1].
func (m *Model) MeanMagnetization() float64 {
	return float64(m.lattice.Magnetization()) / float64(m.lattice.Area())
}

// Frames returns the number of frames advanced since construction.
func (m *Model) Frames() int { return m.frames }

func init() {
	core.Register("ising", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
