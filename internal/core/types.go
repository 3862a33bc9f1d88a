package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a lattice simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Runner is implemented by sims that own their running/paused state.
type Runner interface {
	Running() bool
	SetRunning(running bool)
	// Advance performs one tick regardless of the running state.
	Advance()
}

// CellToggler is implemented by sims that accept manual single-cell edits.
type CellToggler interface {
	ToggleCell(x, y int) bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
