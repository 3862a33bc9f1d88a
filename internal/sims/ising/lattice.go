package ising

import "ising/internal/core"

// Spin values stored in the lattice.
const (
	Up   int8 = 1
	Down int8 = -1
)

// Lattice is a fixed-size 2D grid of spins. Every cell holds exactly Up or
// Down; x addresses the column and y the row.
type Lattice struct {
	core.Grid[int8]
}

// NewLattice allocates a w×h lattice with every spin Up.
func NewLattice(w, h int) *Lattice {
	l := &Lattice{Grid: core.NewGrid[int8](w, h)}
	l.Fill(Up)
	return l
}

// Spins exposes the row-major spin slice. Callers must treat it as read-only.
func (l *Lattice) Spins() []int8 { return l.Cells() }

// Area returns W×H.
func (l *Lattice) Area() int { return l.W * l.H }

// At returns the spin at (x, y).
func (l *Lattice) At(x, y int) int8 { return l.Cells()[l.Index(x, y)] }

// Set stores Down for any negative s and Up otherwise.
func (l *Lattice) Set(x, y int, s int8) {
	l.Cells()[l.Index(x, y)] = normalize(s)
}

// Flip inverts the spin at (x, y).
func (l *Lattice) Flip(x, y int) {
	idx := l.Index(x, y)
	l.Cells()[idx] = -l.Cells()[idx]
}

// Fill sets every spin to the normalized value of s.
func (l *Lattice) Fill(s int8) {
	l.Grid.Fill(normalize(s))
}

// Randomize sets every spin independently to Up or Down with equal
// probability.
func (l *Lattice) Randomize(src Source) {
	spins := l.Cells()
	for i := range spins {
		if src.IntN(2) == 1 {
			spins[i] = Up
			continue
		}
		spins[i] = Down
	}
}

// Magnetization returns the sum of all spins.
func (l *Lattice) Magnetization() int {
	total := 0
	for _, s := range l.Cells() {
		total += int(s)
	}
	return total
}

func normalize(s int8) int8 {
	if s < 0 {
		return Down
	}
	return Up
}
