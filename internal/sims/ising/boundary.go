package ising

import (
	"fmt"
	"strings"
)

// Boundary selects how neighbours outside the lattice are treated.
type Boundary uint8

const (
	// Dirichlet omits out-of-bounds neighbours.
	Dirichlet Boundary = iota
	// DirichletPositive treats out-of-bounds neighbours as Up.
	DirichletPositive
	// DirichletNegative treats out-of-bounds neighbours as Down.
	DirichletNegative
	// Neumann mirrors the cell's own spin across the edge.
	Neumann
	// Periodic wraps to the opposite edge.
	Periodic
)

// Boundaries lists every supported boundary condition.
var Boundaries = []Boundary{Dirichlet, DirichletPositive, DirichletNegative, Neumann, Periodic}

func (b Boundary) String() string {
	switch b {
	case Dirichlet:
		return "dirichlet"
	case DirichletPositive:
		return "dirichlet+"
	case DirichletNegative:
		return "dirichlet-"
	case Neumann:
		return "neumann"
	case Periodic:
		return "periodic"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// ParseBoundary maps a boundary name to its value.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dirichlet":
		return Dirichlet, nil
	case "dirichlet+", "dirichlet-positive":
		return DirichletPositive, nil
	case "dirichlet-", "dirichlet-negative":
		return DirichletNegative, nil
	case "neumann":
		return Neumann, nil
	case "periodic":
		return Periodic, nil
	}
	return 0, fmt.Errorf("ising: unknown boundary %q", s)
}

var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NeighborSum returns the sum of the four orthogonal neighbours of (x, y).
// Each edge that falls outside the lattice is resolved independently by b.
func (l *Lattice) NeighborSum(x, y int, b Boundary) int {
	sum := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if l.InBounds(nx, ny) {
			sum += int(l.At(nx, ny))
			continue
		}
		switch b {
		case Dirichlet:
		case DirichletPositive:
			sum += int(Up)
		case DirichletNegative:
			sum += int(Down)
		case Neumann:
			sum += int(l.At(x, y))
		case Periodic:
			sum += int(l.At(l.Wrap(nx, ny)))
		default:
			panic(fmt.Sprintf("ising: unknown boundary %d", uint8(b)))
		}
	}
	return sum
}
