package ising

import "testing"

func sampleLattice() *Lattice {
	return latticeFromRows([][]int8{
		{1, -1, 1, 1},
		{-1, -1, 1, -1},
		{1, 1, -1, 1},
	})
}

func TestNeighborSumCorner(t *testing.T) {
	l := sampleLattice()
	w, h := l.W, l.H
	right, left := int(l.At(1, 0)), int(l.At(w-1, 0))
	down, up := int(l.At(0, 1)), int(l.At(0, h-1))
	own := int(l.At(0, 0))

	cases := []struct {
		b    Boundary
		want int
	}{
		{Periodic, right + left + down + up},
		{Dirichlet, right + down},
		{DirichletPositive, right + down + 2},
		{DirichletNegative, right + down - 2},
		{Neumann, 2*own + right + down},
	}
	for _, tc := range cases {
		if got := l.NeighborSum(0, 0, tc.b); got != tc.want {
			t.Fatalf("%s corner sum = %d, expected %d", tc.b, got, tc.want)
		}
	}
}

func TestNeighborSumRightEdge(t *testing.T) {
	l := sampleLattice()
	cases := map[Boundary]int{
		Periodic:          2,
		Dirichlet:         3,
		DirichletPositive: 4,
		DirichletNegative: 2,
		Neumann:           2,
	}
	for b, want := range cases {
		if got := l.NeighborSum(3, 1, b); got != want {
			t.Fatalf("%s edge sum = %d, expected %d", b, got, want)
		}
	}
}

func TestNeighborSumInteriorIgnoresBoundary(t *testing.T) {
	l := sampleLattice()
	for _, b := range Boundaries {
		if got := l.NeighborSum(1, 1, b); got != 0 {
			t.Fatalf("%s interior sum = %d, expected 0", b, got)
		}
	}
}

func TestPeriodicSingleCellSeesItself(t *testing.T) {
	l := NewLattice(1, 1)
	l.Set(0, 0, Down)
	if got := l.NeighborSum(0, 0, Periodic); got != -4 {
		t.Fatalf("1x1 periodic sum = %d, expected -4", got)
	}
	if got := l.NeighborSum(0, 0, Dirichlet); got != 0 {
		t.Fatalf("1x1 dirichlet sum = %d, expected 0", got)
	}
}

func TestNeighborSumUnknownBoundaryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown boundary")
		}
	}()
	NewLattice(2, 2).NeighborSum(0, 0, Boundary(99))
}

func TestParseBoundary(t *testing.T) {
	for _, b := range Boundaries {
		got, err := ParseBoundary(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseBoundary(%q) = %v, %v", b.String(), got, err)
		}
	}
	aliases := map[string]Boundary{
		"Dirichlet-Positive":   DirichletPositive,
		" dirichlet-negative ": DirichletNegative,
		"PERIODIC":             Periodic,
	}
	for in, want := range aliases {
		if got, err := ParseBoundary(in); err != nil || got != want {
			t.Fatalf("ParseBoundary(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseBoundary("torus"); err == nil {
		t.Fatal("expected error for unknown boundary name")
	}
}
