package app

import (
	"slices"
	"testing"

	"ising/internal/core"
	"ising/internal/sims/ising"
)

type countingSim struct {
	steps  int
	resets []int64
}

func (s *countingSim) Name() string     { return "counting" }
func (s *countingSim) Size() core.Size  { return core.Size{W: 4, H: 3} }
func (s *countingSim) Reset(seed int64) { s.resets = append(s.resets, seed) }
func (s *countingSim) Step()            { s.steps++ }
func (s *countingSim) Cells() []uint8   { return make([]uint8, 12) }

func newIsingController(t *testing.T) (*Controller, *ising.Model) {
	t.Helper()
	cfg := ising.DefaultConfig()
	cfg.Width, cfg.Height = 6, 4
	cfg.Temperature = 2
	m := ising.NewWithConfig(cfg)
	return NewController(m, 10), m
}

func TestControllerQuit(t *testing.T) {
	c, _ := newIsingController(t)
	if !c.Apply(ActionQuit) {
		t.Fatal("quit action must request termination")
	}
	for _, a := range []Action{ActionNone, ActionToggleRun, ActionResume, ActionStepOnce} {
		if c.Apply(a) {
			t.Fatalf("action %d requested termination", a)
		}
	}
}

func TestControllerToggleRunDrivesModel(t *testing.T) {
	c, m := newIsingController(t)
	c.Apply(ActionToggleRun)
	if m.Running() || c.Running() {
		t.Fatal("space should pause the model")
	}
	c.Tick()
	if m.Frames() != 0 {
		t.Fatal("paused tick advanced the model")
	}
	c.Apply(ActionResume)
	if !m.Running() {
		t.Fatal("enter should resume the model")
	}
	c.Tick()
	if m.Frames() != 1 {
		t.Fatalf("frames = %d after running tick", m.Frames())
	}
}

func TestControllerStepOnceWhilePaused(t *testing.T) {
	c, m := newIsingController(t)
	m.SetRunning(false)
	c.Apply(ActionStepOnce)
	c.Tick()
	c.Tick()
	if m.Frames() != 1 {
		t.Fatalf("frames = %d, expected exactly one", m.Frames())
	}
	if m.Running() {
		t.Fatal("single step must keep the model paused")
	}
}

func TestControllerClickTogglesAndPauses(t *testing.T) {
	c, m := newIsingController(t)
	before := m.Lattice().At(2, 1)
	if !c.Click(25, 19) {
		t.Fatal("click inside the lattice ignored")
	}
	if m.Lattice().At(2, 1) != -before {
		t.Fatal("click did not flip cell (2,1)")
	}
	if m.Running() {
		t.Fatal("click must pause the model")
	}

	snapshot := slices.Clone(m.Lattice().Spins())
	for _, p := range [][2]int{{60, 0}, {0, 40}, {-1, 5}, {5, -1}} {
		if c.Click(p[0], p[1]) {
			t.Fatalf("click %v outside the lattice accepted", p)
		}
	}
	if !slices.Equal(snapshot, m.Lattice().Spins()) {
		t.Fatal("out-of-range click changed the lattice")
	}
}

func TestControllerResetUsesFreshSeed(t *testing.T) {
	sim := &countingSim{}
	c := NewController(sim, 1)
	seeds := []int64{11, 22}
	c.newSeed = func() int64 {
		s := seeds[0]
		seeds = seeds[1:]
		return s
	}
	c.Apply(ActionReset)
	c.Apply(ActionReset)
	if !slices.Equal(sim.resets, []int64{11, 22}) {
		t.Fatalf("resets = %v", sim.resets)
	}
}

func TestControllerTracksPauseForPlainSims(t *testing.T) {
	sim := &countingSim{}
	c := NewController(sim, 1)
	c.Tick()
	c.Apply(ActionToggleRun)
	c.Tick()
	c.Apply(ActionStepOnce)
	c.Tick()
	c.Tick()
	if sim.steps != 2 {
		t.Fatalf("steps = %d, expected 2", sim.steps)
	}
	if c.Click(0, 0) {
		t.Fatal("sim without CellToggler accepted a click")
	}
}

func TestCellAt(t *testing.T) {
	c, _ := newIsingController(t)
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{59, 39, 5, 3, true},
		{60, 39, 0, 0, false},
		{10, 10, 1, 1, true},
	}
	for _, tc := range cases {
		x, y, ok := c.CellAt(tc.px, tc.py)
		if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v)", tc.px, tc.py, x, y, ok)
		}
	}
}
