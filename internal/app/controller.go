package app

import (
	"time"

	"ising/internal/core"
)

// Action is a discrete input event mapped from the keyboard.
type Action uint8

// Actions produced by the keyboard mapping.
const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleRun
	ActionResume
	ActionStepOnce
	ActionReset
)

// Controller applies input to a simulation. Sims implementing core.Runner
// own their running state; for others the controller tracks it.
type Controller struct {
	sim      core.Sim
	runner   core.Runner
	toggler  core.CellToggler
	scale    int
	paused   bool
	tickOnce bool

	newSeed func() int64
}

// NewController wires a controller for sim drawn at scale pixels per cell.
func NewController(sim core.Sim, scale int) *Controller {
	if scale <= 0 {
		scale = 1
	}
	c := &Controller{sim: sim, scale: scale, newSeed: func() int64 { return time.Now().UnixNano() }}
	if r, ok := sim.(core.Runner); ok {
		c.runner = r
	}
	if t, ok := sim.(core.CellToggler); ok {
		c.toggler = t
	}
	return c
}

// Running reports whether the sim advances on Tick.
func (c *Controller) Running() bool {
	if c.runner != nil {
		return c.runner.Running()
	}
	return !c.paused
}

func (c *Controller) setRunning(running bool) {
	if c.runner != nil {
		c.runner.SetRunning(running)
		return
	}
	c.paused = !running
}

// Apply performs a and reports whether the application should quit.
func (c *Controller) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return true
	case ActionToggleRun:
		c.setRunning(!c.Running())
	case ActionResume:
		c.setRunning(true)
	case ActionStepOnce:
		c.tickOnce = true
	case ActionReset:
		c.sim.Reset(c.newSeed())
		c.tickOnce = false
	}
	return false
}

// CellAt maps window pixel coordinates to lattice coordinates.
func (c *Controller) CellAt(px, py int) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/c.scale, py/c.scale
	size := c.sim.Size()
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// Click toggles the cell under the pixel (px, py). Clicks outside the lattice
// are ignored.
func (c *Controller) Click(px, py int) bool {
	if c.toggler == nil {
		return false
	}
	x, y, ok := c.CellAt(px, py)
	if !ok {
		return false
	}
	if !c.toggler.ToggleCell(x, y) {
		return false
	}
	if c.runner == nil {
		c.paused = true
	}
	return true
}

// Tick advances the sim by one frame when running, or once after
// ActionStepOnce.
func (c *Controller) Tick() {
	once := c.tickOnce
	c.tickOnce = false
	if c.runner != nil {
		if c.runner.Running() {
			c.sim.Step()
			return
		}
		if once {
			c.runner.Advance()
		}
		return
	}
	if !c.paused || once {
		c.sim.Step()
	}
}
