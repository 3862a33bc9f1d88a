//go:build ebiten

package app

import (
	"ising/internal/core"
	"ising/internal/render"
	"ising/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	ctrl    *Controller
	painter *render.SpinPainter
	palette render.Palette
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep

	scale    int
	hudWidth int
}

var keyActions = []struct {
	keys   []ebiten.Key
	action Action
}{
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, ActionQuit},
	{[]ebiten.Key{ebiten.KeySpace}, ActionToggleRun},
	{[]ebiten.Key{ebiten.KeyEnter}, ActionResume},
	{[]ebiten.Key{ebiten.KeyN}, ActionStepOnce},
	{[]ebiten.Key{ebiten.KeyR}, ActionReset},
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	hudWidth := cfg.HUDWidth
	if hudWidth < 0 {
		hudWidth = 0
	}
	size := sim.Size()
	g := &Game{
		sim:      sim,
		ctrl:     NewController(sim, scale),
		painter:  render.NewSpinPainter(size.W, size.H, scale),
		palette:  render.DefaultPalette(),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
	}
	if cfg.SPS > 0 {
		g.stepper = core.NewFixedStep(cfg.SPS)
	}
	return g
}

func (g *Game) viewSize() (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if !inpututil.IsKeyJustPressed(k) {
				continue
			}
			wasRunning := g.ctrl.Running()
			if g.ctrl.Apply(ka.action) {
				return ebiten.Termination
			}
			if g.stepper != nil && !wasRunning && g.ctrl.Running() {
				g.stepper.Reset()
			}
		}
	}

	viewW, _ := g.viewSize()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); x < viewW {
			g.ctrl.Click(x, y)
		}
	}

	g.overlay.Update()
	g.hud.Update(viewW)

	if g.stepper == nil || g.stepper.ShouldStep() {
		g.ctrl.Tick()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	g.painter.Draw(screen, g.sim.Cells(), g.palette)
	g.overlay.Draw(screen)
	viewW, _ := g.viewSize()
	g.hud.Draw(screen, viewW, g.scale)
}

// Layout returns the logical screen size: the lattice view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	return w + g.hudWidth, h
}
