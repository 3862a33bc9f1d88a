//go:build ebiten

package ui

import (
	"image/color"

	"ising/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type energyMaskProvider interface {
	EnergyMask() []float32
}

// Overlay highlights sites whose flip would lower the local energy. Key 1
// toggles it.
type Overlay struct {
	sim     core.Sim
	scale   int
	show    bool
	tint    color.RGBA
	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, tint: color.RGBA{R: 255, G: 210, B: 40, A: 150}}
}

// Update handles the overlay toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(energyMaskProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	mask := provider.EnergyMask()
	if len(mask) != total {
		return
	}
	for i, v := range mask {
		base := i * 4
		if v <= 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		// Premultiplied alpha.
		a := uint16(o.tint.A)
		o.maskBuf[base+0] = uint8(uint16(o.tint.R) * a / 255)
		o.maskBuf[base+1] = uint8(uint16(o.tint.G) * a / 255)
		o.maskBuf[base+2] = uint8(uint16(o.tint.B) * a / 255)
		o.maskBuf[base+3] = o.tint.A
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}
