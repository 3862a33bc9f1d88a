//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// SpinPainter keeps a full-resolution image of the lattice and refreshes it
// from binary cell data each frame.
type SpinPainter struct {
	w, h, scale int
	img         *ebiten.Image
	buf         []byte
}

// NewSpinPainter allocates a painter for a w×h lattice drawn at scale pixels
// per cell.
func NewSpinPainter(w, h, scale int) *SpinPainter {
	if scale <= 0 {
		scale = 1
	}
	sp := &SpinPainter{w: w, h: h, scale: scale, buf: make([]byte, 4*w*h*scale*scale)}
	sp.img = ebiten.NewImage(w*scale, h*scale)
	return sp
}

// Draw rasterizes cells and draws the result at the origin of dst.
func (sp *SpinPainter) Draw(dst *ebiten.Image, cells []uint8, pal Palette) {
	if !fillSpinDisks(sp.buf, cells, sp.w, sp.h, sp.scale, pal) {
		return
	}
	sp.img.WritePixels(sp.buf)
	dst.DrawImage(sp.img, nil)
}

// Size returns the pixel dimensions of the painted image.
func (sp *SpinPainter) Size() (int, int) { return sp.w * sp.scale, sp.h * sp.scale }
