package render

import "image/color"

// Palette holds the two spin colors and the background.
type Palette struct {
	Up         color.Color
	Down       color.Color
	Background color.Color
}

// DefaultPalette draws up spins blue and down spins red on white.
func DefaultPalette() Palette {
	return Palette{
		Up:         color.RGBA{R: 0, G: 0, B: 255, A: 255},
		Down:       color.RGBA{R: 255, G: 0, B: 0, A: 255},
		Background: color.White,
	}
}

type rgba [4]uint8

func toBytes(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillSpinDisks rasterizes binary cell data (1 = up) into buf as one filled
// disk of radius scale/2 per cell, clipped to the cell's scale×scale square.
// buf is an RGBA image of (w·scale)×(h·scale) pixels. Mismatched inputs leave
// buf untouched.
func fillSpinDisks(buf []byte, cells []uint8, w, h, scale int, pal Palette) bool {
	if w <= 0 || h <= 0 || scale <= 0 || len(cells) != w*h {
		return false
	}
	stride := w * scale * 4
	if len(buf) < stride*h*scale {
		return false
	}
	up, down, bg := toBytes(pal.Up), toBytes(pal.Down), toBytes(pal.Background)
	r := scale / 2
	r2 := r * r
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fg := down
			if cells[y*w+x] != 0 {
				fg = up
			}
			for py := 0; py < scale; py++ {
				dy := py - r
				row := (y*scale+py)*stride + x*scale*4
				for px := 0; px < scale; px++ {
					dx := px - r
					col := bg
					if dx*dx+dy*dy <= r2 {
						col = fg
					}
					base := row + px*4
					buf[base+0] = col[0]
					buf[base+1] = col[1]
					buf[base+2] = col[2]
					buf[base+3] = col[3]
				}
			}
		}
	}
	return true
}
