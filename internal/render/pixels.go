package render

import (
	"image"
	"image/color"
)

// Default board colors.
var (
	AliveColor = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	DeadColor  = color.RGBA{R: 0x0e, G: 0x0e, B: 0x0e, A: 0xff}
	GridColor  = color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
)

// minGridScale is the smallest cell size that still gets an outline.
const minGridScale = 4

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// gridLines draws a one-pixel outline around every cell of a w*h board at the
// given scale. Pixels between lines stay transparent. It returns nil when the
// cells are too small to outline.
func gridLines(w, h, scale int, line color.Color) *image.RGBA {
	if scale < minGridScale || w <= 0 || h <= 0 {
		return nil
	}
	pw, ph := w*scale, h*scale
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	for py := 0; py < ph; py++ {
		for px := 0; px < pw; px++ {
			if px%scale == 0 || py%scale == 0 || px == pw-1 || py == ph-1 {
				img.Set(px, py, line)
			}
		}
	}
	return img
}
