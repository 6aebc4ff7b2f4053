//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data and draws
// it scaled up, with cell outlines when the cells are large enough.
type GridPainter struct {
	w, h  int
	scale int
	img   *ebiten.Image
	lines *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a grid of size w*h drawn at scale.
func NewGridPainter(w, h, scale int) *GridPainter {
	gp := &GridPainter{w: w, h: h, scale: scale, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	if outline := gridLines(w, h, scale, GridColor); outline != nil {
		gp.lines = ebiten.NewImageFromImage(outline)
	}
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.scale), float64(gp.scale))
	dst.DrawImage(gp.img, op)
	if gp.lines != nil {
		dst.DrawImage(gp.lines, nil)
	}
}

// Size returns the on-screen dimensions in pixels.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.scale, gp.h * gp.scale }
