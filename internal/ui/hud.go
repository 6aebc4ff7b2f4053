//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
)

// Height is the vertical space the status bar occupies below the board.
const Height = 2*hudLineHeight + 2*hudPadding

// Help lists the keyboard bindings shown under the status line.
const Help = "Click: toggle  Space: play/pause  N: step  C: clear  R: random  P: save"

var (
	hudBackground = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	hudForeground = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	hudMuted      = color.RGBA{R: 0x80, G: 0x80, B: 0x88, A: 0xff}
)

// HUD renders the status bar below the board.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 1
	}
	return &HUD{width: width, panel: ebiten.NewImage(width, Height)}
}

// Draw paints the status line and key help with the panel's top edge at
// offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, status string) {
	if h == nil {
		return
	}
	h.panel.Fill(hudBackground)

	face := basicfont.Face7x13
	text.Draw(h.panel, status, face, hudPadding, hudPadding+face.Ascent, hudForeground)
	text.Draw(h.panel, Help, face, hudPadding, hudPadding+hudLineHeight+face.Ascent, hudMuted)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
