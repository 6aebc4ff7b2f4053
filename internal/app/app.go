//go:build ebiten

package app

import (
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD

	boardW, boardH int
}

// New constructs a Game for the provided controller.
func New(ctrl *Controller) *Game {
	size := ctrl.Engine().Size()
	gp := render.NewGridPainter(size.W, size.H, ctrl.Scale())
	w, h := gp.Size()
	return &Game{
		ctrl:    ctrl,
		painter: gp,
		hud:     ui.NewHUD(w),
		boardW:  w,
		boardH:  h,
	}
}

// WindowSize returns the window dimensions in pixels.
func (g *Game) WindowSize() (int, int) { return g.boardW, g.boardH + ui.Height }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		// Failures are logged by the controller; the window stays up.
		_ = g.ctrl.Snapshot()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Click(ebiten.CursorPosition())
	}

	g.ctrl.Update(frameDelta())
	return nil
}

// Draw renders the board and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Engine().Cells(), render.AliveColor, render.DeadColor)
	g.hud.Draw(screen, g.boardH, g.ctrl.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

func frameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
