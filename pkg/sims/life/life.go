package life

import (
	"errors"
	"fmt"

	"lifegrid/pkg/core"
)

// ErrInvalidDimensions is returned when a board is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("life: invalid dimensions")

// Engine implements Conway's Game of Life with toroidal wrapping. It owns the
// board, the generation counter and the run/pause flag. An Engine is not safe
// for concurrent use.
type Engine struct {
	cur *core.Grid
	nxt *core.Grid

	generation int
	running    bool

	rng     *core.RNG
	density float64
}

// New returns an all-dead board with the provided dimensions and default
// randomization settings.
func New(w, h int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-dead board configured from cfg.
func NewWithConfig(cfg Config) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	return &Engine{
		cur:     core.NewGrid(cfg.Width, cfg.Height),
		nxt:     core.NewGrid(cfg.Width, cfg.Height),
		rng:     core.NewRNG(cfg.Seed),
		density: cfg.Density,
	}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// Cells exposes the current grid values in row-major order. The slice is
// replaced on every Step; callers must not hold on to it across steps.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Generation returns the number of steps since the last reset or randomize.
func (e *Engine) Generation() int { return e.generation }

// Running reports whether automatic evolution is enabled.
func (e *Engine) Running() bool { return e.running }

// SetRunning sets the run/pause flag.
func (e *Engine) SetRunning(running bool) { e.running = running }

// ToggleRunning flips the run/pause flag and returns the new value.
func (e *Engine) ToggleRunning() bool {
	e.running = !e.running
	return e.running
}

// Reset clears the board and the generation counter.
func (e *Engine) Reset() {
	e.cur.Clear()
	e.generation = 0
}

// ToggleCell flips (x, y). Out-of-range coordinates are ignored.
func (e *Engine) ToggleCell(x, y int) { e.cur.Toggle(x, y) }

// SetCell sets (x, y) alive or dead. Out-of-range coordinates are ignored.
func (e *Engine) SetCell(x, y int, alive bool) { e.cur.Set(x, y, alive) }

// IsAlive reports the state of (x, y); out-of-range coordinates are dead.
func (e *Engine) IsAlive(x, y int) bool { return e.cur.Alive(x, y) }

// SetRegion overwrites the cells starting at row top, column left with rows.
// Cells that land outside the board are skipped.
func (e *Engine) SetRegion(top, left int, rows [][]bool) {
	for dy, row := range rows {
		for dx, alive := range row {
			e.cur.Set(left+dx, top+dy, alive)
		}
	}
}

// Randomize fills the board at the configured density and resets the
// generation counter.
func (e *Engine) Randomize() {
	e.rng.FillBinary(e.cur.Cells(), e.density)
	e.generation = 0
}

// CountAlive returns the number of alive cells.
func (e *Engine) CountAlive() int { return e.cur.Count() }

// Step advances the simulation by one generation.
func (e *Engine) Step() {
	w, h := e.cur.W, e.cur.H
	src, dst := e.cur.Cells(), e.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := e.cur.Neighbors(x, y)
			idx := y*w + x
			alive := src[idx] == 1
			dst[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				dst[idx] = 1
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}
