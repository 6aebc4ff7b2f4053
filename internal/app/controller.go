package app

import (
	"fmt"
	"log/slog"
	"time"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/pkg/pattern"
	"lifegrid/pkg/sims/life"
)

// Controller owns a Life board on behalf of a front end. It translates user
// intents (clicks, buttons, frame ticks) into engine operations and keeps no
// drawing state, so it runs the same with or without a window.
type Controller struct {
	engine   *life.Engine
	ticker   *core.FixedStep
	scale    int
	snapshot string
	logger   *slog.Logger
}

// NewController wraps engine. scale is the cell size in pixels and tps the
// number of generations per second while running.
func NewController(engine *life.Engine, scale, tps int, logger *slog.Logger) *Controller {
	if scale <= 0 {
		scale = 1
	}
	return &Controller{
		engine:   engine,
		ticker:   core.NewFixedStep(tps),
		scale:    scale,
		snapshot: "snapshot.txt",
		logger:   logger,
	}
}

// Setup builds a board from cfg: configured patterns are stamped onto an
// empty board, otherwise the board is filled at random. The board starts
// running unless cfg.Paused is set.
func Setup(cfg *config.Config, logger *slog.Logger) (*Controller, error) {
	engine, err := life.NewWithConfig(cfg.LifeConfig())
	if err != nil {
		return nil, err
	}
	placements, err := cfg.Placements()
	if err != nil {
		return nil, err
	}

	c := NewController(engine, cfg.Scale, cfg.TPS, logger)
	if len(placements) == 0 {
		engine.Randomize()
		logger.Debug("Board randomized.", "alive", engine.CountAlive())
	}
	for _, pl := range placements {
		pattern.Apply(engine, pl.Pattern, pl.Top, pl.Left)
		logger.Debug("Pattern placed.", "name", pl.Name, "top", pl.Top, "left", pl.Left,
			"width", pl.Pattern.Width(), "height", pl.Pattern.Height())
	}
	engine.SetRunning(!cfg.Paused)
	return c, nil
}

// Engine exposes the underlying board for rendering.
func (c *Controller) Engine() *life.Engine { return c.engine }

// Scale returns the cell size in pixels.
func (c *Controller) Scale() int { return c.scale }

// SetSnapshotPath changes where Snapshot writes the board.
func (c *Controller) SetSnapshotPath(path string) { c.snapshot = path }

// Click toggles the cell under the pixel (px, py). Clicks outside the board
// are ignored and reported as false.
func (c *Controller) Click(px, py int) bool {
	if px < 0 || py < 0 {
		return false
	}
	x, y := px/c.scale, py/c.scale
	size := c.engine.Size()
	if !size.Contains(x, y) {
		return false
	}
	c.engine.ToggleCell(x, y)
	return true
}

// TogglePlay starts or pauses automatic evolution.
func (c *Controller) TogglePlay() bool {
	running := c.engine.ToggleRunning()
	if running {
		c.ticker.Rearm()
	}
	c.logger.Debug("Play state changed.", "running", running, "generation", c.engine.Generation())
	return running
}

// Clear kills every cell and resets the generation counter.
func (c *Controller) Clear() {
	c.engine.Reset()
	c.logger.Debug("Board cleared.")
}

// StepOnce advances exactly one generation regardless of the play state.
func (c *Controller) StepOnce() {
	c.engine.Step()
}

// Randomize refills the board at random.
func (c *Controller) Randomize() {
	c.engine.Randomize()
	c.logger.Debug("Board randomized.", "alive", c.engine.CountAlive())
}

// Snapshot writes the current board as a pattern file.
func (c *Controller) Snapshot() error {
	if err := pattern.Save(c.snapshot, pattern.Capture(c.engine)); err != nil {
		c.logger.Error("Snapshot failed.", "path", c.snapshot, "error", err)
		return err
	}
	c.logger.Info("Snapshot saved.", "path", c.snapshot, "generation", c.engine.Generation())
	return nil
}

// Update is called once per frame with the time since the previous frame.
// It steps the board when running and a tick is due, and reports whether it
// did.
func (c *Controller) Update(delta time.Duration) bool {
	if !c.engine.Running() {
		return false
	}
	if !c.ticker.Advance(delta) {
		return false
	}
	c.engine.Step()
	return true
}

// Status summarizes the board for the status bar.
func (c *Controller) Status() string {
	state := "Paused"
	if c.engine.Running() {
		state = "Running"
	}
	return fmt.Sprintf("Generation: %d | Alive: %d | %s", c.engine.Generation(), c.engine.CountAlive(), state)
}
