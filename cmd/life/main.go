//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	snapshot := flag.String("snapshot", "snapshot.txt", "file written when P is pressed")
	flag.Parse()

	resolved, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		slog.Error("Invalid configuration.", "error", err)
		os.Exit(2)
	}
	logger := resolved.Logger(os.Stderr)

	ctrl, err := app.Setup(resolved, logger)
	if err != nil {
		logger.Error("Failed to set up board.", "error", err)
		os.Exit(1)
	}
	ctrl.SetSnapshotPath(*snapshot)

	game := app.New(ctrl)
	w, h := game.WindowSize()
	logger.Info("Starting.", "width", resolved.Width, "height", resolved.Height,
		"tps", resolved.TPS, "running", ctrl.Engine().Running())

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("Game loop failed.", "error", err)
		os.Exit(1)
	}
}
