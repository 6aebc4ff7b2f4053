// Command lifestep runs a Life board without a window and reports on it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/pkg/pattern"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, outW, logW io.Writer) error {
	fs := flag.NewFlagSet("lifestep", flag.ContinueOnError)
	fs.SetOutput(logW)

	cfg := config.NewConfig()
	cfg.Bind(fs)
	steps := fs.Int("steps", 100, "generations to simulate")
	every := fs.Int("every", 10, "log progress every N generations (0 disables)")
	out := fs.String("out", "", "write the final board to this pattern file")
	printBoard := fs.Bool("print", false, "print the final board to stdout")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	resolved, err := cfg.Resolve(fs)
	if err != nil {
		return err
	}
	logger := resolved.Logger(logW)

	ctrl, err := app.Setup(resolved, logger)
	if err != nil {
		return err
	}
	board := ctrl.Engine()
	logger.Info("Board ready.", "width", resolved.Width, "height", resolved.Height, "alive", board.CountAlive())

	for board.Generation() < *steps {
		ctrl.StepOnce()
		alive := board.CountAlive()
		if *every > 0 && board.Generation()%*every == 0 {
			logger.Info("Progress.", "generation", board.Generation(), "alive", alive)
		}
		if alive == 0 {
			logger.Info("Board died out.", "generation", board.Generation())
			break
		}
	}
	fmt.Fprintln(outW, ctrl.Status())

	if *printBoard {
		if _, err := pattern.Capture(board).WriteTo(outW); err != nil {
			return err
		}
	}
	if *out != "" {
		ctrl.SetSnapshotPath(*out)
		if err := ctrl.Snapshot(); err != nil {
			return err
		}
	}
	return nil
}
