package life

import (
	"errors"
	"slices"
	"testing"
)

func newBoard(t *testing.T, w, h int, alive ...[2]int) *Engine {
	t.Helper()
	e, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	for _, c := range alive {
		e.SetCell(c[0], c[1], true)
	}
	return e
}

func expectAlive(t *testing.T, e *Engine, expects map[[2]int]bool) {
	t.Helper()
	size := e.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := e.IsAlive(x, y)
			if expects[[2]int{x, y}] != alive {
				t.Fatalf("gen %d: cell (%d,%d) alive=%v, expected %v", e.Generation(), x, y, alive, !alive)
			}
		}
	}
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("New(%d, %d) err = %v, expected ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestNewStartsEmptyAndPaused(t *testing.T) {
	e := newBoard(t, 7, 3)
	if e.Size().W != 7 || e.Size().H != 3 {
		t.Fatalf("size = %+v, expected 7x3", e.Size())
	}
	if len(e.Cells()) != 21 {
		t.Fatalf("cells = %d, expected 21", len(e.Cells()))
	}
	if e.CountAlive() != 0 || e.Generation() != 0 || e.Running() {
		t.Fatalf("fresh board: alive=%d gen=%d running=%v", e.CountAlive(), e.Generation(), e.Running())
	}
}

func TestResetClearsBoardAndGeneration(t *testing.T) {
	e := newBoard(t, 5, 5, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 1})
	e.Step()
	e.Step()
	e.SetRunning(true)

	e.Reset()

	if e.CountAlive() != 0 {
		t.Fatalf("reset left %d alive cells", e.CountAlive())
	}
	if e.Generation() != 0 {
		t.Fatalf("reset left generation %d", e.Generation())
	}
	if !e.Running() {
		t.Fatal("reset must not change the running flag")
	}
}

func TestToggleRunning(t *testing.T) {
	e := newBoard(t, 2, 2)
	if !e.ToggleRunning() || !e.Running() {
		t.Fatal("first toggle should start the simulation")
	}
	if e.ToggleRunning() || e.Running() {
		t.Fatal("second toggle should pause the simulation")
	}
}

func TestToggleCellIsItsOwnInverse(t *testing.T) {
	e := newBoard(t, 5, 5, [2]int{2, 2})
	before := slices.Clone(e.Cells())
	for _, c := range [][2]int{{0, 0}, {2, 2}, {4, 3}} {
		e.ToggleCell(c[0], c[1])
		e.ToggleCell(c[0], c[1])
	}
	if !slices.Equal(before, e.Cells()) {
		t.Fatal("double toggle changed the board")
	}
	e.ToggleCell(0, 0)
	if !e.IsAlive(0, 0) {
		t.Fatal("toggle should bring a dead cell to life")
	}
}

func TestOutOfRangeAccessIsIgnored(t *testing.T) {
	e := newBoard(t, 4, 3, [2]int{1, 1})
	before := slices.Clone(e.Cells())
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}, {-5, -5}} {
		e.ToggleCell(c[0], c[1])
		e.SetCell(c[0], c[1], true)
		if e.IsAlive(c[0], c[1]) {
			t.Fatalf("IsAlive(%d,%d) = true for out-of-range cell", c[0], c[1])
		}
	}
	if !slices.Equal(before, e.Cells()) {
		t.Fatal("out-of-range access mutated the board")
	}
}

func TestSetCellExplicitState(t *testing.T) {
	e := newBoard(t, 3, 3)
	e.SetCell(1, 2, true)
	e.SetCell(1, 2, true)
	if !e.IsAlive(1, 2) || e.CountAlive() != 1 {
		t.Fatal("SetCell(true) should be idempotent")
	}
	e.SetCell(1, 2, false)
	if e.IsAlive(1, 2) {
		t.Fatal("SetCell(false) should kill the cell")
	}
}

func TestCountAlive(t *testing.T) {
	e := newBoard(t, 5, 5, [2]int{0, 0}, [2]int{1, 1})
	if got := e.CountAlive(); got != 2 {
		t.Fatalf("CountAlive() = %d, expected 2", got)
	}
}

func TestIsolatedCellDies(t *testing.T) {
	e := newBoard(t, 5, 5, [2]int{0, 0})
	e.Step()
	if e.IsAlive(0, 0) {
		t.Fatal("isolated cell should die of underpopulation")
	}
	if e.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", e.Generation())
	}
}

func TestLiveCellWithTwoNeighborsSurvives(t *testing.T) {
	e := newBoard(t, 5, 5, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1})
	e.Step()
	if !e.IsAlive(0, 0) {
		t.Fatal("cell with two neighbors should survive")
	}
}

func TestLiveCellWithThreeNeighborsSurvives(t *testing.T) {
	e := newBoard(t, 5, 5, [2]int{2, 2}, [2]int{1, 2}, [2]int{3, 2}, [2]int{2, 1})
	e.Step()
	if !e.IsAlive(2, 2) {
		t.Fatal("cell with three neighbors should survive")
	}
}

func TestReproductionGliderSeed(t *testing.T) {
	e := newBoard(t, 5, 5, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	e.Step()
	if !e.IsAlive(0, 0) {
		t.Fatal("dead cell with exactly three neighbors should be born")
	}
}

func TestOverpopulation(t *testing.T) {
	e := newBoard(t, 5, 5, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 0})
	e.Step()
	if e.IsAlive(1, 0) {
		t.Fatal("cell with four neighbors should die of overpopulation")
	}
}

func TestDeadCellNeedsExactlyThreeNeighbors(t *testing.T) {
	neighbors := [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
	for n := 0; n <= len(neighbors); n++ {
		e := newBoard(t, 7, 7, neighbors[:n]...)
		e.Step()
		if got, want := e.IsAlive(2, 2), n == 3; got != want {
			t.Fatalf("dead cell with %d neighbors alive=%v, expected %v", n, got, want)
		}
	}
}

func TestLiveCellSurvivalByNeighborCount(t *testing.T) {
	neighbors := [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
	for n := 0; n <= len(neighbors); n++ {
		e := newBoard(t, 7, 7, append([][2]int{{2, 2}}, neighbors[:n]...)...)
		e.Step()
		if got, want := e.IsAlive(2, 2), n == 2 || n == 3; got != want {
			t.Fatalf("live cell with %d neighbors alive=%v, expected %v", n, got, want)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := newBoard(t, 5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	e.Step()
	expectAlive(t, e, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	e.Step()
	expectAlive(t, e, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
}

func TestBlockAcrossCornersIsStillLife(t *testing.T) {
	corners := [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}}
	e := newBoard(t, 5, 5, corners...)
	before := slices.Clone(e.Cells())
	e.Step()
	if !slices.Equal(before, e.Cells()) {
		t.Fatal("block wrapped across the corners should be a still life on a torus")
	}
}

func TestGliderTravelsAroundTorus(t *testing.T) {
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	e := newBoard(t, 8, 8, glider...)
	start := slices.Clone(e.Cells())

	for i := 0; i < 4; i++ {
		e.Step()
	}
	shifted := map[[2]int]bool{}
	for _, c := range glider {
		shifted[[2]int{c[0] + 1, c[1] + 1}] = true
	}
	expectAlive(t, e, shifted)

	for i := 4; i < 32; i++ {
		e.Step()
	}
	if !slices.Equal(start, e.Cells()) {
		t.Fatal("glider should return to its start after 32 generations on an 8x8 torus")
	}
	if e.Generation() != 32 {
		t.Fatalf("generation = %d, expected 32", e.Generation())
	}
}

func TestRandomizeProducesMixedBoard(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height, cfg.Seed = 5, 5, seed
		e, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatal(err)
		}
		e.Step()
		e.SetRunning(true)
		e.Randomize()

		alive := e.CountAlive()
		if alive == 0 || alive == 25 {
			t.Fatalf("seed %d: randomize produced %d/25 alive cells", seed, alive)
		}
		if e.Generation() != 0 {
			t.Fatalf("seed %d: randomize left generation %d", seed, e.Generation())
		}
		if !e.Running() {
			t.Fatalf("seed %d: randomize changed the running flag", seed)
		}
	}
}

func TestRandomizeDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	a, _ := NewWithConfig(cfg)
	b, _ := NewWithConfig(cfg)
	a.Randomize()
	b.Randomize()
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("equal seeds should produce equal boards")
	}
}

func TestRandomizeDensityExtremes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 0
	e, _ := NewWithConfig(cfg)
	e.SetCell(3, 3, true)
	e.Randomize()
	if e.CountAlive() != 0 {
		t.Fatalf("density 0 produced %d alive cells", e.CountAlive())
	}

	cfg.Density = 1
	e, _ = NewWithConfig(cfg)
	e.Randomize()
	if e.CountAlive() != cfg.Width*cfg.Height {
		t.Fatalf("density 1 produced %d alive cells", e.CountAlive())
	}
}

func TestSetRegionClipsAtEdges(t *testing.T) {
	e := newBoard(t, 4, 4, [2]int{0, 0})
	rows := [][]bool{
		{true, false, true},
		{false, true, true},
	}
	e.SetRegion(3, 2, rows)

	expectAlive(t, e, map[[2]int]bool{
		{0, 0}: true,
		{2, 3}: true,
	})

	e.SetRegion(-1, -1, [][]bool{{true, true}, {true, false}})
	if e.IsAlive(0, 0) {
		t.Fatal("SetRegion should overwrite destination cells with dead pattern cells")
	}
}
