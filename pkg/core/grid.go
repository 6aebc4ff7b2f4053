package core

// Grid stores a 2D grid of binary cell values (0 dead, 1 alive) in row-major
// order. Dimensions are fixed for the lifetime of the grid.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Callers are
// expected to validate dimensions; non-positive values are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies within [0, W) × [0, H).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Alive returns the state of (x, y), or false when it is out of range.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[g.Index(x, y)] != 0
}

// Set writes the state of (x, y). Out-of-range coordinates are ignored and
// reported by the return value.
func (g *Grid) Set(x, y int, alive bool) bool {
	if !g.InBounds(x, y) {
		return false
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(x, y)] = v
	return true
}

// Toggle flips (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Toggle(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	idx := g.Index(x, y)
	g.data[idx] ^= 1
	return true
}

// Neighbors counts the alive cells among the eight positions around (x, y)
// on a torus.
func (g *Grid) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			n += int(g.data[ny*g.W+nx])
		}
	}
	return n
}

// Count returns the number of alive cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
