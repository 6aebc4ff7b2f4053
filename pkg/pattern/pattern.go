// Package pattern reads and writes plain-text Life patterns: one board row per
// line, '1' for alive and '0' for dead, blank lines ignored.
package pattern

import (
	"strings"

	"lifegrid/pkg/core"
)

// Pattern is an immutable rectangular matrix of cell states.
type Pattern struct {
	w, h  int
	cells []bool
}

// Target is anything a pattern can be stamped onto.
type Target interface {
	// SetRegion overwrites cells starting at (left, top), skipping cells that
	// fall outside the target.
	SetRegion(top, left int, rows [][]bool)
}

// Source is anything a pattern can be captured from.
type Source interface {
	Size() core.Size
	IsAlive(x, y int) bool
}

// Width returns the number of columns.
func (p Pattern) Width() int { return p.w }

// Height returns the number of rows.
func (p Pattern) Height() int { return p.h }

// Alive reports the state of (x, y); out-of-range coordinates are dead.
func (p Pattern) Alive(x, y int) bool {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return false
	}
	return p.cells[y*p.w+x]
}

// Rows returns a copy of the pattern as a row-major matrix.
func (p Pattern) Rows() [][]bool {
	rows := make([][]bool, p.h)
	for y := range rows {
		rows[y] = append([]bool(nil), p.cells[y*p.w:(y+1)*p.w]...)
	}
	return rows
}

// String renders the pattern in file form without a trailing newline.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(p.h * (p.w + 1))
	for y := 0; y < p.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < p.w; x++ {
			if p.cells[y*p.w+x] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// Apply stamps p onto dst with its top-left corner at (left, top). Pattern
// cells overwrite destination cells; cells that land off the board are
// clipped.
func Apply(dst Target, p Pattern, top, left int) {
	dst.SetRegion(top, left, p.Rows())
}

// Capture snapshots the current state of src.
func Capture(src Source) Pattern {
	size := src.Size()
	p := Pattern{w: size.W, h: size.H, cells: make([]bool, size.W*size.H)}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			p.cells[y*size.W+x] = src.IsAlive(x, y)
		}
	}
	return p
}
