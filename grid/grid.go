// Package grid provides toroidal 2-D storage and the 3x3 neighborhood view
// used as the unit of computation for one cell per tick.
package grid

import "fmt"

// Grid is a dense width×height array of T with wrap-around coordinates.
// Every integer coordinate resolves to a cell; there is no out-of-bounds state.
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

// New allocates a zero-filled grid. Panics if either dimension is not positive.
func New[T any](width, height int) *Grid[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	return &Grid[T]{
		cells:  make([]T, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the total number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Wrap resolves signed coordinates onto the torus.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	return wrap(x, g.width), wrap(y, g.height)
}

// Index returns the flat index of the (wrapped) coordinate.
func (g *Grid[T]) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.width + x
}

// Coord converts a flat index back into a coordinate.
func (g *Grid[T]) Coord(i int) (int, int) {
	i = wrap(i, len(g.cells))
	return i % g.width, i / g.width
}

// Get returns a pointer to the cell at (x, y). The pointer stays valid for
// the lifetime of the grid.
func (g *Grid[T]) Get(x, y int) *T {
	return &g.cells[g.Index(x, y)]
}

// At returns a copy of the cell at (x, y).
func (g *Grid[T]) At(x, y int) T {
	return g.cells[g.Index(x, y)]
}

// Set overwrites the cell at (x, y).
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.Index(x, y)] = v
}

// Fill overwrites every cell with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Cells exposes the backing slice in row-major order for read-mostly passes
// (telemetry totals, rendering).
func (g *Grid[T]) Cells() []T {
	return g.cells
}

// wrap computes the positive modulo (Go's % can return negative).
func wrap(n, size int) int {
	n %= size
	if n < 0 {
		n += size
	}
	return n
}
