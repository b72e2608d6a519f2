package core

import "fmt"

// Position addresses a single grid cell.
type Position struct {
	X, Y int
}

// Grid stores a 2D grid of liveness flags in row-major order.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates a grid with the given dimensions. Non-positive sizes are
// clamped to one.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Position maps a linear index back to its coordinates.
func (g *Grid) Position(i int) Position { return Position{X: i % g.W, Y: i / g.W} }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive returns the state of the cell at (x, y). It panics when the
// coordinates fall outside the grid.
func (g *Grid) Alive(x, y int) bool {
	g.mustContain(x, y)
	return g.data[g.Index(x, y)]
}

// Set overrides the state of the cell at (x, y). It panics when the
// coordinates fall outside the grid.
func (g *Grid) Set(x, y int, alive bool) {
	g.mustContain(x, y)
	g.data[g.Index(x, y)] = alive
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, alive bool)) {
	for y := 0; y < g.H; y++ {
		row := g.data[y*g.W : (y+1)*g.W]
		for x, alive := range row {
			fn(x, y, alive)
		}
	}
}

// Count returns the number of live cells.
func (g *Grid) Count() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

func (g *Grid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}
