package render

import (
	"math"

	"cavegen/pkg/core"
)

// Layout places grid cells around a centered origin. Cell (x, y) is centered
// on (x*CellSize - W/2*CellSize, y*CellSize - H/2*CellSize), using integer
// division for the half extents.
type Layout struct {
	W, H     int
	CellSize int
}

// NewLayout returns a layout for a grid of the given size. Non-positive cell
// sizes are clamped to one pixel.
func NewLayout(size core.Size, cellSize int) Layout {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Layout{W: size.W, H: size.H, CellSize: cellSize}
}

// CellCenter returns the position of cell (x, y) relative to the origin.
func (l Layout) CellCenter(x, y int) (float64, float64) {
	cs := l.CellSize
	return float64(x*cs - l.W/2*cs), float64(y*cs - l.H/2*cs)
}

// ScreenSize returns a screen that fits the whole grid around its center,
// with half a cell of slack on each side.
func (l Layout) ScreenSize() (int, int) {
	return (l.W + 1) * l.CellSize, (l.H + 1) * l.CellSize
}

// TopLeft returns the screen position of the top-left corner of cell (0, 0)
// when the origin sits at the center of a screenW x screenH screen.
func (l Layout) TopLeft(screenW, screenH int) (float64, float64) {
	cx, cy := l.CellCenter(0, 0)
	half := float64(l.CellSize) / 2
	return float64(screenW)/2 + cx - half, float64(screenH)/2 + cy - half
}

// CellAt maps a screen pixel to the cell under it.
func (l Layout) CellAt(px, py, screenW, screenH int) (core.Position, bool) {
	ox, oy := l.TopLeft(screenW, screenH)
	cs := float64(l.CellSize)
	x := int(math.Floor((float64(px) - ox) / cs))
	y := int(math.Floor((float64(py) - oy) / cs))
	if x < 0 || x >= l.W || y < 0 || y >= l.H {
		return core.Position{}, false
	}
	return core.Position{X: x, Y: y}, true
}
