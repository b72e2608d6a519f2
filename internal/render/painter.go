//go:build ebiten

package render

import (
	"image/color"

	"cavegen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image of the grid and draws it
// scaled into place.
type GridPainter struct {
	layout Layout
	img    *ebiten.Image
	buf    []byte
	fresh  bool

	On  color.Color
	Off color.Color
}

// NewGridPainter allocates a painter for the provided layout.
func NewGridPainter(layout Layout) *GridPainter {
	return &GridPainter{
		layout: layout,
		img:    ebiten.NewImage(layout.W, layout.H),
		buf:    make([]byte, 4*layout.W*layout.H),
		On:     color.White,
		Off:    color.Black,
	}
}

// Invalidate forces the next Blit to re-upload the cells.
func (gp *GridPainter) Invalidate() { gp.fresh = false }

// Blit draws the grid onto dst. Pixels are only re-uploaded when dirty is set
// or after Invalidate.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, dirty bool) {
	cells := g.Cells()
	if len(cells) != gp.layout.W*gp.layout.H {
		return
	}
	if dirty || !gp.fresh {
		fillBinaryRGBA(gp.buf, cells, gp.On, gp.Off)
		gp.img.WritePixels(gp.buf)
		gp.fresh = true
	}

	b := dst.Bounds()
	x, y := gp.layout.TopLeft(b.Dx(), b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.layout.CellSize), float64(gp.layout.CellSize))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Layout returns the painter's cell layout.
func (gp *GridPainter) Layout() Layout { return gp.layout }
