package cave

import (
	"cavegen/pkg/core"

	"github.com/ojrac/opensimplex-go"
)

type filler interface {
	fill(g *core.Grid)
}

type coinFill struct {
	src core.BitSource
}

func (f coinFill) fill(g *core.Grid) {
	core.FillBinary(f.src, g.Cells())
}

// noiseFill samples a new simplex field per fill, seeded from src, so
// consecutive resets still differ.
type noiseFill struct {
	src       core.BitSource
	scale     float64
	threshold float64
}

func (f noiseFill) fill(g *core.Grid) {
	noise := opensimplex.NewNormalized(seedFrom(f.src))
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := noise.Eval2(float64(x)*f.scale, float64(y)*f.scale)
			cells[g.Index(x, y)] = v > f.threshold
		}
	}
}

func seedFrom(src core.BitSource) int64 {
	if r, ok := src.(*core.RNG); ok {
		return r.Int64()
	}
	var seed int64
	for i := 0; i < 63; i++ {
		seed <<= 1
		if src.Bool() {
			seed |= 1
		}
	}
	return seed
}

func newFiller(cfg Config, src core.BitSource) filler {
	if cfg.Fill == FillNoise {
		return noiseFill{src: src, scale: cfg.NoiseScale, threshold: cfg.NoiseThreshold}
	}
	return coinFill{src: src}
}
