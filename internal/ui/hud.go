//go:build ebiten

package ui

import (
	"image/color"

	"cavegen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	hudCharWidth  = 7
)

// HUD draws run statistics and parameters over the top-left corner of the
// grid. H toggles it.
type HUD struct {
	sim     core.Sim
	visible bool
	lines   []string
}

// NewHUD constructs a visible HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Update handles the toggle key and refreshes the text.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	h.lines = append(statusLines(h.sim, paused), helpLine)
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	widest := 0
	for _, line := range h.lines {
		if len(line) > widest {
			widest = len(line)
		}
	}
	w := float32(widest*hudCharWidth + 2*hudPadding)
	ht := float32(len(h.lines)*hudLineHeight + 2*hudPadding)
	vector.DrawFilledRect(screen, 0, 0, w, ht, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, face, hudPadding, y, color.RGBA{R: 230, G: 200, B: 90, A: 255})
	}
}
