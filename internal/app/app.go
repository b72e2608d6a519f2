//go:build ebiten

package app

import (
	"cavegen/internal/core"
	"cavegen/internal/render"
	"cavegen/internal/ui"
	simcore "cavegen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     simcore.Sim
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD

	dirty bool
}

// New constructs a Game for the provided simulation.
func New(sim simcore.Sim, cfg *Config, seed int64) *Game {
	layout := render.NewLayout(sim.Size(), cfg.CellSize)
	return &Game{
		sim:     sim,
		ctrl:    NewController(sim, core.NewFixedStep(cfg.StepRate), seed, cfg.Paused),
		painter: render.NewGridPainter(layout),
		hud:     ui.NewHUD(sim),
		dirty:   true,
	}
}

// ScreenSize returns the window size needed to show the whole grid.
func (g *Game) ScreenSize() (int, int) { return g.painter.Layout().ScreenSize() }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := Input{
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Reseed:      inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		StepOnce:    inpututil.IsKeyJustPressed(ebiten.KeyN),
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		sw, sh := g.ScreenSize()
		mx, my := ebiten.CursorPosition()
		if pos, ok := g.painter.Layout().CellAt(mx, my, sw, sh); ok {
			in.Paint = true
			in.PaintAt = pos
			in.PaintAlive = !ebiten.IsKeyPressed(ebiten.KeyShift)
		}
	}

	if g.ctrl.Update(in) {
		g.dirty = true
	}
	g.hud.Update(g.ctrl.Paused())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.dirty)
	g.dirty = false
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}
