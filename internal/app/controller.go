package app

import (
	"log"

	"cavegen/pkg/core"
)

// Ticker decides when the automaton advances.
type Ticker interface {
	ShouldStep() bool
}

// Input is the per-frame set of user requests, already decoded from the
// keyboard and mouse.
type Input struct {
	Restart     bool
	Reseed      bool
	TogglePause bool
	StepOnce    bool

	Paint      bool
	PaintAt    core.Position
	PaintAlive bool
}

type cellSetter interface {
	Set(x, y int, alive bool) bool
}

// Controller drives a simulation from input and ticks without depending on
// the windowing layer.
type Controller struct {
	sim    core.Sim
	ticker Ticker
	seed   int64

	paused   bool
	stepOnce bool
}

// NewController wires sim to ticker. seed is used by Reseed requests.
func NewController(sim core.Sim, ticker Ticker, seed int64, paused bool) *Controller {
	return &Controller{sim: sim, ticker: ticker, seed: seed, paused: paused}
}

// Paused reports whether automatic stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Update applies in and advances the simulation when due. It reports whether
// the grid changed.
func (c *Controller) Update(in Input) bool {
	dirty := false
	if in.TogglePause {
		c.paused = !c.paused
	}
	if in.StepOnce {
		c.stepOnce = true
	}
	if in.Restart {
		dirty = c.sim.Reset() || dirty
		log.Printf("[app] restarted %s", c.sim.Name())
	}
	if in.Reseed {
		if r, ok := c.sim.(core.Reseeder); ok {
			dirty = r.Reseed(c.seed) || dirty
			log.Printf("[app] reseeded %s with %d", c.sim.Name(), c.seed)
		}
	}
	if in.Paint {
		if s, ok := c.sim.(cellSetter); ok && c.sim.Grid().InBounds(in.PaintAt.X, in.PaintAt.Y) {
			dirty = s.Set(in.PaintAt.X, in.PaintAt.Y, in.PaintAlive) || dirty
		}
	}

	if c.stepOnce || (!c.paused && c.ticker.ShouldStep()) {
		dirty = c.sim.Step() || dirty
		c.stepOnce = false
	}
	return dirty
}
