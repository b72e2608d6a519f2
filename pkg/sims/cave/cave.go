// Package cave implements the cave generator automaton: a Game-of-Life style
// rule with asymmetric thresholds over a bounded (non-wrapping) grid.
package cave

import (
	"fmt"

	"cavegen/pkg/core"
)

// Automaton owns the cave grid and applies the step rule to it.
type Automaton struct {
	cfg Config

	cur *core.Grid
	nxt *core.Grid

	rng  *core.RNG
	fill filler

	generation int
}

// New returns an automaton with the provided dimensions using defaults. The
// grid starts with one random draw per cell.
func New(w, h int) *Automaton {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an automaton seeded from cfg.Seed.
func NewWithConfig(cfg Config) *Automaton {
	rng := core.NewRNG(cfg.Seed)
	a := newAutomaton(cfg, rng)
	a.rng = rng
	a.fill.fill(a.cur)
	return a
}

// NewWithSource returns an automaton drawing its cells from src instead of
// the seeded RNG. Reseed only restarts the stream of the built-in RNG, so with
// a custom source it behaves like Reset.
func NewWithSource(cfg Config, src core.BitSource) *Automaton {
	a := newAutomaton(cfg, src)
	a.fill.fill(a.cur)
	return a
}

// FromCells builds an automaton from an explicit row-major state. Later
// resets draw from an RNG seeded with the default seed.
func FromCells(w, h int, cells []bool) (*Automaton, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cave: invalid size %dx%d", w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("cave: got %d cells for a %dx%d grid", len(cells), w, h)
	}
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	rng := core.NewRNG(cfg.Seed)
	a := newAutomaton(cfg, rng)
	a.rng = rng
	copy(a.cur.Cells(), cells)
	return a, nil
}

func newAutomaton(cfg Config, src core.BitSource) *Automaton {
	cur := core.NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cur.W, cur.H
	return &Automaton{
		cfg:  cfg,
		cur:  cur,
		nxt:  core.NewGrid(cur.W, cur.H),
		fill: newFiller(cfg, src),
	}
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "cave" }

// Size reports the grid dimensions.
func (a *Automaton) Size() core.Size { return a.cur.Size() }

// Config returns the configuration the automaton runs with.
func (a *Automaton) Config() Config { return a.cfg }

// Grid exposes the current state. The returned grid is only valid until the
// next Step; callers that hold on to it should fetch it again each frame.
func (a *Automaton) Grid() *core.Grid { return a.cur }

// Alive returns the state of the cell at (x, y).
func (a *Automaton) Alive(x, y int) bool { return a.cur.Alive(x, y) }

// Each visits every cell of the current state in row-major order.
func (a *Automaton) Each(fn func(x, y int, alive bool)) { a.cur.Each(fn) }

// Set overrides a single cell and reports whether it changed.
func (a *Automaton) Set(x, y int, alive bool) bool {
	if a.cur.Alive(x, y) == alive {
		return false
	}
	a.cur.Set(x, y, alive)
	return true
}

// Generation returns the number of steps since the last reset.
func (a *Automaton) Generation() int { return a.generation }

// Population returns the number of live cells.
func (a *Automaton) Population() int { return a.cur.Count() }

// Reset redraws every cell from the ongoing random stream and reports whether
// any cell changed.
func (a *Automaton) Reset() bool {
	copy(a.nxt.Cells(), a.cur.Cells())
	a.fill.fill(a.cur)
	a.generation = 0
	return !equalCells(a.cur.Cells(), a.nxt.Cells())
}

// Reseed restarts the random stream from seed, then resets.
func (a *Automaton) Reseed(seed int64) bool {
	if a.rng != nil {
		a.rng.Seed(seed)
	}
	a.cfg.Seed = seed
	return a.Reset()
}

// Step applies the rule once to every cell and reports whether any cell
// changed. All decisions read the state from before the step.
func (a *Automaton) Step() bool {
	w, h := a.cur.W, a.cur.H
	cur, nxt := a.cur.Cells(), a.nxt.Cells()
	rule := a.cfg.Rule
	changed := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := a.neighbors(x, y)
			alive := cur[idx]
			next := n > rule.BirthAbove
			if alive {
				next = n > rule.SurviveAbove
			}
			nxt[idx] = next
			if next != alive {
				changed = true
			}
		}
	}
	a.cur, a.nxt = a.nxt, a.cur
	a.generation++
	return changed
}

// neighbors counts live cells in the Moore neighbourhood of (x, y). Cells
// outside the grid are skipped, not wrapped.
func (a *Automaton) neighbors(x, y int) int {
	w, h := a.cur.W, a.cur.H
	cells := a.cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			if cells[ny*w+nx] {
				n++
			}
		}
	}
	return n
}

func equalCells(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
