package app

import (
	"testing"

	"cavegen/pkg/core"
	"cavegen/pkg/sims/cave"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTicker struct {
	due   bool
	calls int
}

func (m *manualTicker) ShouldStep() bool {
	m.calls++
	return m.due
}

func newTestController(t *testing.T, paused bool) (*Controller, *cave.Automaton, *manualTicker) {
	t.Helper()
	a := cave.New(20, 20)
	ticker := &manualTicker{}
	return NewController(a, ticker, 5, paused), a, ticker
}

func TestControllerStepsWhenDue(t *testing.T) {
	c, a, ticker := newTestController(t, false)

	c.Update(Input{})
	assert.Equal(t, 0, a.Generation())

	ticker.due = true
	assert.True(t, c.Update(Input{}))
	assert.Equal(t, 1, a.Generation())
}

func TestControllerPause(t *testing.T) {
	c, a, ticker := newTestController(t, true)
	ticker.due = true

	c.Update(Input{})
	assert.Equal(t, 0, a.Generation())
	assert.Equal(t, 0, ticker.calls)

	c.Update(Input{StepOnce: true})
	assert.Equal(t, 1, a.Generation())

	c.Update(Input{TogglePause: true})
	assert.False(t, c.Paused())
	assert.Equal(t, 2, a.Generation())
}

func TestControllerRestart(t *testing.T) {
	c, a, _ := newTestController(t, true)
	c.Update(Input{StepOnce: true})
	before := append([]bool(nil), a.Grid().Cells()...)

	assert.True(t, c.Update(Input{Restart: true}))
	assert.Equal(t, 0, a.Generation())
	assert.Equal(t, core.Size{W: 20, H: 20}, a.Size())
	assert.NotEqual(t, before, a.Grid().Cells())
}

func TestControllerReseed(t *testing.T) {
	c, a, _ := newTestController(t, true)

	c.Update(Input{Reseed: true})
	first := append([]bool(nil), a.Grid().Cells()...)
	c.Update(Input{Restart: true})
	c.Update(Input{Reseed: true})
	assert.Equal(t, first, a.Grid().Cells())
	assert.Equal(t, int64(5), a.Config().Seed)
}

func TestControllerPaint(t *testing.T) {
	a, err := cave.FromCells(3, 3, make([]bool, 9))
	require.NoError(t, err)
	c := NewController(a, &manualTicker{}, 0, true)

	assert.True(t, c.Update(Input{Paint: true, PaintAt: core.Position{X: 2, Y: 1}, PaintAlive: true}))
	assert.True(t, a.Alive(2, 1))
	assert.False(t, c.Update(Input{Paint: true, PaintAt: core.Position{X: 2, Y: 1}, PaintAlive: true}))
	assert.False(t, c.Update(Input{Paint: true, PaintAt: core.Position{X: 7, Y: 1}, PaintAlive: true}))
}
