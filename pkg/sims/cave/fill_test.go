package cave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noiseConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Fill = FillNoise
	return cfg
}

func TestNoiseFillDrawsBothStates(t *testing.T) {
	a := NewWithConfig(noiseConfig(64, 64))
	pop := a.Population()
	assert.Greater(t, pop, 0)
	assert.Less(t, pop, 64*64)
}

func TestNoiseFillSeeded(t *testing.T) {
	a := NewWithConfig(noiseConfig(32, 32))
	b := NewWithConfig(noiseConfig(32, 32))
	assert.Equal(t, a.Grid().Cells(), b.Grid().Cells())

	assert.True(t, a.Reset())
	assert.NotEqual(t, a.Grid().Cells(), b.Grid().Cells())
}

func TestSeedFromBitSource(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), seedFrom(constSource(true)))
	assert.Equal(t, int64(0), seedFrom(constSource(false)))
}
