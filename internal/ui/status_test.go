package ui

import (
	"strings"
	"testing"

	"cavegen/pkg/sims/cave"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLines(t *testing.T) {
	a, err := cave.ParsePattern("##\n..\n")
	require.NoError(t, err)
	a.Step()

	lines := statusLines(a, true)
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "cave 2x2 [paused]", lines[0])
	assert.Equal(t, "gen 1  alive 0 (0.0%)", lines[1])

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "rule: survive_above=3 birth_above=4")
	assert.Contains(t, joined, "fill: fill=coin")
}

func TestStatusLinesRunning(t *testing.T) {
	a, err := cave.ParsePattern("#.\n..\n")
	require.NoError(t, err)

	lines := statusLines(a, false)
	assert.Equal(t, "cave 2x2", lines[0])
	assert.Equal(t, "gen 0  alive 1 (25.0%)", lines[1])
}
