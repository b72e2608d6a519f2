package cave

import (
	"fmt"
	"strings"

	"cavegen/pkg/core"
)

const (
	glyphAlive = '#'
	glyphDead  = '.'
)

// ParsePattern builds an automaton from rows of '#' (alive) and '.' (dead).
// Blank lines are ignored and every row must have the same width.
func ParsePattern(text string) (*Automaton, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("cave: empty pattern")
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]bool, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("cave: pattern row %d has width %d, want %d", y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case glyphAlive:
				cells = append(cells, true)
			case glyphDead:
				cells = append(cells, false)
			default:
				return nil, fmt.Errorf("cave: unexpected %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	return FromCells(w, h, cells)
}

// FormatGrid renders g as rows of '#' and '.', one line per row.
func FormatGrid(g *core.Grid) string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	g.Each(func(x, y int, alive bool) {
		if alive {
			b.WriteByte(glyphAlive)
		} else {
			b.WriteByte(glyphDead)
		}
		if x == g.W-1 {
			b.WriteByte('\n')
		}
	})
	return b.String()
}

// String renders the current state as a pattern.
func (a *Automaton) String() string { return FormatGrid(a.cur) }
