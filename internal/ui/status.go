package ui

import (
	"fmt"
	"strings"

	"cavegen/pkg/core"
)

// statusLines builds the HUD text for sim.
func statusLines(sim core.Sim, paused bool) []string {
	size := sim.Size()
	head := fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)
	if paused {
		head += " [paused]"
	}
	lines := []string{head}

	if stats, ok := sim.(core.Stats); ok {
		total := size.W * size.H
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(stats.Population()) / float64(total)
		}
		lines = append(lines, fmt.Sprintf("gen %d  alive %d (%.1f%%)", stats.Generation(), stats.Population(), pct))
	}

	if provider, ok := sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			parts := make([]string, 0, len(group.Params))
			for _, p := range group.Params {
				parts = append(parts, fmt.Sprintf("%s=%s", p.Key, p.Value))
			}
			lines = append(lines, fmt.Sprintf("%s: %s", strings.ToLower(group.Name), strings.Join(parts, " ")))
		}
	}
	return lines
}

// helpLine lists the key bindings.
const helpLine = "R/click restart  Bksp reseed  Space pause  N step  RMB paint  H hud  Q quit"
