//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cavegen/internal/app"
	"cavegen/pkg/sims/cave"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	caveCfg, err := cfg.CaveConfig()
	if err != nil {
		log.Fatalf("[cave] %v", err)
	}

	sim := cave.NewWithConfig(caveCfg)
	game := app.New(sim, cfg, caveCfg.Seed)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle("cavegen — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
