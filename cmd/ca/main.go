//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"majority-ca/internal/app"
	"majority-ca/internal/core"
	_ "majority-ca/internal/sims/majority"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	opts, err := cfg.SimOptions(flag.CommandLine)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	sim, err := factory(opts)
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg.Scale, cfg.SPS, cfg.HUD)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("majority-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
