//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ising/internal/app"
	"ising/internal/core"
	_ "ising/internal/sims/ising"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(opts)
	if seed, ok := cfg.InitialSeed(opts); ok {
		sim.Reset(seed)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("2D Ising Spin System - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
