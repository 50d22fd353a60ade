//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/app"
	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"
	_ "github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "optional JSON file with startup settings")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
		// Flags given explicitly win over the file.
		flag.Parse()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("Conway's Game of Life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
