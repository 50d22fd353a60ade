package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/sims/life"
	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/term"
)

func main() {
	width := flag.Int("width", 40, "grid width in cells")
	height := flag.Int("height", 24, "grid height in cells")
	variant := flag.String("variant", "binary", "rule variant: binary or color")
	chance := flag.Float64("chance", life.InitialAliveChance, "initial probability of a cell being alive")
	gps := flag.Int("gps", 10, "generations per second")
	seed := flag.Int64("seed", 42, "seed for the initial board")
	flag.Parse()

	if err := run(*width, *height, *variant, *chance, *gps, *seed); err != nil {
		log.Fatal(err)
	}
}

func run(width, height int, variant string, chance float64, gps int, seed int64) error {
	v, err := life.ParseVariant(variant)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return errors.Errorf("grid %dx%d must be positive", width, height)
	}
	if chance < 0 || chance > 1 {
		return errors.Errorf("chance %v outside [0,1]", chance)
	}

	sim := life.NewWithConfig(life.Config{Width: width, Height: height, Variant: v, Chance: chance})
	sim.Reset(seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "creating screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "initializing screen")
	}
	defer screen.Fini()
	screen.Clear()

	return term.Run(screen, sim, term.Options{GPS: gps, Seed: seed})
}
