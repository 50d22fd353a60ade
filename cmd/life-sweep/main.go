package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/sims/life"
	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/stats"
)

func main() {
	width := flag.Int("width", 80, "grid width in cells")
	height := flag.Int("height", 60, "grid height in cells")
	variant := flag.String("variant", "binary", "rule variant: binary or color")
	chance := flag.Float64("chance", life.InitialAliveChance, "initial probability of a cell being alive")
	generations := flag.Int("generations", 1000, "generations to simulate per seed")
	runs := flag.Int("runs", 16, "number of seeds to evaluate")
	firstSeed := flag.Int64("seed", 1, "first seed; subsequent runs use consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "boards evolved in parallel")
	flag.Parse()

	v, err := life.ParseVariant(*variant)
	if err != nil {
		log.Fatal(err)
	}

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("sweeping %d seeds on a %dx%d %s board for %d generations", len(seeds), *width, *height, v, *generations)
	results, err := stats.Sweep(ctx, stats.SweepConfig{
		Life:        life.Config{Width: *width, Height: *height, Variant: v, Chance: *chance},
		Seeds:       seeds,
		Generations: *generations,
		Workers:     *workers,
	})
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "seed\tgens\tinitial\tfinal\tpeak\textinct\tstable\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\t%s\t\n",
			r.Seed, r.Generations, r.InitialPopulation, r.FinalPopulation, r.PeakPopulation, gen(r.ExtinctAt), gen(r.StableAt))
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}

func gen(g int) string {
	if g < 0 {
		return "-"
	}
	return fmt.Sprint(g)
}
