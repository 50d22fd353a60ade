// Package stats runs batches of independent Life boards and summarizes how
// their populations evolve.
package stats

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"
	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/sims/life"
)

// SweepConfig describes a batch of runs.
type SweepConfig struct {
	Life        life.Config
	Seeds       []int64
	Generations int
	// Workers bounds how many boards evolve at once. Each board is stepped
	// by a single goroutine.
	Workers int
}

// Result summarizes one seeded run.
type Result struct {
	Seed              int64
	Generations       int
	InitialPopulation int
	FinalPopulation   int
	PeakPopulation    int
	// ExtinctAt is the first generation with no live cells, or -1.
	ExtinctAt int
	// StableAt is the first generation identical to its successor, or -1.
	StableAt int
}

// Run evolves a single board for up to generations steps. It stops early
// once the board reaches a fixed point.
func Run(ctx context.Context, cfg life.Config, seed int64, generations int) (Result, error) {
	l := life.NewWithConfig(cfg)
	l.Reset(seed)
	pop := l.Population()
	res := Result{
		Seed:              seed,
		InitialPopulation: pop,
		FinalPopulation:   pop,
		PeakPopulation:    pop,
		ExtinctAt:         -1,
		StableAt:          -1,
	}
	if pop == 0 {
		res.ExtinctAt = 0
	}
	prev := make([]core.Color, len(l.Frame().Buffer()))
	for gen := 1; gen <= generations; gen++ {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "seed %d interrupted at generation %d", seed, gen)
		}
		copy(prev, l.Frame().Buffer())
		l.Step()
		res.Generations = gen

		pop = l.Population()
		res.FinalPopulation = pop
		if pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
		if pop == 0 && res.ExtinctAt < 0 {
			res.ExtinctAt = gen
		}
		if slices.Equal(prev, l.Frame().Buffer()) {
			res.StableAt = gen - 1
			break
		}
	}
	return res, nil
}

// Sweep runs every seed in cfg and returns results in seed order. The first
// failure cancels the remaining runs.
func Sweep(ctx context.Context, cfg SweepConfig) ([]Result, error) {
	if cfg.Life.Width <= 0 || cfg.Life.Height <= 0 {
		return nil, errors.Errorf("grid %dx%d must be positive", cfg.Life.Width, cfg.Life.Height)
	}
	if cfg.Generations < 0 {
		return nil, errors.Errorf("generations %d must not be negative", cfg.Generations)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(cfg.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range cfg.Seeds {
		g.Go(func() error {
			res, err := Run(ctx, cfg.Life, seed, cfg.Generations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
