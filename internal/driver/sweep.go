package driver

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"mad-life/pkg/sims/life"
)

// ErrUnseeded is returned by Sweep for a zero seed, which would build an
// unreproducible board.
var ErrUnseeded = errors.New("driver: sweep seeds must be non-zero")

// SweepResult pairs a seed with the outcome of its run.
type SweepResult struct {
	Seed int64
	Result
}

// Sweep runs one headless board per seed, at most workers at a time. Every
// board is advanced by a single goroutine. Results keep the order of seeds.
func Sweep(ctx context.Context, cfg life.Config, seeds []int64, workers, maxGenerations int) ([]SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, seed := range seeds {
		if seed == 0 {
			return nil, ErrUnseeded
		}
	}
	results := make([]SweepResult, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, seed := range seeds {
		g.Go(func() error {
			c := cfg
			c.Seed = seed
			board, err := life.NewWithConfig(c)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			runner := &Runner{Board: board, MaxGenerations: maxGenerations}
			res, err := runner.Run(ctx)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = SweepResult{Seed: seed, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates sweep results.
type Summary struct {
	Runs     int
	Stable   int
	MinAt    int
	MaxAt    int
	MeanAt   float64
	MedianAt int
}

// Summarize computes stabilization statistics over the stable runs.
func Summarize(results []SweepResult) Summary {
	s := Summary{Runs: len(results)}
	var at []int
	for _, r := range results {
		if r.Stable {
			at = append(at, r.StableAt)
		}
	}
	s.Stable = len(at)
	if len(at) == 0 {
		return s
	}
	sort.Ints(at)
	s.MinAt = at[0]
	s.MaxAt = at[len(at)-1]
	s.MedianAt = at[len(at)/2]
	total := 0
	for _, v := range at {
		total += v
	}
	s.MeanAt = float64(total) / float64(len(at))
	return s
}
