package driver

import (
	"context"
	"errors"
	"testing"

	"mad-life/pkg/sims/life"
)

func TestSweepDeterministic(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.LiveDensity = 0.3
	seeds := []int64{1, 2, 3, 4, 5, 6, 7, 8}

	first, err := Sweep(context.Background(), cfg, seeds, 3, 400)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Sweep(context.Background(), cfg, seeds, 1, 400)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(seeds) {
		t.Fatalf("expected %d results, got %d", len(seeds), len(first))
	}
	for i, res := range first {
		if res.Seed != seeds[i] {
			t.Fatalf("result %d has seed %d, expected %d", i, res.Seed, seeds[i])
		}
		if !res.Stable && res.Generations != 400 {
			t.Fatalf("seed %d stopped early without stabilizing: %+v", res.Seed, res.Result)
		}
		if res != second[i] {
			t.Fatalf("seed %d not reproducible: %+v vs %+v", res.Seed, res, second[i])
		}
	}
}

func TestSweepRejectsInvalidConfig(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.CellSize = 0
	if _, err := Sweep(context.Background(), cfg, []int64{1}, 1, 10); err == nil {
		t.Fatal("expected an error for an invalid config")
	}
}

func TestSweepRejectsZeroSeed(t *testing.T) {
	cfg := life.DefaultConfig()
	if _, err := Sweep(context.Background(), cfg, []int64{3, 0, 4}, 2, 10); !errors.Is(err, ErrUnseeded) {
		t.Fatalf("expected ErrUnseeded, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []SweepResult{
		{Seed: 1, Result: Result{Stable: true, StableAt: 30}},
		{Seed: 2, Result: Result{Stable: false, Generations: 100}},
		{Seed: 3, Result: Result{Stable: true, StableAt: 10}},
		{Seed: 4, Result: Result{Stable: true, StableAt: 20}},
	}
	got := Summarize(results)
	want := Summary{Runs: 4, Stable: 3, MinAt: 10, MaxAt: 30, MeanAt: 20, MedianAt: 20}
	if got != want {
		t.Fatalf("Summarize() = %+v, expected %+v", got, want)
	}
	if s := Summarize(nil); s != (Summary{}) {
		t.Fatalf("empty summary = %+v", s)
	}
}
