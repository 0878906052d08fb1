package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"mad-life/internal/driver"
	"mad-life/internal/settings"
	"mad-life/pkg/sims/life"
)

func main() {
	settingsPath := flag.String("settings", "", "settings file (empty for defaults)")
	runs := flag.Int("runs", 64, "number of seeds to simulate")
	firstSeed := flag.Int64("first-seed", 1, "seed of the first run (must be positive)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of boards simulated at once")
	maxGen := flag.Int("max-generations", 5000, "give up on a board after this many generations")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("life-sweep: ")

	if *firstSeed <= 0 {
		log.Fatalf("first seed must be positive, got %d (seed 0 is not reproducible)", *firstSeed)
	}

	cfg := life.DefaultConfig()
	if *settingsPath != "" {
		loaded, err := settings.Load(*settingsPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	fmt.Printf("Sweeping %d seeds on a %dx%d board at density %.2f (%d workers, max %d generations)\n",
		len(seeds), cfg.Columns(), cfg.Rows(), cfg.LiveDensity, *workers, *maxGen)

	start := time.Now()
	results, err := driver.Sweep(context.Background(), cfg, seeds, *workers, *maxGen)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	sort.SliceStable(results, func(i, j int) bool { return results[i].Generations > results[j].Generations })

	fmt.Printf("\nLongest runs (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		status := "unstable"
		if res.Stable {
			status = fmt.Sprintf("stable at %d", res.StableAt)
		}
		fmt.Printf("%2d) seed=%d generations=%d live=%d %s\n", i+1, res.Seed, res.Generations, res.Population, status)
	}

	s := driver.Summarize(results)
	fmt.Printf("\nStable: %d/%d", s.Stable, s.Runs)
	if s.Stable > 0 {
		fmt.Printf("  generation min=%d median=%d mean=%.1f max=%d", s.MinAt, s.MedianAt, s.MeanAt, s.MaxAt)
	}
	fmt.Println()
}
