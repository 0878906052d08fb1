package driver

import (
	"context"
	"time"

	"mad-life/internal/render"
)

// Board is the part of the simulation the driver needs.
type Board interface {
	render.View
	Advance()
	LiveCount() int
}

// Renderer draws a board once per generation.
type Renderer interface {
	Render(v render.View, f render.Frame) error
}

// Result summarizes a finished run.
type Result struct {
	// Generations is the number of generations that were advanced.
	Generations int
	// Population is the live count after the last generation.
	Population int
	// Stable is set when the run ended on the stability streak.
	Stable bool
	// StableAt is the generation after which the population stopped
	// changing. Only meaningful when Stable is set.
	StableAt int
}

// Runner advances a board until its population stays constant for a full
// streak, the generation limit is hit or the context is cancelled.
type Runner struct {
	Board    Board
	Renderer Renderer

	// Delay is slept between generations.
	Delay time.Duration
	// StableStreak overrides DefaultStableStreak when positive.
	StableStreak int
	// MaxGenerations stops runs that never stabilize. Zero means no limit.
	MaxGenerations int
}

// Run drives the board. Each generation renders the current grid, counts the
// population, advances, counts again and feeds both counts to a Watcher.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	w := NewWatcher(r.StableStreak)
	var res Result

	for gen := 1; ; gen++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		before := r.Board.LiveCount()
		if r.Renderer != nil {
			frame := render.Frame{Generation: gen, Population: before, Streak: w.Streak()}
			if err := r.Renderer.Render(r.Board, frame); err != nil {
				return res, err
			}
		}

		r.Board.Advance()
		after := r.Board.LiveCount()

		res.Generations = gen
		res.Population = after
		if w.Observe(before, after) {
			res.Stable = true
			res.StableAt = gen - w.Limit()
			return res, nil
		}
		if r.MaxGenerations > 0 && gen >= r.MaxGenerations {
			return res, nil
		}

		if err := sleep(ctx, r.Delay); err != nil {
			return res, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
