package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mad-life/internal/driver"
	"mad-life/internal/render"
	"mad-life/internal/settings"
	"mad-life/pkg/sims/life"
)

type options struct {
	settings       string
	state          string
	load           string
	delay          time.Duration
	plain          bool
	seed           int64
	maxGenerations int
	initSettings   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.settings, "settings", "settings.json", "settings file")
	flag.StringVar(&opts.state, "state", "state.json", "file the final board is written to")
	flag.StringVar(&opts.load, "load", "", "snapshot to start from instead of a random board")
	flag.DurationVar(&opts.delay, "delay", 100*time.Millisecond, "time between generations")
	flag.BoolVar(&opts.plain, "plain", false, "print frames as plain text instead of using the terminal UI")
	flag.Int64Var(&opts.seed, "seed", 0, "seed override for the initial board")
	flag.IntVar(&opts.maxGenerations, "max-generations", 0, "stop after this many generations (0 = until stable)")
	flag.BoolVar(&opts.initSettings, "init", false, "write a default settings file and exit")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("life: ")

	if opts.initSettings {
		if err := writeDefaultSettings(opts.settings); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	cfg, err := settings.Load(opts.settings)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	board, err := life.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	if opts.load != "" {
		if err := board.Load(opts.load); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &driver.Runner{Board: board, Delay: opts.delay, MaxGenerations: opts.maxGenerations}
	var res driver.Result
	if opts.plain {
		text := render.NewText(os.Stdout)
		text.Clear = true
		runner.Renderer = text
		res, err = runner.Run(ctx)
	} else {
		res, err = runTerminal(ctx, runner)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := board.Save(opts.state); err != nil {
		return err
	}

	switch {
	case res.Stable:
		fmt.Printf("Population stable after generation %d (%d live cells, %d generations run)\n",
			res.StableAt, res.Population, res.Generations)
	case err != nil:
		fmt.Printf("Interrupted after %d generations (%d live cells)\n", res.Generations, res.Population)
	default:
		fmt.Printf("Stopped after %d generations without stabilizing (%d live cells)\n", res.Generations, res.Population)
	}
	fmt.Printf("Final state written to %s\n", opts.state)
	return nil
}

func runTerminal(ctx context.Context, runner *driver.Runner) (driver.Result, error) {
	term, err := render.NewTerminal()
	if err != nil {
		return driver.Result{}, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go term.PollQuit(ctx, cancel)

	runner.Renderer = term
	res, err := runner.Run(ctx)
	term.Close()
	return res, err
}

func writeDefaultSettings(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	if err := settings.Write(file, life.DefaultConfig()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
