//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"
	"mad-life/internal/settings"
	"mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := life.DefaultConfig()
	if cfg.Settings != "" {
		loaded, err := settings.Load(cfg.Settings)
		if err != nil {
			log.Fatal(err)
		}
		simCfg = loaded
	}
	if cfg.Seed != 0 {
		simCfg.Seed = cfg.Seed
	}

	board, err := life.NewWithConfig(simCfg)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Load {
		if err := board.Load(cfg.State); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Seed = simCfg.Seed

	// The settings cell size is the base pixel size; -scale multiplies it.
	cfg.Scale *= board.CellSize()
	game := app.New(board, cfg)

	ebiten.SetWindowTitle("mad-life: " + board.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(board.Columns()*cfg.Scale+cfg.HUDWidth, board.Rows()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
