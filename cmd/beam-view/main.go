//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"contraption/internal/app"
	"contraption/internal/config"
	"contraption/internal/logging"
	_ "contraption/internal/sims/beams"
	"contraption/pkg/core"
	"contraption/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse("beam-view", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	f, err := os.Open(cfg.Input)
	if err != nil {
		log.Fatal(err)
	}
	g, err := grid.Read(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %v", cfg.Input, err)
	}

	sim, err := core.New(cfg.Sim, g, cfg.SimSettings())
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("Viewer starting.", "sim", sim.Name(), "rows", g.Rows(), "cols", g.Cols())

	game := app.New(sim, cfg.Scale, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("beam-view — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
