//go:build ebiten

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gol-duel/internal/app"
	_ "gol-duel/internal/sims/duel"
	_ "gol-duel/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal("building sim", zap.Error(err))
	}
	if err := app.Seed(sim, cfg); err != nil {
		log.Fatal("seeding board", zap.Error(err))
	}

	game := app.New(sim, cfg, log)

	ebiten.SetWindowTitle("gol-duel: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("game loop", zap.Error(err))
	}
}
