//go:build !ebiten

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"gol-duel/internal/app"
	"gol-duel/internal/core"
	"gol-duel/internal/sims/duel"
	_ "gol-duel/internal/sims/life"
	"gol-duel/internal/session"
)

// Without the ebiten build tag the simulation runs on a session timer and
// prints a report when the generation limit is hit or on Ctrl+C.
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

	if cfg.Sim == "duel" && cfg.Pattern != app.PatternRandom {
		log.Info("no players attached, using a random setup", zap.String("pattern", cfg.Pattern))
		cfg.Pattern = app.PatternRandom
	}

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal("building sim", zap.Error(err))
	}
	if err := app.Seed(sim, cfg); err != nil {
		log.Fatal("seeding board", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := session.New(sim, session.WithLogger(log), session.WithMaxGenerations(cfg.Generations))
	errc := make(chan error, 1)
	go func() { errc <- runner.Run(ctx) }()

	if err := runner.Do(ctx, func(s core.Sim) { s.Start() }); err != nil && ctx.Err() == nil {
		log.Fatal("starting sim", zap.Error(err))
	}
	if err := <-errc; err != nil {
		log.Fatal("session failed", zap.Error(err))
	}

	rep, err := runner.Finish(context.Background())
	if err != nil {
		log.Fatal("finishing session", zap.Error(err))
	}
	printReport(rep)
}

func printReport(rep session.Report) {
	fmt.Printf("Session %s (%s)\n", rep.SessionID, rep.Sim)
	fmt.Printf("Generations: %d | Living: %d\n", rep.Generations, rep.Population)
	if rep.Match == nil {
		return
	}
	winner := "draw"
	if w := rep.Match.Winner(); w != duel.None {
		winner = w.String() + " wins"
	}
	fmt.Printf("P1: %d | P2: %d | %s\n", rep.Match.P1, rep.Match.P2, winner)
}
