// Command duel-sweep plays many random territorial matches headlessly and
// reports how often each player wins for a given setup radius.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gol-duel/internal/core"
	"gol-duel/internal/patterns"
	"gol-duel/internal/sims/duel"
)

type matchResult struct {
	seed    int64
	result  duel.Result
	living  int
	stamped int
}

func main() {
	matches := flag.Int("matches", 64, "number of matches to play")
	steps := flag.Int("steps", 300, "generations per match")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent matches")
	radius := flag.Int("radius", 12, "half-width of the setup square")
	budget := flag.Int("budget", duel.DefaultBudget, "cells each player may place")
	seed := flag.Int64("seed", 1, "seed of the first match")
	top := flag.Int("top", 5, "highest-scoring matches to list")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	fmt.Printf("Playing %d matches (%d workers, %d steps, radius %d)\n", *matches, *workers, *steps, *radius)
	start := time.Now()

	results := make([]matchResult, *matches)
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(max(*workers, 1))
	for i := range results {
		eg.Go(func() error {
			res, err := playMatch(ctx, *seed+int64(i), *steps, *radius, *budget)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal("sweep failed", zap.Error(err))
	}

	var wins [3]int
	for _, r := range results {
		wins[r.result.Winner()]++
	}
	fmt.Printf("P1 wins: %d | P2 wins: %d | draws: %d | %.1fs\n",
		wins[duel.Player1], wins[duel.Player2], wins[duel.None], time.Since(start).Seconds())

	sort.Slice(results, func(i, j int) bool {
		return results[i].result.P1+results[i].result.P2 > results[j].result.P1+results[j].result.P2
	})
	for _, r := range results[:min(*top, len(results))] {
		fmt.Printf("seed=%d figures=%d p1=%d p2=%d living=%d\n", r.seed, r.stamped, r.result.P1, r.result.P2, r.living)
	}
}

func playMatch(ctx context.Context, seed int64, steps, radius, budget int) (matchResult, error) {
	cfg := duel.DefaultConfig()
	cfg.Budget = budget
	// matches already run in parallel
	cfg.Workers = 1
	e := duel.New(cfg)

	stamped := e.RandomSetup(core.NewRNG(seed), radius, patterns.Figures())
	e.Start()
	for i := 0; i < steps; i++ {
		if err := e.TickContext(ctx); err != nil {
			return matchResult{}, err
		}
	}
	res := e.End()
	return matchResult{seed: seed, result: res, living: e.Population(), stamped: stamped}, nil
}
