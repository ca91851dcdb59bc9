package core

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Frontiers smaller than this are evaluated on the calling goroutine.
const inlineFrontier = 2048

// cancelCheckEvery sets how many cells a worker evaluates between context checks.
const cancelCheckEvery = 256

// Rule returns the next state of c. It must only read the current generation.
type Rule[S comparable] func(b *Board[S], c Coord) S

// Change records a cell whose state differs between two generations.
type Change[S comparable] struct {
	At   Coord
	From S
	To   S
}

// Advance evaluates rule over the frontier of live, writes every result into
// the scratch buffer, applies births and deaths to live and swaps buffers.
// When ctx is cancelled before evaluation completes neither b nor live change.
func Advance[S comparable](ctx context.Context, b *Board[S], live CellSet, rule Rule[S], workers int) ([]Change[S], error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "[Advance] evaluation cancelled")
	}

	front := Frontier(live)
	cells := make([]Coord, 0, len(front))
	for c := range front {
		cells = append(cells, c)
	}
	decided := make([]S, len(cells))
	if err := evaluate(ctx, b, cells, decided, rule, workers); err != nil {
		return nil, errors.Wrap(err, "[Advance] evaluation cancelled")
	}

	var dead S
	var changes []Change[S]
	for i, c := range cells {
		to := decided[i]
		b.setNext(c, to)
		from := b.Get(c)
		if from == to {
			continue
		}
		changes = append(changes, Change[S]{At: c, From: from, To: to})
		if to == dead {
			live.Remove(c)
		} else {
			live.Add(c)
		}
	}
	b.swap()
	return changes, nil
}

func evaluate[S comparable](ctx context.Context, b *Board[S], cells []Coord, out []S, rule Rule[S], workers int) error {
	if workers <= 1 || len(cells) < inlineFrontier {
		return evaluateRange(ctx, b, cells, out, rule, 0, len(cells))
	}

	chunk := (len(cells) + workers - 1) / workers
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for start := 0; start < len(cells); start += chunk {
		end := min(start+chunk, len(cells))
		eg.Go(func() error {
			return evaluateRange(ctx, b, cells, out, rule, start, end)
		})
	}
	return eg.Wait()
}

func evaluateRange[S comparable](ctx context.Context, b *Board[S], cells []Coord, out []S, rule Rule[S], start, end int) error {
	for i := start; i < end; i++ {
		if (i-start)%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		out[i] = rule(b, cells[i])
	}
	return nil
}
