// Package session drives an engine from a single goroutine. Ticks fire on a
// timer at the engine's interval and edits submitted through Do run between
// ticks, so the engine only ever has one writer.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gol-duel/internal/core"
	"gol-duel/internal/sims/duel"
)

// ErrClosed is returned by Do once Run has returned.
var ErrClosed = errors.New("session closed")

// Report summarizes a finished session for the results display.
type Report struct {
	SessionID   uuid.UUID
	Sim         string
	Generations int
	Population  int
	// Match is set for territorial sessions.
	Match *duel.Result
}

type matchEnder interface {
	End() duel.Result
}

type command struct {
	fn  func(core.Sim)
	ack chan struct{}
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for lifecycle and tick messages.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMaxGenerations makes Run return once the engine reaches n generations.
func WithMaxGenerations(n int) Option {
	return func(r *Runner) { r.maxGen = n }
}

// Runner owns an engine and serializes every access to it.
type Runner struct {
	id     uuid.UUID
	sim    core.Sim
	log    *zap.Logger
	maxGen int

	cmds chan command
	done chan struct{}
}

// New wraps sim in a Runner. The engine must not be touched directly once Run
// has started.
func New(sim core.Sim, opts ...Option) *Runner {
	r := &Runner{
		id:   uuid.New(),
		sim:  sim,
		log:  zap.NewNop(),
		cmds: make(chan command),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(zap.String("session_id", r.id.String()), zap.String("sim", sim.Name()))
	return r
}

// ID returns the session identifier.
func (r *Runner) ID() uuid.UUID { return r.id }

// Run ticks the engine and applies queued edits until ctx is done or the
// generation limit is reached.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	interval := r.sim.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.log.Info("session started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			r.log.Info("session stopped", zap.Int("generation", r.sim.Generation()))
			return nil
		case cmd := <-r.cmds:
			cmd.fn(r.sim)
			close(cmd.ack)
		case <-ticker.C:
			if !r.sim.Running() {
				continue
			}
			if err := r.sim.TickContext(ctx); err != nil {
				if ctx.Err() != nil {
					r.log.Info("session stopped", zap.Int("generation", r.sim.Generation()))
					return nil
				}
				return errors.Wrapf(err, "[Run] session %s", r.id)
			}
			gen := r.sim.Generation()
			r.log.Debug("tick", zap.Int("generation", gen), zap.Int("population", r.sim.Population()))
			if r.maxGen > 0 && gen >= r.maxGen {
				r.log.Info("generation limit reached", zap.Int("generation", gen))
				return nil
			}
		}
		if next := r.sim.Interval(); next != interval {
			interval = next
			ticker.Reset(interval)
			r.log.Debug("interval changed", zap.Duration("interval", interval))
		}
	}
}

// Do runs fn on the session goroutine and waits for it to finish.
func (r *Runner) Do(ctx context.Context, fn func(core.Sim)) error {
	cmd := command{fn: fn, ack: make(chan struct{})}
	select {
	case r.cmds <- cmd:
	case <-r.done:
		return ErrClosed
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "[Do] command not delivered")
	}
	<-cmd.ack
	return nil
}

// Done is closed when Run returns.
func (r *Runner) Done() <-chan struct{} { return r.done }

// Finish stops the engine and reports its final state. For territorial
// engines the match result is included. Finish works both while Run is active
// and after it has returned.
func (r *Runner) Finish(ctx context.Context) (Report, error) {
	var rep Report
	fill := func(sim core.Sim) { rep = r.report(sim) }
	select {
	case <-r.done:
		fill(r.sim)
	default:
		if err := r.Do(ctx, fill); err != nil {
			if !errors.Is(err, ErrClosed) {
				return Report{}, err
			}
			fill(r.sim)
		}
	}
	r.log.Info("session finished",
		zap.Int("generation", rep.Generations),
		zap.Int("population", rep.Population))
	return rep, nil
}

func (r *Runner) report(sim core.Sim) Report {
	rep := Report{SessionID: r.id, Sim: sim.Name()}
	if m, ok := sim.(matchEnder); ok {
		res := m.End()
		rep.Match = &res
	} else {
		sim.Stop()
	}
	rep.Generations = sim.Generation()
	rep.Population = sim.Population()
	return rep
}
