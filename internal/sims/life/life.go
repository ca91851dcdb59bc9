package life

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"gol-duel/internal/core"
)

// State is the value of one cell.
type State uint8

const (
	Dead State = iota
	Alive
)

// Engine runs Conway's Game of Life on an unbounded grid. It is not safe for
// concurrent use; callers serialize ticks and edits.
type Engine struct {
	cfg      Config
	board    *core.Board[State]
	live     core.CellSet
	paused   bool
	interval time.Duration
	gen      int
}

// New returns a paused, empty engine.
func New(cfg Config) *Engine {
	if cfg.Interval <= 0 {
		cfg.Interval = core.DefaultInterval
	}
	return &Engine{
		cfg:      cfg,
		board:    core.NewBoard[State](),
		live:     core.NewCellSet(),
		paused:   true,
		interval: cfg.Interval,
	}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Running reports whether ticks currently advance the board.
func (e *Engine) Running() bool { return !e.paused }

// Start resumes the simulation.
func (e *Engine) Start() { e.paused = false }

// Stop pauses the simulation.
func (e *Engine) Stop() { e.paused = true }

// TogglePause flips between running and paused.
func (e *Engine) TogglePause() { e.paused = !e.paused }

// Clear kills every cell and resets the generation counter.
func (e *Engine) Clear() {
	e.board.Reset()
	e.live.Clear()
	e.gen = 0
}

// SetTickInterval sets the cadence a scheduler should call Tick at.
func (e *Engine) SetTickInterval(seconds float64) {
	if d, ok := core.SecondsToInterval(seconds); ok {
		e.interval = d
	}
}

// Interval returns the current tick cadence.
func (e *Engine) Interval() time.Duration { return e.interval }

// Generation returns the number of ticks applied since the last Clear.
func (e *Engine) Generation() int { return e.gen }

// IsAlive reports whether c is alive.
func (e *Engine) IsAlive(c core.Coord) bool { return e.live.Has(c) }

// Live returns the live cells ordered by Y, then X.
func (e *Engine) Live() []core.Coord { return e.live.Sorted() }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.live.Len() }

// ToggleCell kills a live cell or revives a dead one. It is a no-op while running.
func (e *Engine) ToggleCell(c core.Coord, makeAlive bool) {
	if !e.paused {
		return
	}
	alive := e.live.Has(c)
	switch {
	case alive && !makeAlive:
		core.Kill(e.board, e.live, c)
	case !alive && makeAlive:
		e.StampPattern(c, core.SingleCell)
	}
}

// StampPattern places p at target when every target cell is dead and the
// engine is paused. It reports whether the pattern was placed.
func (e *Engine) StampPattern(target core.Coord, p core.Pattern) bool {
	if !e.paused || !core.Fits(e.live, target, p) {
		return false
	}
	core.Stamp(e.board, e.live, target, p, Alive)
	return true
}

// LoadPattern clears the board and places p centered on the origin.
func (e *Engine) LoadPattern(p core.Pattern) bool {
	if !e.paused {
		return false
	}
	e.Clear()
	return e.StampPattern(core.Coord{}, p.Centered())
}

// Randomize clears the board and fills [-radius, radius)² with random cells.
// A non-positive radius uses the configured one.
func (e *Engine) Randomize(seed int64, radius int) bool {
	if !e.paused {
		return false
	}
	if radius <= 0 {
		radius = e.cfg.Radius
	}
	e.Clear()
	for _, c := range core.Scatter(core.NewRNG(seed), radius) {
		e.board.Set(c, Alive)
		e.live.Add(c)
	}
	return true
}

// Tick advances one generation. It is a no-op while paused.
func (e *Engine) Tick() { _ = e.TickContext(context.Background()) }

// TickContext advances one generation unless ctx is cancelled first, in which
// case the board is left untouched.
func (e *Engine) TickContext(ctx context.Context) error {
	if e.paused {
		return nil
	}
	if _, err := core.Advance(ctx, e.board, e.live, conway, e.cfg.Workers); err != nil {
		return errors.Wrapf(err, "[TickContext] generation %d", e.gen+1)
	}
	e.gen++
	return nil
}

func conway(b *core.Board[State], c core.Coord) State {
	neighbors := 0
	for _, n := range c.Neighbors() {
		if b.Get(n) == Alive {
			neighbors++
		}
	}
	cur := b.Get(c)
	switch {
	case cur == Dead && neighbors == 3:
		return Alive
	case cur == Alive && (neighbors < 2 || neighbors > 3):
		return Dead
	default:
		return cur
	}
}

// Parameters reports the engine's tunables and counters.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Engine",
			Params: []core.Parameter{
				core.IntParam("workers", "Workers", e.cfg.Workers),
				core.IntervalParam(e.interval),
				core.IntParam("radius", "Random radius", e.cfg.Radius),
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				core.BoolParam("running", "Running", e.Running()),
				core.IntParam("generation", "Generation", e.gen),
				core.IntParam("population", "Population", e.live.Len()),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
