package duel

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"gol-duel/internal/core"
)

// Player identifies who owns a cell.
type Player uint8

const (
	None Player = iota
	Player1
	Player2
)

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "none"
	}
}

// State is the value of one cell. Its numeric value doubles as an index into
// per-player counters.
type State uint8

const (
	Dead State = iota
	OwnedByPlayer1
	OwnedByPlayer2
)

// Owner returns the player holding the cell.
func (s State) Owner() Player { return Player(s) }

func stateOf(p Player) State { return State(p) }

// Result is the outcome of a match handed to the results display.
type Result struct {
	P1          int
	P2          int
	Generations int
}

// Winner returns the player with the higher score, or None on a draw.
func (r Result) Winner() Player {
	switch {
	case r.P1 > r.P2:
		return Player1
	case r.P2 > r.P1:
		return Player2
	default:
		return None
	}
}

// Engine runs the two-player territorial variant. Births take the owner with
// the neighbor majority and score a point for that player. Engine is not safe
// for concurrent use.
type Engine struct {
	cfg      Config
	board    *core.Board[State]
	live     core.CellSet
	running  bool
	started  bool
	interval time.Duration
	gen      int

	scores [3]int
	placed [3]int
}

// New returns an empty engine in the setup phase.
func New(cfg Config) *Engine {
	if cfg.Interval <= 0 {
		cfg.Interval = core.DefaultInterval
	}
	return &Engine{
		cfg:      cfg,
		board:    core.NewBoard[State](),
		live:     core.NewCellSet(),
		interval: cfg.Interval,
	}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "duel" }

// Running reports whether the match is in progress.
func (e *Engine) Running() bool { return e.running }

// Start ends the setup phase.
func (e *Engine) Start() {
	e.running = true
	e.started = true
}

// Stop halts the match without producing a result. The board stays frozen
// until Clear.
func (e *Engine) Stop() { e.running = false }

// Setup reports whether players may still place and remove cells.
func (e *Engine) Setup() bool { return !e.started }

// End stops the match and returns the final scores. The board stays frozen
// until Clear.
func (e *Engine) End() Result {
	e.running = false
	return Result{P1: e.scores[Player1], P2: e.scores[Player2], Generations: e.gen}
}

// Clear resets the board, budgets and scores. It is a no-op while running.
func (e *Engine) Clear() {
	if e.running {
		return
	}
	e.board.Reset()
	e.live.Clear()
	e.scores = [3]int{}
	e.placed = [3]int{}
	e.gen = 0
	e.started = false
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

// Budget returns the per-player placement limit.
func (e *Engine) Budget() int { return e.cfg.Budget }

// IsAlive reports whether c is owned by either player.
func (e *Engine) IsAlive(c core.Coord) bool { return e.live.Has(c) }

// OwnerOf returns the player owning c.
func (e *Engine) OwnerOf(c core.Coord) Player { return e.board.Get(c).Owner() }

// Population returns the number of owned cells.
func (e *Engine) Population() int { return e.live.Len() }

// Live returns the live cells ordered by Y, then X.
func (e *Engine) Live() []core.Coord { return e.live.Sorted() }

// Scores returns the birth counts credited to each player.
func (e *Engine) Scores() (p1, p2 int) { return e.scores[Player1], e.scores[Player2] }

// PlacedCounts returns how many setup cells each player currently holds.
func (e *Engine) PlacedCounts() (p1, p2 int) { return e.placed[Player1], e.placed[Player2] }

// ToggleCell kills a live cell or places a single cell for player. It is a
// no-op once the match has started. A kill refunds the budget of the cell's
// owner, not of the acting player.
func (e *Engine) ToggleCell(c core.Coord, makeAlive bool, player Player) {
	if e.started {
		return
	}
	owner := e.OwnerOf(c)
	switch {
	case owner != None && !makeAlive:
		e.placed[owner]--
		core.Kill(e.board, e.live, c)
	case owner == None && makeAlive:
		e.StampPattern(c, core.SingleCell, player)
	}
}

// StampPattern places p at target for player when every target cell is dead
// and the player's budget covers the whole pattern. Nothing changes on
// rejection or once the match has started.
func (e *Engine) StampPattern(target core.Coord, p core.Pattern, player Player) bool {
	if e.started || (player != Player1 && player != Player2) {
		return false
	}
	if !core.Fits(e.live, target, p) {
		return false
	}
	if e.placed[player]+p.Len() > e.Budget() {
		return false
	}
	core.Stamp(e.board, e.live, target, p, stateOf(player))
	e.placed[player] += p.Len()
	return true
}

// Tick advances one generation. It is a no-op outside the running phase.
func (e *Engine) Tick() { _ = e.TickContext(context.Background()) }

// TickContext advances one generation unless ctx is cancelled first, in which
// case neither the board nor the scores change.
func (e *Engine) TickContext(ctx context.Context) error {
	if !e.running {
		return nil
	}
	changes, err := core.Advance(ctx, e.board, e.live, majority, e.cfg.Workers)
	if err != nil {
		return errors.Wrapf(err, "[TickContext] generation %d", e.gen+1)
	}
	for _, ch := range changes {
		if ch.From == Dead {
			e.scores[ch.To]++
		}
	}
	e.gen++
	return nil
}

// majority applies Conway's rule to the combined population. A birth goes to
// player 1 only on a strict majority, so ties fall to player 2.
func majority(b *core.Board[State], c core.Coord) State {
	var counts [3]int
	for _, n := range c.Neighbors() {
		counts[b.Get(n)]++
	}
	p1, p2 := counts[OwnedByPlayer1], counts[OwnedByPlayer2]
	total := p1 + p2
	cur := b.Get(c)
	switch {
	case cur == Dead && total == 3:
		if p1 > p2 {
			return OwnedByPlayer1
		}
		return OwnedByPlayer2
	case cur != Dead && (total < 2 || total > 3):
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
				core.IntParam("budget", "Budget", e.Budget()),
			},
		},
		{
			Name: "Match",
			Params: []core.Parameter{
				core.BoolParam("running", "Running", e.running),
				core.BoolParam("setup", "Setup", !e.started),
				core.IntParam("generation", "Generation", e.gen),
				core.IntParam("placed_p1", "P1 placed", e.placed[Player1]),
				core.IntParam("placed_p2", "P2 placed", e.placed[Player2]),
				core.IntParam("score_p1", "P1 score", e.scores[Player1]),
				core.IntParam("score_p2", "P2 score", e.scores[Player2]),
			},
		},
	}}
}

func init() {
	core.Register("duel", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
