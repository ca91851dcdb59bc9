package life

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/pkg/errors"

	"gol-duel/internal/core"
)

func row(cells ...core.Coord) core.Pattern { return core.Pattern{Cells: cells} }

func newRunning(t *testing.T, p core.Pattern) *Engine {
	t.Helper()
	e := New(DefaultConfig())
	if !e.StampPattern(core.Coord{}, p) {
		t.Fatal("expected stamp on an empty board to succeed")
	}
	e.Start()
	return e
}

// assertInSync checks that the live set mirrors the non-dead board cells.
func assertInSync(t *testing.T, e *Engine) {
	t.Helper()
	for _, c := range e.Live() {
		if e.board.Get(c) != Alive {
			t.Fatalf("live cell %v is dead on the board", c)
		}
	}
	alive := 0
	e.board.Range(func(_ core.Coord, s State) bool {
		if s != Dead {
			alive++
		}
		return true
	})
	if alive != e.Population() {
		t.Fatalf("expected %d alive board cells, got %d", e.Population(), alive)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := newRunning(t, row(core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: 0}, core.Coord{X: 2, Y: 0}))

	e.Tick()
	want := []core.Coord{{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if got := e.Live(); !slices.Equal(got, want) {
		t.Fatalf("after first step expected %v, got %v", want, got)
	}

	e.Tick()
	want = []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if got := e.Live(); !slices.Equal(got, want) {
		t.Fatalf("after second step expected %v, got %v", want, got)
	}
	if e.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", e.Generation())
	}
	assertInSync(t, e)
}

func TestBlockStillLife(t *testing.T) {
	block := row(core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: 0}, core.Coord{X: 0, Y: 1}, core.Coord{X: 1, Y: 1})
	e := newRunning(t, block)
	for i := 0; i < 10; i++ {
		e.Tick()
		if !slices.Equal(e.Live(), block.Cells) {
			t.Fatalf("generation %d: expected block to stay put, got %v", i+1, e.Live())
		}
	}
	if n := e.board.Len(); n != 16 {
		t.Fatalf("expected only the 4x4 frontier in the current buffer, got %d entries", n)
	}
}

func TestTickWhilePausedIsNoop(t *testing.T) {
	e := New(DefaultConfig())
	e.StampPattern(core.Coord{}, row(core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: 0}, core.Coord{X: 2, Y: 0}))
	e.Tick()
	if e.Generation() != 0 || e.Population() != 3 || !e.IsAlive(core.Coord{X: 2, Y: 0}) {
		t.Fatal("expected a paused engine to ignore Tick")
	}
	e.TogglePause()
	if !e.Running() {
		t.Fatal("expected TogglePause to start the engine")
	}
	e.Stop()
	e.Stop()
	if e.Running() {
		t.Fatal("expected Stop to be idempotent")
	}
}

func TestToggleCell(t *testing.T) {
	e := New(DefaultConfig())
	c := core.Coord{X: -7, Y: 3}

	e.ToggleCell(c, true)
	if !e.IsAlive(c) {
		t.Fatal("expected cell to be revived")
	}
	e.ToggleCell(c, true)
	if e.Population() != 1 {
		t.Fatalf("expected reviving a live cell to be a no-op, got %d cells", e.Population())
	}
	e.ToggleCell(c, false)
	if e.IsAlive(c) || e.Population() != 0 {
		t.Fatal("expected cell to be killed")
	}
	e.ToggleCell(c, false)

	e.Start()
	e.ToggleCell(c, true)
	if e.IsAlive(c) {
		t.Fatal("expected edits to be ignored while running")
	}
	if e.StampPattern(core.Coord{X: 40, Y: 40}, core.SingleCell) {
		t.Fatal("expected stamping to be rejected while running")
	}
}

func TestStampRejectsCollisionAtomically(t *testing.T) {
	e := New(DefaultConfig())
	e.ToggleCell(core.Coord{X: 2, Y: 2}, true)

	before := e.Live()
	p := row(core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: 1}, core.Coord{X: 2, Y: 2}, core.Coord{X: 3, Y: 3})
	if e.StampPattern(core.Coord{}, p) {
		t.Fatal("expected overlapping stamp to be rejected")
	}
	if !slices.Equal(before, e.Live()) {
		t.Fatalf("expected board unchanged after rejected stamp, got %v", e.Live())
	}
	if !e.StampPattern(core.Coord{X: 10, Y: 0}, p) {
		t.Fatal("expected stamp on free cells to succeed")
	}
}

func TestClearWorksWhileRunning(t *testing.T) {
	e := newRunning(t, row(core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: 0}, core.Coord{X: 2, Y: 0}))
	e.Tick()
	e.Clear()
	if e.Population() != 0 || e.Generation() != 0 || e.board.Len() != 0 {
		t.Fatalf("expected empty board after Clear, got %d cells gen %d", e.Population(), e.Generation())
	}
}

func TestLoadPatternCentersOnOrigin(t *testing.T) {
	e := New(DefaultConfig())
	e.ToggleCell(core.Coord{X: 50, Y: 50}, true)
	if !e.LoadPattern(row(core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: 0}, core.Coord{X: 2, Y: 0})) {
		t.Fatal("expected LoadPattern to succeed while paused")
	}
	want := []core.Coord{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	if got := e.Live(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	e.Start()
	if e.LoadPattern(core.SingleCell) {
		t.Fatal("expected LoadPattern to be refused while running")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a, b := New(DefaultConfig()), New(DefaultConfig())
	a.Randomize(9, 0)
	b.Randomize(9, 0)
	if a.Population() == 0 || !slices.Equal(a.Live(), b.Live()) {
		t.Fatal("expected equal random fills for equal seeds")
	}
	for _, c := range a.Live() {
		if c.X < -20 || c.X >= 20 || c.Y < -20 || c.Y >= 20 {
			t.Fatalf("cell %v outside the default radius", c)
		}
	}
	assertInSync(t, a)

	a.Start()
	if a.Randomize(10, 5) {
		t.Fatal("expected Randomize to be refused while running")
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	seqCfg := DefaultConfig()
	seqCfg.Workers = 1
	parCfg := DefaultConfig()
	parCfg.Workers = 8

	seq, par := New(seqCfg), New(parCfg)
	seq.Randomize(21, 40)
	par.Randomize(21, 40)
	seq.Start()
	par.Start()
	for i := 0; i < 8; i++ {
		seq.Tick()
		par.Tick()
	}
	if !slices.Equal(seq.Live(), par.Live()) {
		t.Fatal("expected parallel evaluation to match sequential evaluation")
	}
}

func TestCancelledTickLeavesBoard(t *testing.T) {
	e := newRunning(t, row(core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: 0}, core.Coord{X: 2, Y: 0}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.TickContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if e.Generation() != 0 || !e.IsAlive(core.Coord{X: 2, Y: 0}) {
		t.Fatal("expected board to stay at generation 0")
	}
}

func TestSetTickInterval(t *testing.T) {
	e := New(DefaultConfig())
	e.SetTickInterval(0.25)
	if e.Interval() != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", e.Interval())
	}
	e.SetTickInterval(-1)
	e.SetTickInterval(0)
	if e.Interval() != 250*time.Millisecond {
		t.Fatalf("expected non-positive intervals to be ignored, got %v", e.Interval())
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("expected life to be registered")
	}
	sim := factory(map[string]string{"interval": "0.5"})
	if sim.Name() != "life" || sim.Interval() != 500*time.Millisecond {
		t.Fatalf("expected configured life sim, got %s at %v", sim.Name(), sim.Interval())
	}
	if v, ok := sim.Parameters().Lookup("population"); !ok || v != "0" {
		t.Fatalf("expected population parameter 0, got %q", v)
	}
}
