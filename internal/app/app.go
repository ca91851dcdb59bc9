//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"gol-duel/internal/core"
	"gol-duel/internal/patterns"
	"gol-duel/internal/render"
	"gol-duel/internal/sims/duel"
	"gol-duel/internal/sims/life"
	"gol-duel/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minScale = 1
	maxScale = 32
	panStep  = 4
)

// Game adapts an engine to the ebiten.Game interface. ebiten calls Update and
// Draw from one goroutine, so edits and ticks never overlap.
type Game struct {
	sim   core.Sim
	solo  *life.Engine
	match *duel.Engine

	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep
	figures *patterns.Cycler
	palette []color.RGBA
	log     *zap.Logger

	view   render.Viewport
	scale  int
	player duel.Player
	result *duel.Result
	cfg    *Config
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(1, 1),
		hud:     ui.NewHUD(),
		step:    core.NewFixedStep(sim.Interval()),
		figures: patterns.NewCycler(),
		palette: render.LifePalette,
		log:     log,
		scale:   max(cfg.Scale, minScale),
		player:  duel.Player1,
		cfg:     cfg,
	}
	switch s := sim.(type) {
	case *life.Engine:
		g.solo = s
	case *duel.Engine:
		g.match = s
		g.palette = render.DuelPalette
	}
	return g
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleCamera()
	g.handleSpeed()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.result = nil
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.figures.Next()
	}
	if g.solo != nil {
		g.updateSolo()
	}
	if g.match != nil {
		g.updateMatch()
	}
	g.handleMouse()

	if g.step.ShouldStep() {
		g.sim.Tick()
	}
	g.hud.Update(ui.StatusLines(g.sim, g.statusExtra()...))
	return nil
}

func (g *Game) updateSolo() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.solo.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.solo.Randomize(g.cfg.Seed, g.cfg.Radius)
	}
}

func (g *Game) updateMatch() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.player = g.player.Opponent()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.match.Setup() {
		g.result = nil
		g.match.Start()
		g.log.Info("match started")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) && g.match.Running() {
		res := g.match.End()
		g.result = &res
		g.log.Info("match ended",
			zap.Int("p1", res.P1),
			zap.Int("p2", res.P2),
			zap.Int("generation", res.Generations))
	}
}

func (g *Game) handleCamera() {
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) && g.scale < maxScale {
		g.scale++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) && g.scale > minScale {
		g.scale--
	}
	var d core.Coord
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		d.X -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		d.X += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		d.Y -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		d.Y += panStep
	}
	g.view = g.view.Pan(d)
}

// handleSpeed halves or doubles the tick interval.
func (g *Game) handleSpeed() {
	seconds := g.sim.Interval().Seconds()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.sim.SetTickInterval(seconds / 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.sim.SetTickInterval(seconds * 2)
	default:
		return
	}
	g.step.SetInterval(g.sim.Interval())
}

func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	x, y := ebiten.CursorPosition()
	cell := g.view.CellAt(x, y, g.scale)
	switch {
	case g.solo != nil:
		g.solo.ToggleCell(cell, left)
	case g.match != nil && right:
		g.match.ToggleCell(cell, false, g.player)
	case g.match != nil && !g.match.IsAlive(cell):
		g.match.StampPattern(cell, g.figures.Current(), g.player)
	}
}

func (g *Game) statusExtra() []string {
	extra := []string{"", "Figure: " + g.figures.Current().Name}
	if g.match != nil {
		extra = append(extra, "Player: "+g.player.String())
		if g.result != nil {
			winner := "draw"
			if w := g.result.Winner(); w != duel.None {
				winner = w.String() + " wins"
			}
			extra = append(extra, fmt.Sprintf("Result: %d - %d (%s)", g.result.P1, g.result.P2, winner))
		}
	}
	return extra
}

func (g *Game) stateOf(c core.Coord) uint8 {
	if g.match != nil {
		return uint8(g.match.OwnerOf(c))
	}
	if g.sim.IsAlive(c) {
		return 1
	}
	return 0
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.view, g.sim.Live(), g.stateOf, g.palette, g.scale)
	g.hud.Draw(screen)
}

// Layout keeps the logical screen at the window size and resizes the viewport
// to match the current zoom.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth/g.scale, outsideHeight/g.scale
	if w != g.view.W || h != g.view.H {
		// keep the board centered on the same cell while zooming
		center := g.view.Origin.Add(core.Coord{X: g.view.W / 2, Y: g.view.H / 2})
		g.view.W, g.view.H = w, h
		g.view.Origin = center.Sub(core.Coord{X: w / 2, Y: h / 2})
	}
	return outsideWidth, outsideHeight
}
