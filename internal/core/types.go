package core

import (
	"context"
	"time"
)

// Coord identifies one cell on the unbounded grid.
type Coord struct {
	X int
	Y int
}

// Add returns the coordinate offset by o.
func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }

// Sub returns the coordinate shifted back by o.
func (c Coord) Sub(o Coord) Coord { return Coord{X: c.X - o.X, Y: c.Y - o.Y} }

var mooreOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the eight Moore neighbors of c.
func (c Coord) Neighbors() [8]Coord {
	var out [8]Coord
	for i, o := range mooreOffsets {
		out[i] = c.Add(o)
	}
	return out
}

// Sim defines the operation set every engine exposes to schedulers and
// presentation code.
type Sim interface {
	Name() string
	Clear()
	Tick()
	TickContext(ctx context.Context) error
	SetTickInterval(seconds float64)
	Interval() time.Duration
	Running() bool
	Start()
	Stop()
	IsAlive(c Coord) bool
	Live() []Coord
	Population() int
	Generation() int
	Parameters() ParameterSnapshot
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
