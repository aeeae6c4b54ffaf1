package navgrid

import (
	"log/slog"

	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
)

// Agent follows grid paths toward its destination. Position includes the
// base offset, so hovering agents report their flight height.
type Agent struct {
	grid *Grid
	pos  model.Vec3 // ground position

	speed      float64
	stopping   float64
	baseOffset float64

	dest    model.Vec3
	hasDest bool
	path    []model.Vec3
	vel     model.Vec3
	stopped bool
}

var _ engine.Navigator = (*Agent)(nil)

// NewAgent places an agent on grid at pos.
func NewAgent(grid *Grid, pos model.Vec3) *Agent {
	return &Agent{grid: grid, pos: pos, speed: 3.5}
}

func (a *Agent) Position() model.Vec3 {
	return a.pos.Add(model.Up.Scale(a.baseOffset))
}

func (a *Agent) Velocity() model.Vec3            { return a.vel }
func (a *Agent) SetSpeed(speed float64)          { a.speed = speed }
func (a *Agent) SetStoppingDistance(d float64)   { a.stopping = d }
func (a *Agent) BaseOffset() float64             { return a.baseOffset }
func (a *Agent) SetBaseOffset(h float64)         { a.baseOffset = h }
func (a *Agent) Stopped() bool                   { return a.stopped }
func (a *Agent) Destination() (model.Vec3, bool) { return a.dest, a.hasDest }

// SetDestination plans a path to p on the ground plane. A destination that
// stays within the current goal cell keeps the existing path.
func (a *Agent) SetDestination(p model.Vec3) {
	if a.stopped {
		return
	}
	p.Y = a.pos.Y
	if a.hasDest && len(a.path) > 0 && a.sameCell(p, a.dest) {
		a.dest = p
		a.path[len(a.path)-1] = p
		return
	}

	path := a.grid.FindPath(a.pos, p)
	if path == nil {
		slog.Debug("no path", "from", a.pos, "to", p)
		a.hasDest = false
		a.path = nil
		return
	}
	a.dest = p
	a.hasDest = true
	a.path = path
}

func (a *Agent) sameCell(p, q model.Vec3) bool {
	px, pz, okP := a.grid.CellOf(p)
	qx, qz, okQ := a.grid.CellOf(q)
	return okP && okQ && px == qx && pz == qz
}

// Stop halts the agent for good.
func (a *Agent) Stop() {
	a.stopped = true
	a.hasDest = false
	a.path = nil
	a.vel = model.Vec3{}
}

// Tick moves the agent along its path by speed*dt, halting within the
// stopping distance of the destination.
func (a *Agent) Tick(dt float64) {
	a.vel = model.Vec3{}
	if a.stopped || !a.hasDest || len(a.path) == 0 {
		return
	}
	if a.pos.FlatDistance(a.dest) <= a.stopping {
		return
	}

	budget := a.speed * dt
	start := a.pos
	for budget > 0 && len(a.path) > 0 {
		next := a.path[0]
		d := a.pos.FlatDistance(next)
		if d <= budget {
			a.pos = model.Vec3{X: next.X, Y: a.pos.Y, Z: next.Z}
			a.path = a.path[1:]
			budget -= d
			continue
		}
		step := next.Sub(a.pos).Flat().Norm().Scale(budget)
		a.pos = a.pos.Add(step)
		budget = 0
	}

	if len(a.path) == 0 {
		a.hasDest = false
	}
	if dt > 0 {
		a.vel = a.pos.Sub(start).Scale(1 / dt)
	}
}

// Crowd ticks a set of agents and drops the ones that were stopped.
type Crowd struct {
	agents []*Agent
}

func NewCrowd() *Crowd { return &Crowd{} }

// Add adds a to the crowd.
func (c *Crowd) Add(a *Agent) { c.agents = append(c.agents, a) }

func (c *Crowd) Len() int { return len(c.agents) }

// Tick moves every agent.
func (c *Crowd) Tick(dt float64) {
	kept := c.agents[:0]
	for _, a := range c.agents {
		if a.stopped {
			continue
		}
		a.Tick(dt)
		kept = append(kept, a)
	}
	clear(c.agents[len(kept):])
	c.agents = kept
}

// Clear stops and forgets every agent.
func (c *Crowd) Clear() {
	for _, a := range c.agents {
		a.Stop()
	}
	c.agents = nil
}
