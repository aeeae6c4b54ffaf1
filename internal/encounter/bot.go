package encounter

import (
	"math"

	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/player"
)

// pilot walks the player along a fixed route, one leg at a time.
type pilot struct {
	route []model.Vec3
	speed float64
	next  int
}

func newPilot(route []model.Vec3, speed float64) pilot {
	return pilot{route: route, speed: speed}
}

func (p *pilot) Reset() { p.next = 0 }

// Done reports whether the route is finished.
func (p *pilot) Done() bool { return p.next >= len(p.route) }

func (p *pilot) Tick(a *player.Avatar, dt float64) {
	if p.Done() || p.speed <= 0 {
		return
	}
	pos := a.Position()
	goal := p.route[p.next]
	goal.Y = pos.Y

	budget := p.speed * dt
	d := pos.FlatDistance(goal)
	if d <= budget {
		a.SetPosition(goal)
		p.next++
		return
	}
	a.SetPosition(pos.Add(goal.Sub(pos).Flat().Norm().Scale(budget)))
}

// hostile is anything the player's weapon may aim at.
type hostile interface {
	Position() model.Vec3
	IsDead() bool
}

// nearestHostile returns the closest living enemy within reach of from.
func (e *Encounter) nearestHostile(from model.Vec3, reach float64) (hostile, bool) {
	var (
		best     hostile
		bestDist = math.Inf(1)
	)
	consider := func(h hostile) {
		if h.IsDead() {
			return
		}
		if d := from.Distance(h.Position()); d <= reach && d < bestDist {
			best, bestDist = h, d
		}
	}
	for _, z := range e.zombies.Active() {
		consider(z)
	}
	for _, d := range e.drones.Active() {
		consider(d)
	}
	for _, t := range e.turrets {
		consider(t)
	}
	return best, best != nil
}

// aim turns the player toward the nearest enemy and pulls the trigger.
// The weapon's fire interval limits the rate.
func (e *Encounter) aim() {
	if !e.weapon.Ready() {
		return
	}
	eye := e.avatar.EyePosition()
	h, ok := e.nearestHostile(eye, e.weapon.Range())
	if !ok {
		return
	}
	tp := h.Position()
	e.avatar.SetYaw(model.YawTo(eye, tp))
	e.weapon.Fire(eye, tp.Sub(eye).Norm())
}
