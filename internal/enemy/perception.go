package enemy

import (
	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
)

// Perception gates behaviour on sight and attack radii.
type Perception struct {
	SightRange  float64
	AttackRange float64
}

// Sense reports whether to is within sight and attack range of from.
// Attack range only counts while in sight.
func (p Perception) Sense(from, to model.Vec3) (inSight, inAttack bool) {
	d := from.Distance(to)
	inSight = d <= p.SightRange
	inAttack = inSight && d <= p.AttackRange
	return inSight, inAttack
}

// overlapSense answers sight checks with sphere overlap queries against
// collision volumes on mask. Without an overlap service it falls back to the
// distance to the target.
type overlapSense struct {
	overlap engine.Overlap
	mask    model.Layer
}

func (s overlapSense) within(center model.Vec3, radius float64, target model.Target) bool {
	if s.overlap != nil {
		return s.overlap.CheckSphere(center, radius, s.mask)
	}
	if target == nil || !target.Alive() {
		return false
	}
	return center.Distance(target.Position()) <= radius
}
