// Package engine declares the services the host engine provides to gameplay code.
// Nothing here is implemented by the core; navgrid and physics carry reference
// adapters for headless runs.
package engine

import "github.com/udisondev/deadzone/internal/model"

// Navigator is the pathfinding agent attached to a mobile enemy.
type Navigator interface {
	// SetDestination asks the agent to path toward p. Ignored once stopped.
	SetDestination(p model.Vec3)
	Position() model.Vec3
	Velocity() model.Vec3
	SetSpeed(speed float64)
	SetStoppingDistance(d float64)
	// Stop halts path following for good.
	Stop()
	BaseOffset() float64
	SetBaseOffset(h float64)
}

// Lookup resolves scene objects by tag.
type Lookup interface {
	FindWithTag(tag string) (model.Target, bool)
}

// Overlap answers sphere overlap queries against collision volumes.
type Overlap interface {
	CheckSphere(center model.Vec3, radius float64, mask model.Layer) bool
}

// Launcher spawns a physical projectile with an initial velocity.
type Launcher interface {
	Launch(origin, velocity model.Vec3, damage float64)
}
