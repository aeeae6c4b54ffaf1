// Package enemy implements the per-enemy combat state machines: the ground
// melee zombie, the orbiting flying drone and the stationary turret.
//
// Enemies are ticked by ai.TickManager at a fixed step. Every wait is a timer
// from package timer owned by the enemy, so Stop or death cancels them all.
package enemy

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/deadzone/internal/ai"
	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
)

var (
	// ErrNoNavigator is returned when a mobile enemy is built without a pathfinding agent.
	ErrNoNavigator = errors.New("navigator is required")
	// ErrNoLauncher is returned when a ranged enemy is built without a projectile launcher.
	ErrNoLauncher = errors.New("projectile launcher is required")
)

// Deps carries the engine services an enemy talks to.
// FX, Lookup, Overlap and Rand are optional.
type Deps struct {
	Nav      engine.Navigator
	FX       engine.FX
	Launcher engine.Launcher
	Lookup   engine.Lookup
	Overlap  engine.Overlap
	Rand     *rand.Rand
}

// base holds what every enemy kind shares: identity, health, the weak target
// reference and the death/destroy observers.
type base struct {
	objectID uint32
	kind     model.Kind
	health   model.Health
	target   model.Target
	fx       engine.FX
	rng      *rand.Rand

	onDeath     []func(objectID uint32)
	onDestroyed []func(objectID uint32)
	destroyed   bool
}

func newBase(kind model.Kind, maxHP int, deps Deps) base {
	b := base{
		objectID: model.IDGenerator().NextEnemyID(),
		kind:     kind,
		health:   model.NewHealth(maxHP),
		fx:       engine.OrNop(deps.FX),
		rng:      deps.Rand,
	}
	if deps.Lookup != nil {
		if t, ok := deps.Lookup.FindWithTag(model.TagPlayer); ok {
			b.target = t
		}
	}
	if b.target == nil {
		slog.Debug("enemy spawned without target", "objectID", b.objectID, "kind", kind)
	}
	return b
}

func (b *base) ObjectID() uint32 { return b.objectID }
func (b *base) Kind() model.Kind { return b.kind }
func (b *base) Health() int      { return b.health.Current() }
func (b *base) MaxHealth() int   { return b.health.Max() }
func (b *base) IsDead() bool     { return b.health.IsDead() }

// Alive reports whether the enemy is still in the scene. A dying enemy is
// alive until its despawn completes.
func (b *base) Alive() bool { return !b.destroyed }

// SetTarget replaces the tracked target. nil clears it.
func (b *base) SetTarget(t model.Target) { b.target = t }

// OnDeath registers fn to run once, synchronously, when health reaches zero.
func (b *base) OnDeath(fn func(objectID uint32)) {
	b.onDeath = append(b.onDeath, fn)
}

// OnDestroyed registers fn to run when the enemy leaves the scene after dying.
// Teardown via Stop does not invoke it.
func (b *base) OnDestroyed(fn func(objectID uint32)) {
	b.onDestroyed = append(b.onDestroyed, fn)
}

// liveTarget returns the target if it is set and still alive.
func (b *base) liveTarget() (model.Target, bool) {
	if b.target == nil || !b.target.Alive() {
		return nil, false
	}
	return b.target, true
}

func (b *base) notifyDeath() {
	for _, fn := range b.onDeath {
		fn(b.objectID)
	}
}

func (b *base) destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	for _, fn := range b.onDestroyed {
		fn(b.objectID)
	}
}

func (b *base) randRange(lo, hi float64) float64 {
	var f float64
	if b.rng != nil {
		f = b.rng.Float64()
	} else {
		f = rand.Float64()
	}
	return lo + f*(hi-lo)
}

func (b *base) logState(state fmt.Stringer) {
	if ai.IsDebugEnabled() {
		slog.Debug("enemy state", "objectID", b.objectID, "kind", b.kind, "state", state)
	}
}
