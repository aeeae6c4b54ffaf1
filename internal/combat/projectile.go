package combat

import (
	"github.com/udisondev/deadzone/internal/model"
)

// Projectile is a physical shot fired by ranged enemies. It only hurts the
// player and is consumed by the first thing it touches.
type Projectile struct {
	id      uint32
	pos     model.Vec3
	vel     model.Vec3
	damage  float64
	cfg     ProjectileConfig
	age     float64
	done    bool
	hitKind model.HitKind
}

// NewProjectile creates a projectile at origin moving with velocity.
func NewProjectile(origin, velocity model.Vec3, damage float64, cfg ProjectileConfig) *Projectile {
	return &Projectile{
		id:     model.IDGenerator().NextProjectileID(),
		pos:    origin,
		vel:    velocity,
		damage: damage,
		cfg:    cfg,
	}
}

func (p *Projectile) ObjectID() uint32     { return p.id }
func (p *Projectile) Position() model.Vec3 { return p.pos }
func (p *Projectile) Velocity() model.Vec3 { return p.vel }
func (p *Projectile) Done() bool           { return p.done }

// Tick moves the projectile and resolves the first contact along the way.
// It returns the kind of collider touched this tick, or HitNone.
func (p *Projectile) Tick(dt float64, sweep Sweeper) model.HitKind {
	if p.done {
		return model.HitNone
	}
	p.vel.Y -= p.cfg.Gravity * dt
	next := p.pos.Add(p.vel.Scale(dt))

	if sweep != nil {
		if hit, ok := sweep.Sweep(p.pos, next, p.cfg.Radius, projectileMask); ok && hit.Collider != nil {
			p.pos = hit.Point
			p.OnPhysicalContact(hit.Collider)
			return p.hitKind
		}
	}
	p.pos = next

	p.age += dt
	if p.cfg.Lifetime > 0 && p.age >= p.cfg.Lifetime {
		p.done = true
	}
	return model.HitNone
}

// OnPhysicalContact damages other when it is the player; any first contact
// consumes the projectile.
func (p *Projectile) OnPhysicalContact(other model.Collider) {
	if p.done || other == nil {
		return
	}
	p.done = true
	p.hitKind = other.HitKind()

	if p.hitKind != model.HitPlayer {
		return
	}
	if victim, ok := other.(model.PlayerDamageable); ok {
		victim.TakeDamage(p.damage)
	}
}
