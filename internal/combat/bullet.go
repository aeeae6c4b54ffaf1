package combat

import (
	"log/slog"

	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
)

// Bullet is a hitscan shot. Each tick it casts a ray along its direction and
// resolves the first hit; with nothing hit it expires after its lifetime.
type Bullet struct {
	id     uint32
	origin model.Vec3
	dir    model.Vec3
	cfg    BulletConfig
	age    float64
	done   bool
}

// NewBullet creates a bullet at origin heading along dir.
func NewBullet(origin, dir model.Vec3, cfg BulletConfig) *Bullet {
	return &Bullet{
		id:     model.IDGenerator().NextProjectileID(),
		origin: origin,
		dir:    dir.Norm(),
		cfg:    cfg,
	}
}

func (b *Bullet) ObjectID() uint32 { return b.id }
func (b *Bullet) Done() bool       { return b.done }

// Tick casts the ray and ages the bullet. It returns the hit kind resolved
// this tick, or HitNone.
func (b *Bullet) Tick(dt float64, ray Raycaster, fx engine.FX) model.HitKind {
	if b.done {
		return model.HitNone
	}
	if ray != nil {
		if hit, ok := ray.Raycast(b.origin, b.dir, b.cfg.MaxDistance, ^b.cfg.IgnoreMask); ok {
			b.done = true
			return b.resolve(hit, engine.OrNop(fx))
		}
	}
	b.age += dt
	if b.age >= b.cfg.Lifetime {
		b.done = true
	}
	return model.HitNone
}

// resolve applies the hit by collider kind. Unknown kinds deal no damage.
func (b *Bullet) resolve(hit model.Hit, fx engine.FX) model.HitKind {
	if hit.Collider == nil {
		return model.HitNone
	}
	kind := hit.Collider.HitKind()
	switch kind {
	case model.HitSurface:
		at := hit.Point.Add(hit.Normal.Scale(b.cfg.DecalOffset))
		fx.Spawn(engine.EffectDecal, at, hit.Normal)
	case model.HitMelee:
		fx.Spawn(engine.EffectBlood, hit.Point, hit.Normal)
		b.damage(hit.Collider)
	case model.HitTurret, model.HitFlying:
		b.damage(hit.Collider)
	default:
		return model.HitNone
	}
	return kind
}

func (b *Bullet) damage(c model.Collider) {
	d, ok := c.(model.Damageable)
	if !ok {
		slog.Warn("bullet hit collider without health", "kind", c.HitKind())
		return
	}
	d.TakeDamage(b.cfg.Damage)
}
