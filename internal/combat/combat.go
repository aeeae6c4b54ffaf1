// Package combat resolves hitscan bullets and physical projectiles against
// the collision world and applies the resulting damage.
package combat

import "github.com/udisondev/deadzone/internal/model"

// Raycaster answers first-hit ray queries. Colliders on mask layers are hit.
type Raycaster interface {
	Raycast(origin, dir model.Vec3, maxDistance float64, mask model.Layer) (model.Hit, bool)
}

// Sweeper answers first-contact queries for a sphere moving from -> to.
type Sweeper interface {
	Sweep(from, to model.Vec3, radius float64, mask model.Layer) (model.Hit, bool)
}

// BulletConfig tunes hitscan bullets.
type BulletConfig struct {
	Damage      int         `yaml:"damage"`
	MaxDistance float64     `yaml:"max_distance"`
	Lifetime    float64     `yaml:"lifetime"`
	DecalOffset float64     `yaml:"decal_offset"`
	IgnoreMask  model.Layer `yaml:"ignore_mask"`
}

// ProjectileConfig tunes physical projectiles.
type ProjectileConfig struct {
	Radius   float64 `yaml:"radius"`
	Lifetime float64 `yaml:"lifetime"`
	Gravity  float64 `yaml:"gravity"`
}

// Config groups bullet and projectile tuning.
type Config struct {
	Bullet     BulletConfig     `yaml:"bullet"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

// DefaultConfig returns the stock weapon tuning.
func DefaultConfig() Config {
	return Config{
		Bullet: BulletConfig{
			Damage:      5,
			MaxDistance: 1_000_000,
			Lifetime:    0.1,
			DecalOffset: 0.05,
			IgnoreMask:  model.LayerWeapon | model.LayerPlayer,
		},
		Projectile: ProjectileConfig{
			Radius:   0.15,
			Lifetime: 10,
		},
	}
}

// projectileMask is every layer a projectile can touch.
const projectileMask = model.LayerAll &^ (model.LayerProjectile | model.LayerWeapon)
