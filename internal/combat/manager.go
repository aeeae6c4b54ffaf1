package combat

import (
	"log/slog"
	"maps"

	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
)

// Stats counts shots and what they hit.
type Stats struct {
	BulletsFired        int            `msgpack:"bullets_fired"`
	BulletHits          int            `msgpack:"bullet_hits"`
	ProjectilesLaunched int            `msgpack:"projectiles_launched"`
	PlayerHits          int            `msgpack:"player_hits"`
	HitsByKind          map[string]int `msgpack:"hits_by_kind"`
}

// Manager owns every live bullet and projectile and ticks them against the
// collision world. It is the engine.Launcher handed to ranged enemies.
type Manager struct {
	cfg   Config
	ray   Raycaster
	sweep Sweeper
	fx    engine.FX

	bullets     []*Bullet
	projectiles []*Projectile
	stats       Stats
}

var _ engine.Launcher = (*Manager)(nil)

// NewManager creates new combat manager. ray and sweep may be nil, in which
// case bullets only expire and projectiles fly until their lifetime ends.
func NewManager(cfg Config, ray Raycaster, sweep Sweeper, fx engine.FX) *Manager {
	if ray == nil || sweep == nil {
		slog.Warn("combat manager without collision queries", "raycast", ray != nil, "sweep", sweep != nil)
	}
	return &Manager{
		cfg:   cfg,
		ray:   ray,
		sweep: sweep,
		fx:    engine.OrNop(fx),
		stats: Stats{HitsByKind: make(map[string]int)},
	}
}

// FireBullet spawns a hitscan bullet and returns its object ID.
func (m *Manager) FireBullet(origin, dir model.Vec3) uint32 {
	b := NewBullet(origin, dir, m.cfg.Bullet)
	m.bullets = append(m.bullets, b)
	m.stats.BulletsFired++
	return b.ObjectID()
}

// Launch spawns a projectile.
func (m *Manager) Launch(origin, velocity model.Vec3, damage float64) {
	p := NewProjectile(origin, velocity, damage, m.cfg.Projectile)
	m.projectiles = append(m.projectiles, p)
	m.stats.ProjectilesLaunched++
}

// Tick advances bullets then projectiles and drops finished ones.
func (m *Manager) Tick(dt float64) {
	for _, b := range m.bullets {
		if kind := b.Tick(dt, m.ray, m.fx); kind != model.HitNone {
			m.stats.BulletHits++
			m.stats.HitsByKind[kind.String()]++
		}
	}
	for _, p := range m.projectiles {
		if p.Tick(dt, m.sweep) == model.HitPlayer {
			m.stats.PlayerHits++
		}
	}

	m.bullets = compact(m.bullets)
	m.projectiles = compact(m.projectiles)
}

type finisher interface{ Done() bool }

func compact[T finisher](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.Done() {
			kept = append(kept, it)
		}
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}

// Live returns the number of bullets and projectiles in flight.
func (m *Manager) Live() (bullets, projectiles int) {
	return len(m.bullets), len(m.projectiles)
}

// Projectiles returns the projectiles in flight.
func (m *Manager) Projectiles() []*Projectile {
	return m.projectiles
}

// Clear drops everything in flight.
func (m *Manager) Clear() {
	m.bullets = nil
	m.projectiles = nil
}

// Stats returns a copy of the counters.
func (m *Manager) Stats() Stats {
	s := m.stats
	s.HitsByKind = maps.Clone(m.stats.HitsByKind)
	return s
}
