package enemy

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/timer"
)

// GroundConfig tunes the melee zombie.
type GroundConfig struct {
	Speed            float64 `yaml:"speed"`
	StoppingDistance float64 `yaml:"stopping_distance"`
	Damage           float64 `yaml:"damage"`
	AttackCooldown   float64 `yaml:"attack_cooldown"`
	Health           int     `yaml:"health"`
	DespawnDelay     float64 `yaml:"despawn_delay"`
	Radius           float64 `yaml:"radius"`

	BloodCount  int     `yaml:"blood_count"`
	BloodHeight float64 `yaml:"blood_height"`
	BloodRadius float64 `yaml:"blood_radius"`
}

// DefaultGroundConfig returns the stock zombie tuning.
func DefaultGroundConfig() GroundConfig {
	return GroundConfig{
		Speed:            1,
		StoppingDistance: 1.5,
		Damage:           1,
		AttackCooldown:   1,
		Health:           10,
		DespawnDelay:     0,
		Radius:           0.5,
		BloodCount:       10,
		BloodHeight:      1,
		BloodRadius:      1,
	}
}

// Validate checks the tuning is usable.
func (c GroundConfig) Validate() error {
	switch {
	case c.Health <= 0:
		return fmt.Errorf("ground health must be positive, got %d", c.Health)
	case c.AttackCooldown <= 0:
		return fmt.Errorf("ground attack cooldown must be positive, got %v", c.AttackCooldown)
	case c.StoppingDistance < 0:
		return fmt.Errorf("ground stopping distance must not be negative, got %v", c.StoppingDistance)
	case c.DespawnDelay < 0:
		return fmt.Errorf("ground despawn delay must not be negative, got %v", c.DespawnDelay)
	}
	return nil
}

// Ground is the melee zombie. It chases its target through the navigator and,
// once within stopping distance, strikes every AttackCooldown seconds until
// the target steps out of reach.
type Ground struct {
	base
	cfg GroundConfig
	nav engine.Navigator

	state     model.GroundState
	attacking bool
	strike    timer.Interval
	despawn   timer.Delay

	ambient bool
}

// NewGround builds a zombie bound to nav. The target is resolved by tag when
// deps.Lookup is set; SetTarget overrides it.
func NewGround(cfg GroundConfig, deps Deps) (*Ground, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating ground enemy: %w", err)
	}
	if deps.Nav == nil {
		return nil, fmt.Errorf("creating ground enemy: %w", ErrNoNavigator)
	}

	g := &Ground{
		base:   newBase(model.KindZombie, cfg.Health, deps),
		cfg:    cfg,
		nav:    deps.Nav,
		strike: timer.NewInterval(cfg.AttackCooldown),
	}
	g.nav.SetSpeed(cfg.Speed)
	g.nav.SetStoppingDistance(cfg.StoppingDistance)
	g.resumeAmbient()
	return g, nil
}

func (g *Ground) State() model.GroundState { return g.state }
func (g *Ground) Attacking() bool          { return g.attacking }
func (g *Ground) Position() model.Vec3     { return g.nav.Position() }
func (g *Ground) HitKind() model.HitKind   { return model.HitMelee }
func (g *Ground) Radius() float64          { return g.cfg.Radius }

func (g *Ground) setState(s model.GroundState) {
	if g.state == s {
		return
	}
	g.state = s
	g.logState(s)
}

// Tick advances the zombie by dt seconds.
func (g *Ground) Tick(dt float64) {
	if g.destroyed {
		return
	}
	if g.state == model.GroundDying {
		g.despawn.Tick(dt)
		return
	}

	target, ok := g.liveTarget()
	if !ok {
		if g.attacking {
			g.stopAttack()
			g.setState(model.GroundIdle)
		}
		return
	}

	tp := target.Position()
	if g.nav.Position().Distance(tp) > g.cfg.StoppingDistance {
		if g.attacking {
			g.stopAttack()
		}
		g.nav.SetDestination(tp)
		g.setState(model.GroundChasing)
		return
	}

	if !g.attacking {
		g.startAttack(target)
		return
	}
	for range g.strike.Advance(dt) {
		g.hit(target)
	}
}

func (g *Ground) startAttack(target model.Target) {
	g.attacking = true
	g.strike.Reset()
	g.pauseAmbient()
	g.setState(model.GroundAttacking)
	g.hit(target)
}

func (g *Ground) stopAttack() {
	g.attacking = false
	g.strike.Reset()
	g.resumeAmbient()
}

func (g *Ground) hit(target model.Target) {
	g.fx.Play(engine.CueZombieAttack, g.nav.Position())

	victim, ok := target.(model.PlayerDamageable)
	if !ok {
		slog.Warn("zombie target has no health contract", "objectID", g.objectID)
		return
	}
	victim.TakeDamage(g.cfg.Damage)
}

// OnTouch reacts to something entering the zombie's trigger volume.
// Only the player provokes it: the attack cue plays and the walk loop pauses.
func (g *Ground) OnTouch(tag string) {
	if tag != model.TagPlayer || g.destroyed || g.health.IsDead() {
		return
	}
	g.pauseAmbient()
	g.fx.Play(engine.CueZombieAttack, g.nav.Position())
}

// TakeDamage applies amount. Fatal damage enters Dying at once: movement and
// attacks stop, death observers run, and the zombie despawns after the grace
// delay. Damage while dying is ignored.
func (g *Ground) TakeDamage(amount int) {
	if g.destroyed {
		return
	}
	applied, fatal := g.health.Apply(amount)
	if !applied {
		return
	}
	g.fx.Play(engine.CueZombieHurt, g.nav.Position())
	if fatal {
		g.die()
	}
}

func (g *Ground) die() {
	g.attacking = false
	g.ambient = false
	g.nav.Stop()
	g.setState(model.GroundDying)

	pos := g.nav.Position()
	g.fx.Play(engine.CueZombieDeath, pos)
	g.spawnBlood(pos)
	g.notifyDeath()

	g.despawn.Start(g.cfg.DespawnDelay, func() {
		g.setState(model.GroundDespawned)
		g.destroy()
	})
}

// spawnBlood scatters blood effects on a disc around pos at a fixed height.
func (g *Ground) spawnBlood(pos model.Vec3) {
	for range g.cfg.BloodCount {
		angle := g.randRange(0, 2*math.Pi)
		r := g.cfg.BloodRadius * math.Sqrt(g.randRange(0, 1))
		at := model.Vec3{
			X: pos.X + r*math.Cos(angle),
			Y: pos.Y + g.cfg.BloodHeight,
			Z: pos.Z + r*math.Sin(angle),
		}
		g.fx.Spawn(engine.EffectBlood, at, model.Up)
	}
}

func (g *Ground) pauseAmbient() { g.ambient = false }

func (g *Ground) resumeAmbient() {
	if g.ambient {
		return
	}
	g.ambient = true
	g.fx.Play(engine.CueZombieWalk, g.nav.Position())
}

// Stop removes the zombie without death callbacks.
func (g *Ground) Stop() {
	g.despawn.Cancel()
	g.attacking = false
	g.nav.Stop()
	g.destroyed = true
}
