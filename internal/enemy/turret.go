package enemy

import (
	"fmt"

	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/timer"
)

// TurretConfig tunes the stationary turret.
type TurretConfig struct {
	Health             int         `yaml:"health"`
	SightRange         float64     `yaml:"sight_range"`
	AttackRange        float64     `yaml:"attack_range"`
	TimeBetweenAttacks float64     `yaml:"time_between_attacks"`
	RotationSpeed      float64     `yaml:"rotation_speed"`
	Impulse            float64     `yaml:"impulse"`
	ProjectileDamage   float64     `yaml:"projectile_damage"`
	MuzzleForward      float64     `yaml:"muzzle_forward"`
	MuzzleUp           float64     `yaml:"muzzle_up"`
	TargetMask         model.Layer `yaml:"target_mask"`
	Radius             float64     `yaml:"radius"`
}

// DefaultTurretConfig returns the stock turret tuning.
func DefaultTurretConfig() TurretConfig {
	return TurretConfig{
		Health:             20,
		SightRange:         20,
		AttackRange:        12,
		TimeBetweenAttacks: 1.5,
		RotationSpeed:      5,
		Impulse:            32,
		ProjectileDamage:   10,
		MuzzleForward:      1.5,
		MuzzleUp:           1,
		TargetMask:         model.LayerPlayer,
		Radius:             1,
	}
}

// Validate checks the tuning is usable.
func (c TurretConfig) Validate() error {
	switch {
	case c.Health <= 0:
		return fmt.Errorf("turret health must be positive, got %d", c.Health)
	case c.TimeBetweenAttacks <= 0:
		return fmt.Errorf("turret time between attacks must be positive, got %v", c.TimeBetweenAttacks)
	case c.SightRange < 0 || c.AttackRange < 0:
		return fmt.Errorf("turret ranges must not be negative, got sight %v attack %v", c.SightRange, c.AttackRange)
	}
	return nil
}

// Turret is a stationary gun. It senses the player with sphere overlaps,
// swivels toward them while in sight and fires one projectile per attack
// window while also in attack range.
type Turret struct {
	base
	cfg       TurretConfig
	transform model.Transform
	launcher  engine.Launcher
	sense     overlapSense

	state           model.TurretState
	alreadyAttacked bool
	resetAttack     timer.Delay
}

// NewTurret places a turret at t.
func NewTurret(cfg TurretConfig, t model.Transform, deps Deps) (*Turret, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating turret: %w", err)
	}
	if deps.Launcher == nil {
		return nil, fmt.Errorf("creating turret: %w", ErrNoLauncher)
	}
	return &Turret{
		base:      newBase(model.KindTurret, cfg.Health, deps),
		cfg:       cfg,
		transform: t,
		launcher:  deps.Launcher,
		sense:     overlapSense{overlap: deps.Overlap, mask: cfg.TargetMask},
	}, nil
}

func (t *Turret) State() model.TurretState { return t.state }
func (t *Turret) Yaw() float64             { return t.transform.Yaw }
func (t *Turret) Position() model.Vec3     { return t.transform.Position }
func (t *Turret) HitKind() model.HitKind   { return model.HitTurret }
func (t *Turret) Radius() float64          { return t.cfg.Radius }
func (t *Turret) AlreadyAttacked() bool    { return t.alreadyAttacked }

func (t *Turret) setState(s model.TurretState) {
	if t.state == s {
		return
	}
	t.state = s
	t.logState(s)
}

// Tick advances the turret by dt seconds.
func (t *Turret) Tick(dt float64) {
	if t.destroyed || t.state == model.TurretDestroyed {
		return
	}
	t.resetAttack.Tick(dt)

	target, _ := t.liveTarget()
	pos := t.transform.Position
	inSight := t.sense.within(pos, t.cfg.SightRange, target)
	inAttack := inSight && t.sense.within(pos, t.cfg.AttackRange, target)

	if !inSight || target == nil {
		t.setState(model.TurretDormant)
		return
	}

	tp := target.Position()
	t.transform.Yaw = model.SmoothYaw(t.transform.Yaw, model.YawTo(pos, tp), dt*t.cfg.RotationSpeed)

	if !inAttack {
		t.setState(model.TurretTracking)
		return
	}
	t.setState(model.TurretAttacking)
	t.attack(tp)
}

func (t *Turret) attack(tp model.Vec3) {
	if t.alreadyAttacked {
		return
	}
	pos := t.transform.Position
	muzzle := pos.
		Add(model.Forward(t.transform.Yaw).Scale(t.cfg.MuzzleForward)).
		Add(model.Up.Scale(t.cfg.MuzzleUp))
	dir := tp.Sub(muzzle).Norm()
	t.launcher.Launch(muzzle, dir.Scale(t.cfg.Impulse), t.cfg.ProjectileDamage)
	t.fx.Play(engine.CueTurretAttack, pos)

	t.alreadyAttacked = true
	t.resetAttack.Start(t.cfg.TimeBetweenAttacks, func() { t.alreadyAttacked = false })
}

// TakeDamage applies amount. The first fatal hit cancels the attack timer,
// plays the destruction effects and removes the turret; later hits are ignored.
func (t *Turret) TakeDamage(amount int) {
	if t.destroyed {
		return
	}
	applied, fatal := t.health.Apply(amount)
	if !applied {
		return
	}
	pos := t.transform.Position
	t.fx.Play(engine.CueTurretHurt, pos)
	if !fatal {
		return
	}

	t.resetAttack.Cancel()
	t.alreadyAttacked = true
	t.setState(model.TurretDestroyed)
	t.fx.Spawn(engine.EffectExplosion, pos, model.Up)
	t.fx.Play(engine.CueTurretDestroy, pos)
	t.notifyDeath()
	t.destroy()
}

// Stop removes the turret without death callbacks.
func (t *Turret) Stop() {
	t.resetAttack.Cancel()
	t.destroyed = true
}
