package enemy

import (
	"fmt"
	"math"

	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/timer"
)

// FlyerConfig tunes the flying drone.
type FlyerConfig struct {
	Speed              float64 `yaml:"speed"`
	OrbitRadius        float64 `yaml:"orbit_radius"`
	OrbitSpeed         float64 `yaml:"orbit_speed"` // degrees per second
	HeightOffset       float64 `yaml:"height_offset"`
	ApproachSpeed      float64 `yaml:"approach_speed"`
	Health             int     `yaml:"health"`
	TimeBetweenAttacks float64 `yaml:"time_between_attacks"`
	AttackRange        float64 `yaml:"attack_range"`
	SightRange         float64 `yaml:"sight_range"`
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	ProjectileDamage   float64 `yaml:"projectile_damage"`
	MuzzleOffset       float64 `yaml:"muzzle_offset"`
	TurnRate           float64 `yaml:"turn_rate"`
	Radius             float64 `yaml:"radius"`

	FallSpeed   float64 `yaml:"fall_speed"`
	SpinMin     float64 `yaml:"spin_min"`
	SpinMax     float64 `yaml:"spin_max"`
	SettleDelay float64 `yaml:"settle_delay"`
}

// DefaultFlyerConfig returns the stock drone tuning.
func DefaultFlyerConfig() FlyerConfig {
	return FlyerConfig{
		Speed:              3.5,
		OrbitRadius:        3.5,
		OrbitSpeed:         3,
		HeightOffset:       2,
		ApproachSpeed:      0.5,
		Health:             10,
		TimeBetweenAttacks: 2,
		AttackRange:        10,
		SightRange:         15,
		ProjectileSpeed:    32,
		ProjectileDamage:   10,
		MuzzleOffset:       1.5,
		TurnRate:           10,
		Radius:             0.6,
		FallSpeed:          5,
		SpinMin:            300,
		SpinMax:            600,
		SettleDelay:        2,
	}
}

// Validate checks the tuning is usable.
func (c FlyerConfig) Validate() error {
	switch {
	case c.Health <= 0:
		return fmt.Errorf("flyer health must be positive, got %d", c.Health)
	case c.TimeBetweenAttacks <= 0:
		return fmt.Errorf("flyer time between attacks must be positive, got %v", c.TimeBetweenAttacks)
	case c.OrbitRadius <= 1:
		return fmt.Errorf("flyer orbit radius must exceed 1, got %v", c.OrbitRadius)
	case c.FallSpeed <= 0:
		return fmt.Errorf("flyer fall speed must be positive, got %v", c.FallSpeed)
	case c.SpinMax < c.SpinMin:
		return fmt.Errorf("flyer spin range is inverted: %v > %v", c.SpinMin, c.SpinMax)
	}
	return nil
}

// orbitBand is how far the drone may drift from OrbitRadius before it
// corrects radially instead of orbiting.
const orbitBand = 1.0

// Flyer is the flying drone. Out of sight it flies straight at its target;
// in sight it holds an orbit band around it and fires one projectile per
// attack window while in attack range. Fatal damage drops it out of the sky.
type Flyer struct {
	base
	cfg      FlyerConfig
	nav      engine.Navigator
	launcher engine.Launcher
	sense    Perception

	state           model.FlyerState
	yaw             float64
	orbitAngle      float64
	alreadyAttacked bool
	resetAttack     timer.Delay

	spin     model.Vec3 // degrees per second per axis while falling
	rotation model.Vec3
	settle   timer.Delay
}

// NewFlyer builds a drone bound to nav and launcher.
func NewFlyer(cfg FlyerConfig, deps Deps) (*Flyer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating flying enemy: %w", err)
	}
	if deps.Nav == nil {
		return nil, fmt.Errorf("creating flying enemy: %w", ErrNoNavigator)
	}
	if deps.Launcher == nil {
		return nil, fmt.Errorf("creating flying enemy: %w", ErrNoLauncher)
	}

	f := &Flyer{
		base:     newBase(model.KindDrone, cfg.Health, deps),
		cfg:      cfg,
		nav:      deps.Nav,
		launcher: deps.Launcher,
		sense:    Perception{SightRange: cfg.SightRange, AttackRange: cfg.AttackRange},
	}
	f.nav.SetSpeed(cfg.Speed)
	f.nav.SetBaseOffset(cfg.HeightOffset)
	return f, nil
}

func (f *Flyer) State() model.FlyerState { return f.state }
func (f *Flyer) Yaw() float64            { return f.yaw }
func (f *Flyer) OrbitAngle() float64     { return f.orbitAngle }
func (f *Flyer) AlreadyAttacked() bool   { return f.alreadyAttacked }
func (f *Flyer) Rotation() model.Vec3    { return f.rotation }
func (f *Flyer) Position() model.Vec3    { return f.nav.Position() }
func (f *Flyer) HitKind() model.HitKind  { return model.HitFlying }
func (f *Flyer) Radius() float64         { return f.cfg.Radius }
func (f *Flyer) Config() FlyerConfig     { return f.cfg }
func (f *Flyer) setState(s model.FlyerState) {
	if f.state == s {
		return
	}
	f.state = s
	f.logState(s)
}

// Tick advances the drone by dt seconds.
func (f *Flyer) Tick(dt float64) {
	if f.destroyed {
		return
	}
	switch f.state {
	case model.FlyerFalling:
		f.fall(dt)
		return
	case model.FlyerExploded:
		f.settle.Tick(dt)
		return
	}

	f.resetAttack.Tick(dt)

	target, ok := f.liveTarget()
	if !ok {
		return
	}

	pos := f.nav.Position()
	tp := target.Position()
	f.yaw = model.SmoothYaw(f.yaw, model.YawTo(pos, tp), dt*f.cfg.TurnRate)

	inSight, inAttack := f.sense.Sense(pos, tp)
	if !inSight {
		f.nav.SetDestination(tp)
		f.setState(model.FlyerApproaching)
		return
	}

	f.track(pos, tp, dt)
	if inAttack {
		f.setState(model.FlyerAttacking)
		f.attack(pos, tp)
	} else {
		f.setState(model.FlyerOrbiting)
	}
}

// track keeps the drone inside the orbit band on the ground plane: it backs
// off when too close, closes in when too far and circles otherwise.
func (f *Flyer) track(pos, tp model.Vec3, dt float64) {
	d := pos.FlatDistance(tp)
	step := f.cfg.ApproachSpeed * dt

	switch {
	case d < f.cfg.OrbitRadius-orbitBand:
		away := pos.Sub(tp).Flat().Norm()
		f.nav.SetDestination(pos.Add(away.Scale(step)))
	case d > f.cfg.OrbitRadius+orbitBand:
		toward := tp.Sub(pos).Flat().Norm()
		f.nav.SetDestination(pos.Add(toward.Scale(step)))
	default:
		f.orbit(tp, dt)
	}
}

func (f *Flyer) orbit(tp model.Vec3, dt float64) {
	f.orbitAngle = math.Mod(f.orbitAngle+f.cfg.OrbitSpeed*dt, 360)
	rad := f.orbitAngle * math.Pi / 180
	f.nav.SetDestination(model.Vec3{
		X: tp.X + f.cfg.OrbitRadius*math.Cos(rad),
		Y: tp.Y + f.cfg.HeightOffset,
		Z: tp.Z + f.cfg.OrbitRadius*math.Sin(rad),
	})
}

func (f *Flyer) attack(pos, tp model.Vec3) {
	if f.alreadyAttacked {
		return
	}
	f.fx.Play(engine.CueDroneAttack, pos)

	dir := tp.Sub(pos).Norm()
	muzzle := pos.Add(model.Forward(f.yaw).Scale(f.cfg.MuzzleOffset))
	f.launcher.Launch(muzzle, dir.Scale(f.cfg.ProjectileSpeed), f.cfg.ProjectileDamage)

	f.alreadyAttacked = true
	f.resetAttack.Start(f.cfg.TimeBetweenAttacks, func() { f.alreadyAttacked = false })
}

// TakeDamage applies amount unless the drone is already dead. Fatal damage
// halts the AI and starts the fall.
func (f *Flyer) TakeDamage(amount int) {
	if f.destroyed || f.health.IsDead() {
		return
	}
	applied, fatal := f.health.Apply(amount)
	if !applied {
		return
	}
	f.fx.Play(engine.CueDroneHurt, f.nav.Position())
	if fatal {
		f.die()
	}
}

func (f *Flyer) die() {
	f.nav.Stop()
	f.resetAttack.Cancel()
	f.setState(model.FlyerFalling)
	f.fx.Play(engine.CueDroneFalling, f.nav.Position())
	f.spin = model.Vec3{
		X: f.randRange(f.cfg.SpinMin, f.cfg.SpinMax),
		Y: f.randRange(f.cfg.SpinMin, f.cfg.SpinMax),
		Z: f.randRange(f.cfg.SpinMin, f.cfg.SpinMax),
	}
	f.notifyDeath()
}

// fall lowers the hover height while spinning; touching down explodes.
func (f *Flyer) fall(dt float64) {
	f.rotation = f.rotation.Add(f.spin.Scale(dt))

	h := f.nav.BaseOffset() - f.cfg.FallSpeed*dt
	if h > 0 {
		f.nav.SetBaseOffset(h)
		return
	}
	f.nav.SetBaseOffset(0)

	pos := f.nav.Position()
	f.fx.Spawn(engine.EffectExplosion, pos, model.Up)
	f.fx.Play(engine.CueExplosion, pos)
	f.setState(model.FlyerExploded)
	f.settle.Start(f.cfg.SettleDelay, f.destroy)
}

// Stop removes the drone without death callbacks, interrupting any fall.
func (f *Flyer) Stop() {
	f.resetAttack.Cancel()
	f.settle.Cancel()
	f.nav.Stop()
	f.destroyed = true
}
