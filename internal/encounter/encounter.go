// Package encounter assembles one playable arena from config and steps it:
// the player and their weapon, the spawners, the turrets, navigation, the
// collision world, bullets and projectiles, and the scene-flow triggers.
package encounter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/deadzone/internal/ai"
	"github.com/udisondev/deadzone/internal/combat"
	"github.com/udisondev/deadzone/internal/config"
	"github.com/udisondev/deadzone/internal/enemy"
	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/navgrid"
	"github.com/udisondev/deadzone/internal/physics"
	"github.com/udisondev/deadzone/internal/player"
	"github.com/udisondev/deadzone/internal/progress"
	"github.com/udisondev/deadzone/internal/spawn"
)

const (
	playerRadius = 0.5
	// triggerReach is how far a zombie's touch volume extends past its body.
	triggerReach = 1.0
)

// Encounter is one arena run. It is not safe for concurrent use: Step,
// Summary and Snapshot belong to the simulation goroutine.
type Encounter struct {
	id        uuid.UUID
	cfg       config.Deadzone
	startedAt time.Time
	rng       *rand.Rand
	fx        engine.FX

	grid   *navgrid.Grid
	world  *physics.World
	crowd  *navgrid.Crowd
	ai     *ai.TickManager
	combat *combat.Manager
	spawns *spawn.Manager

	zombies *spawn.Spawner[*enemy.Ground]
	drones  *spawn.Spawner[*enemy.Flyer]
	turrets []*enemy.Turret

	avatar *player.Avatar
	health *player.Health
	weapon *player.Weapon
	pilot  pilot

	flags    *progress.Flags
	triggers *progress.Triggers
	touching map[uint32]bool

	playerDied bool
	elapsed    float64
	steps      int
	deaths     int
	reloads    int
	scenes     int
	kills      map[model.Kind]int
}

var _ engine.Lookup = (*Encounter)(nil)

// New builds the arena described by cfg. fx may be nil.
func New(cfg config.Deadzone, fx engine.FX) (*Encounter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating encounter: %w", err)
	}

	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := &Encounter{
		id:        uuid.New(),
		cfg:       cfg,
		startedAt: time.Now(),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		fx:        engine.OrNop(fx),
		crowd:     navgrid.NewCrowd(),
		ai:        ai.NewTickManager(),
		spawns:    spawn.NewManager(),
		touching:  make(map[uint32]bool),
		kills:     make(map[model.Kind]int),
		flags:     progress.NewFlags(cfg.SceneCount),
	}

	e.buildLevel()
	e.combat = combat.NewManager(cfg.Combat, e.world, e.world, e.fx)

	e.health = player.NewHealth(cfg.Player.Health)
	e.health.OnDeath(func() { e.playerDied = true })
	e.avatar = player.NewAvatar(cfg.Player.Spawn, cfg.Player.EyeHeight, e.health)
	e.weapon = player.NewWeapon(cfg.Player.Weapon, e.combat)
	e.pilot = newPilot(cfg.Player.Route, cfg.Player.MoveSpeed)
	e.world.Add(e.avatar, playerRadius, model.LayerPlayer)

	if err := e.buildSpawners(); err != nil {
		return nil, fmt.Errorf("creating encounter: %w", err)
	}
	if err := e.placeTurrets(); err != nil {
		return nil, fmt.Errorf("creating encounter: %w", err)
	}
	e.buildTriggers()

	slog.Info("encounter ready",
		"encounter", e.id,
		"turrets", len(e.turrets),
		"spawners", e.spawns.SpawnerCount(),
		"scenes", cfg.SceneCount)
	return e, nil
}

func (e *Encounter) ID() uuid.UUID           { return e.id }
func (e *Encounter) Config() config.Deadzone { return e.cfg }
func (e *Encounter) Avatar() *player.Avatar  { return e.avatar }
func (e *Encounter) Flags() *progress.Flags  { return e.flags }
func (e *Encounter) Elapsed() float64        { return e.elapsed }
func (e *Encounter) Deaths() int             { return e.deaths }
func (e *Encounter) Controllers() int        { return e.ai.Count() }

// Zombies returns the living zombies.
func (e *Encounter) Zombies() []*enemy.Ground { return e.zombies.Active() }

// Drones returns the living drones.
func (e *Encounter) Drones() []*enemy.Flyer { return e.drones.Active() }

// Turrets returns the turrets placed in the current scene, destroyed ones included.
func (e *Encounter) Turrets() []*enemy.Turret { return e.turrets }

// Kills returns how many enemies of kind died.
func (e *Encounter) Kills(kind model.Kind) int { return e.kills[kind] }

// FindWithTag resolves the player by tag.
func (e *Encounter) FindWithTag(tag string) (model.Target, bool) {
	if tag != model.TagPlayer || e.avatar == nil {
		return nil, false
	}
	return e.avatar, true
}

// Step advances the arena by dt seconds.
func (e *Encounter) Step(dt float64) {
	e.elapsed += dt
	e.steps++

	e.health.Tick(dt)
	e.weapon.Tick(dt)
	if e.avatar.Alive() {
		e.pilot.Tick(e.avatar, dt)
		e.aim()
	}

	e.spawns.Tick(dt)
	e.ai.Step(dt)
	e.crowd.Tick(dt)
	e.world.Sync()
	e.checkTouches()
	e.combat.Tick(dt)
	e.triggers.Check(model.TagPlayer, e.avatar.Position())

	switch {
	case e.playerDied:
		e.deaths++
		slog.Info("player died", "encounter", e.id, "deaths", e.deaths, "elapsed", e.elapsed)
		e.reload()
	case e.flags.TakeReload():
		e.reload()
	case e.flags.TakeSceneChange():
		e.scenes++
		e.flags.HasKey = false
		e.reload()
	}
}

// Simulate steps the arena for seconds of game time without waiting on a clock.
func (e *Encounter) Simulate(seconds, dt float64) {
	for t := 0.0; t < seconds; t += dt {
		e.Step(dt)
	}
}

// Run steps the arena in real time at the configured tick rate until ctx is
// done or the configured duration has elapsed.
func (e *Encounter) Run(ctx context.Context) (Summary, error) {
	if e.cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Duration)
		defer cancel()
	}

	err := ai.RunFixedStep(ctx, e.cfg.Period(), e.Step)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		err = nil
	}
	return e.Summary(), err
}

func (e *Encounter) checkTouches() {
	for _, z := range e.zombies.Active() {
		id := z.ObjectID()
		touching := !z.IsDead() && e.world.CheckSphere(z.Position(), z.Radius()+triggerReach, model.LayerPlayer)
		if touching && !e.touching[id] {
			z.OnTouch(model.TagPlayer)
		}
		e.touching[id] = touching
	}
}

// reload tears the scene down and rebuilds it around a fresh player.
// Scene progress in flags survives.
func (e *Encounter) reload() {
	e.reloads++
	e.playerDied = false

	e.ai.Clear()
	e.crowd.Clear()
	e.world.Clear()
	e.combat.Clear()
	e.spawns.Reset()
	clear(e.touching)

	e.avatar.Respawn()
	e.weapon.Reset()
	e.pilot.Reset()
	e.world.Add(e.avatar, playerRadius, model.LayerPlayer)

	if err := e.placeTurrets(); err != nil {
		slog.Error("placing turrets after reload", "encounter", e.id, "error", err)
	}
	e.buildTriggers()

	slog.Info("scene reloaded",
		"encounter", e.id,
		"scene", e.flags.SceneIndex,
		"reloads", e.reloads)
}
