package encounter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/deadzone/internal/config"
	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/progress"
)

const step = 0.05

// quietArena is the default arena with nothing that would end the run on its
// own: no turrets, no route, spawners that never fire and a harmless weapon.
func quietArena() config.Deadzone {
	cfg := config.Default()
	cfg.Seed = 42
	cfg.Turrets = nil
	cfg.Triggers = config.TriggersConfig{}
	cfg.Player.Route = nil
	cfg.Player.Weapon.Range = 0
	cfg.Spawners.Zombie.Interval = 1e6
	cfg.Spawners.Drone.Interval = 1e6
	return cfg
}

func newEncounter(t *testing.T, cfg config.Deadzone) *Encounter {
	t.Helper()
	e, err := New(cfg, nil)
	require.NoError(t, err)
	return e
}

func TestNew_Default(t *testing.T) {
	e := newEncounter(t, config.Default())

	assert.Len(t, e.Turrets(), 2)
	assert.Equal(t, 2, e.Controllers())
	assert.Empty(t, e.Zombies())
	assert.Empty(t, e.Drones())
	assert.NotEqual(t, "", e.ID().String())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Spawners.Drone.Interval = 0
	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestFindWithTag(t *testing.T) {
	e := newEncounter(t, quietArena())

	target, ok := e.FindWithTag(model.TagPlayer)
	require.True(t, ok)
	assert.Equal(t, e.Avatar().Position(), target.Position())

	_, ok = e.FindWithTag("Enemy")
	assert.False(t, ok)
}

func TestSpawnerCadence(t *testing.T) {
	cfg := quietArena()
	cfg.Player.Health.Max = 1e6
	cfg.Spawners.Zombie.Interval = 7
	cfg.Spawners.Drone.Interval = 5
	e := newEncounter(t, cfg)

	e.Simulate(20.5, step)

	assert.Len(t, e.Zombies(), 2, "zombies at 7s and 14s")
	assert.Len(t, e.Drones(), 4, "drones at 5s, 10s, 15s and 20s")
	assert.Equal(t, 6, e.Controllers())
	for _, d := range e.Drones() {
		assert.NotEqual(t, model.FlyerIdle, d.State(), "drones go after the player")
	}
}

func TestWeaponDestroysTurret(t *testing.T) {
	cfg := quietArena()
	cfg.Player.Weapon.Range = 50
	cfg.Turrets = []model.Transform{{Position: model.Vec3{Z: -15}}}
	e := newEncounter(t, cfg)

	e.Simulate(2, step)

	turret := e.Turrets()[0]
	assert.True(t, turret.IsDead())
	assert.Equal(t, model.TurretDestroyed, turret.State())
	assert.Equal(t, 1, e.Kills(model.KindTurret))
	assert.Equal(t, 0, e.Controllers(), "destroyed turret is reaped")

	s := e.Summary()
	assert.Equal(t, 1, s.Kills["TURRET"])
	assert.GreaterOrEqual(t, s.Shots, 4)
	assert.GreaterOrEqual(t, s.Combat.HitsByKind["TURRET"], 4)
}

func TestTurretShootsPlayer(t *testing.T) {
	cfg := quietArena()
	cfg.Turrets = []model.Transform{{Position: model.Vec3{Z: -12}}}
	e := newEncounter(t, cfg)

	e.Simulate(3, step)

	assert.Less(t, e.Avatar().Health().Current(), e.Avatar().Health().Max())
	assert.Positive(t, e.Summary().Combat.PlayerHits)
}

func TestPlayerDeathReloadsScene(t *testing.T) {
	cfg := quietArena()
	cfg.Player.Health.Max = 10
	cfg.Ground.Damage = 5
	cfg.Spawners.Zombie.Interval = 0.1
	cfg.Spawners.Zombie.MaxActive = 1
	cfg.Spawners.Zombie.Point = &model.Transform{Position: model.Vec3{X: 1, Z: -20}}
	e := newEncounter(t, cfg)

	e.Simulate(1.5, step)

	assert.Equal(t, 1, e.Deaths())
	s := e.Summary()
	assert.Equal(t, 1, s.Deaths)
	assert.Equal(t, 1, s.Reloads)
	assert.Equal(t, cfg.Player.Spawn.Position, e.Avatar().Position())
	assert.Equal(t, 0, s.TotalKills(), "reload is not a kill")
}

func TestRouteCollectsKeyAndClearsScene(t *testing.T) {
	cfg := quietArena()
	cfg.Triggers = config.DefaultTriggers()
	cfg.Player.Route = []model.Vec3{{Z: 12}, {Z: 27}}
	cfg.Player.MoveSpeed = 10
	e := newEncounter(t, cfg)

	e.Simulate(3.5, step)
	assert.True(t, e.Flags().HasKey, "key at z=12 is on the way")
	assert.Equal(t, 0, e.Flags().SceneIndex)

	e.Simulate(1.5, step)
	assert.Equal(t, 1, e.Flags().SceneIndex)
	assert.False(t, e.Flags().HasKey, "key is per scene")
	assert.Equal(t, 1, e.Summary().ScenesCleared)
	assert.Equal(t, 0, e.Deaths())
}

func TestGateNeedsKey(t *testing.T) {
	cfg := quietArena()
	cfg.Triggers = config.DefaultTriggers()
	cfg.Triggers.Key = nil
	cfg.Player.Route = []model.Vec3{{Z: 27}}
	cfg.Player.MoveSpeed = 10
	e := newEncounter(t, cfg)

	e.Simulate(6, step)

	assert.Equal(t, 0, e.Flags().SceneIndex)
	assert.Equal(t, 0, e.Summary().ScenesCleared)
}

func TestKillZoneReloads(t *testing.T) {
	cfg := quietArena()
	cfg.Triggers.KillZones = []progress.Volume{{Position: model.Vec3{Z: -10}, Size: 1}}
	cfg.Player.Route = []model.Vec3{{Z: 0}}
	cfg.Player.MoveSpeed = 10
	e := newEncounter(t, cfg)

	e.Simulate(1.5, step)

	s := e.Summary()
	assert.Equal(t, 1, s.Reloads)
	assert.Equal(t, 0, s.Deaths)
}

func TestSnapshot(t *testing.T) {
	cfg := quietArena()
	cfg.Player.Health.Max = 1e6
	cfg.Spawners.Drone.Interval = 1
	cfg.Turrets = []model.Transform{{Position: model.Vec3{X: 10}}}
	e := newEncounter(t, cfg)
	e.Simulate(2.5, step)

	snap := e.Snapshot()
	assert.Equal(t, e.ID().String(), snap.Encounter)
	assert.Len(t, snap.Enemies, 3)
	assert.Equal(t, e.Avatar().ObjectID(), snap.Player.ObjectID)

	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap.Enemies, got.Enemies)
	assert.Equal(t, snap.Player, got.Player)
	assert.Equal(t, snap.Flags.SceneCount, got.Flags.SceneCount)

	_, err = DecodeSnapshot([]byte{0xc1})
	assert.Error(t, err)
}

func TestRun_StopsAfterDuration(t *testing.T) {
	cfg := quietArena()
	cfg.TickRate = 200
	cfg.Duration = 50 * time.Millisecond
	e := newEncounter(t, cfg)

	s, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Positive(t, s.Steps)
	assert.InDelta(t, float64(s.Steps)*0.005, s.Elapsed, 1e-9)
}

func TestRun_Cancelled(t *testing.T) {
	cfg := quietArena()
	cfg.Duration = 0
	e := newEncounter(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Run(ctx)
	assert.NoError(t, err)
}
