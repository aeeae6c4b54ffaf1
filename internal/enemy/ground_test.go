package enemy

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
)

func newTestGround(t *testing.T, cfg GroundConfig, player *fakePlayer) (*Ground, *fakeNav, *recordingFX) {
	t.Helper()
	nav := &fakeNav{}
	fx := &recordingFX{}
	g, err := NewGround(cfg, Deps{
		Nav:    nav,
		FX:     fx,
		Lookup: fakeLookup{player: player},
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	return g, nav, fx
}

func TestNewGround_Validation(t *testing.T) {
	_, err := NewGround(DefaultGroundConfig(), Deps{})
	assert.ErrorIs(t, err, ErrNoNavigator)

	cfg := DefaultGroundConfig()
	cfg.Health = 0
	_, err = NewGround(cfg, Deps{Nav: &fakeNav{}})
	assert.Error(t, err)
}

func TestGround_ConfiguresNavigator(t *testing.T) {
	g, nav, fx := newTestGround(t, DefaultGroundConfig(), nil)

	assert.Equal(t, 1.0, nav.speed)
	assert.Equal(t, 1.5, nav.stopping)
	assert.Equal(t, model.KindZombie, g.Kind())
	assert.Equal(t, 1, fx.countCue(engine.CueZombieWalk), "walk loop starts on spawn")
}

func TestGround_NoTargetIsNoop(t *testing.T) {
	g, nav, _ := newTestGround(t, DefaultGroundConfig(), nil)

	for range 10 {
		g.Tick(0.1)
	}

	assert.Equal(t, 0, nav.destinations)
	assert.Equal(t, model.GroundIdle, g.State())
}

func TestGround_ChasesDistantTarget(t *testing.T) {
	player := &fakePlayer{pos: model.Vec3{X: 10}}
	g, nav, _ := newTestGround(t, DefaultGroundConfig(), player)

	g.Tick(0.1)

	assert.Equal(t, model.GroundChasing, g.State())
	assert.Equal(t, player.pos, nav.dest)
	assert.Empty(t, player.hits)
}

func TestGround_MeleeCadence(t *testing.T) {
	player := &fakePlayer{pos: model.Vec3{X: 1}, health: 100}
	g, nav, fx := newTestGround(t, DefaultGroundConfig(), player)

	// Strike on contact, then one strike per full second of contact.
	const dt = 0.25
	var strikeTicks []int
	for tick := 0; tick < 9; tick++ {
		before := len(player.hits)
		g.Tick(dt)
		if len(player.hits) > before {
			strikeTicks = append(strikeTicks, tick)
		}
	}

	assert.Equal(t, []int{0, 4, 8}, strikeTicks)
	assert.Equal(t, model.GroundAttacking, g.State())
	assert.True(t, g.Attacking())
	assert.Equal(t, 0, nav.destinations)
	assert.Equal(t, 3, fx.countCue(engine.CueZombieAttack))

	// Target steps out of reach: the attack loop ends on that tick.
	player.pos = model.Vec3{X: 5}
	g.Tick(dt)

	assert.Len(t, player.hits, 3)
	assert.False(t, g.Attacking())
	assert.Equal(t, model.GroundChasing, g.State())
	assert.Equal(t, player.pos, nav.dest)
	assert.Equal(t, 2, fx.countCue(engine.CueZombieWalk), "walk loop resumes after attacking")

	// Coming back strikes immediately again.
	player.pos = model.Vec3{X: 1}
	g.Tick(dt)
	assert.Len(t, player.hits, 4)
}

func TestGround_SingleDeath(t *testing.T) {
	g, nav, fx := newTestGround(t, DefaultGroundConfig(), &fakePlayer{pos: model.Vec3{X: 10}})

	var deaths, destroyed int
	g.OnDeath(func(id uint32) {
		assert.Equal(t, g.ObjectID(), id)
		deaths++
	})
	g.OnDestroyed(func(uint32) { destroyed++ })

	g.TakeDamage(6)
	g.TakeDamage(6)
	g.TakeDamage(6)

	assert.Equal(t, 1, deaths)
	assert.Equal(t, 0, g.Health())
	assert.True(t, g.IsDead())
	assert.Equal(t, model.GroundDying, g.State())
	assert.True(t, nav.stopped)
	assert.Equal(t, 2, fx.countCue(engine.CueZombieHurt), "damage after death is silent")
	assert.Equal(t, 1, fx.countCue(engine.CueZombieDeath))
	assert.Equal(t, 10, fx.countEffect(engine.EffectBlood))

	// Zero grace: despawn on the next tick.
	assert.True(t, g.Alive())
	g.Tick(0.02)
	assert.False(t, g.Alive())
	assert.Equal(t, model.GroundDespawned, g.State())
	assert.Equal(t, 1, destroyed)
}

func TestGround_DespawnGrace(t *testing.T) {
	cfg := DefaultGroundConfig()
	cfg.DespawnDelay = 1
	g, _, _ := newTestGround(t, cfg, nil)

	g.TakeDamage(100)
	g.Tick(0.5)
	assert.True(t, g.Alive())
	g.Tick(0.5)
	assert.False(t, g.Alive())
}

func TestGround_DyingStopsAttack(t *testing.T) {
	player := &fakePlayer{pos: model.Vec3{X: 1}}
	g, _, _ := newTestGround(t, DefaultGroundConfig(), player)

	g.Tick(0.25)
	require.Len(t, player.hits, 1)

	cfg := DefaultGroundConfig()
	g.TakeDamage(cfg.Health)
	for range 8 {
		g.Tick(0.25)
	}

	assert.Len(t, player.hits, 1)
	assert.False(t, g.Attacking())
}

func TestGround_StopSkipsCallbacks(t *testing.T) {
	cfg := DefaultGroundConfig()
	cfg.DespawnDelay = 5
	g, _, _ := newTestGround(t, cfg, nil)

	var destroyed int
	g.OnDestroyed(func(uint32) { destroyed++ })
	g.TakeDamage(100)
	g.Stop()
	g.Tick(10)

	assert.False(t, g.Alive())
	assert.Equal(t, 0, destroyed)
}

func TestGround_OnTouch(t *testing.T) {
	g, _, fx := newTestGround(t, DefaultGroundConfig(), nil)

	g.OnTouch("Untagged")
	assert.Equal(t, 0, fx.countCue(engine.CueZombieAttack))

	g.OnTouch(model.TagPlayer)
	assert.Equal(t, 1, fx.countCue(engine.CueZombieAttack))
}

func TestGround_DeadTargetStopsAttack(t *testing.T) {
	player := &fakePlayer{pos: model.Vec3{X: 1}}
	g, _, _ := newTestGround(t, DefaultGroundConfig(), player)

	g.Tick(0.25)
	player.dead = true
	for range 8 {
		g.Tick(0.25)
	}

	assert.Len(t, player.hits, 1)
	assert.Equal(t, model.GroundIdle, g.State())
}
