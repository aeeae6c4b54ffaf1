package spawn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/deadzone/internal/model"
)

type stubEnemy struct {
	id      uint32
	alive   bool
	at      model.Transform
	onDeath []func(uint32)
}

func (e *stubEnemy) ObjectID() uint32 { return e.id }
func (e *stubEnemy) Alive() bool      { return e.alive }
func (e *stubEnemy) OnDeath(fn func(uint32)) {
	e.onDeath = append(e.onDeath, fn)
}

func (e *stubEnemy) kill() {
	for _, fn := range e.onDeath {
		fn(e.id)
	}
}

type stubFactory struct {
	next  uint32
	built []*stubEnemy
	err   error
}

func (f *stubFactory) build(at model.Transform) (*stubEnemy, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.next++
	e := &stubEnemy{id: f.next, alive: true, at: at}
	f.built = append(f.built, e)
	return e, nil
}

func newTestSpawner(t *testing.T, maxActive int, interval float64) (*Spawner[*stubEnemy], *stubFactory) {
	t.Helper()
	f := &stubFactory{}
	s, err := NewSpawner(Config{
		Name:      "test",
		MaxActive: maxActive,
		Interval:  interval,
		Point:     &model.Transform{Position: model.Vec3{X: 3}, Yaw: 90},
	}, f.build)
	require.NoError(t, err)
	return s, f
}

func TestNewSpawner_Errors(t *testing.T) {
	_, err := NewSpawner[*stubEnemy](Config{Interval: 1}, nil)
	assert.ErrorIs(t, err, ErrNoFactory)

	f := &stubFactory{}
	_, err = NewSpawner(Config{Interval: 0}, f.build)
	assert.Error(t, err)

	_, err = NewSpawner(Config{Interval: 1, MaxActive: -1}, f.build)
	assert.Error(t, err)
}

func TestSpawner_RespectsCap(t *testing.T) {
	s, f := newTestSpawner(t, 5, 1)

	for range 40 {
		s.Tick(0.25)
		require.LessOrEqual(t, s.ActiveCount(), 5)
	}

	assert.Equal(t, 5, s.ActiveCount())
	assert.Len(t, f.built, 5)
	assert.Equal(t, model.Vec3{X: 3}, f.built[0].at.Position)
}

func TestSpawner_FirstSpawnAfterInterval(t *testing.T) {
	s, _ := newTestSpawner(t, 5, 1)

	s.Tick(0.5)
	assert.Equal(t, 0, s.ActiveCount())
	s.Tick(0.5)
	assert.Equal(t, 1, s.ActiveCount())
}

func TestSpawner_DeathFreesSlot(t *testing.T) {
	s, f := newTestSpawner(t, 2, 1)
	s.Tick(1)
	s.Tick(1)
	require.Equal(t, 2, s.ActiveCount())

	// At capacity the timer keeps running, so the freed slot fills on the next expiry.
	s.Tick(1)
	assert.Len(t, f.built, 2)

	f.built[0].kill()
	f.built[0].kill()
	assert.Equal(t, 1, s.ActiveCount(), "death notification is idempotent")
	assert.Equal(t, 1, s.Reclaimed())

	s.Tick(1)
	assert.Equal(t, 2, s.ActiveCount())
	assert.Len(t, f.built, 3)
}

func TestSpawner_SweepsDestroyed(t *testing.T) {
	s, f := newTestSpawner(t, 3, 1)
	s.Tick(1)
	s.Tick(1)
	require.Equal(t, 2, s.ActiveCount())

	f.built[1].alive = false
	s.Tick(0.1)

	active := s.Active()
	require.Len(t, active, 1)
	assert.Equal(t, f.built[0].id, active[0].id)
}

func TestSpawner_OnSpawn(t *testing.T) {
	s, _ := newTestSpawner(t, 3, 1)
	var seen []uint32
	s.OnSpawn(func(e *stubEnemy) { seen = append(seen, e.id) })

	s.Tick(2)

	assert.Equal(t, []uint32{1, 2}, seen)
}

func TestSpawner_MissingPointIsNoop(t *testing.T) {
	f := &stubFactory{}
	s, err := NewSpawner(Config{Name: "nowhere", MaxActive: 3, Interval: 1}, f.build)
	require.NoError(t, err)

	s.Tick(5)

	assert.Equal(t, 0, s.ActiveCount())
	assert.Empty(t, f.built)
}

func TestSpawner_FactoryErrorIsSkipped(t *testing.T) {
	s, f := newTestSpawner(t, 3, 1)
	f.err = errors.New("prefab missing")

	s.Tick(3)
	assert.Equal(t, 0, s.ActiveCount())

	f.err = nil
	s.Tick(1)
	assert.Equal(t, 1, s.ActiveCount())
}

func TestSpawner_Reset(t *testing.T) {
	s, _ := newTestSpawner(t, 3, 1)
	s.Tick(1.5)
	require.Equal(t, 1, s.ActiveCount())

	s.Reset()
	assert.Equal(t, 0, s.ActiveCount())

	s.Tick(0.75)
	assert.Equal(t, 0, s.ActiveCount(), "interval restarts from zero")
}
