package spawn

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/timer"
)

// ErrNoFactory is returned when a spawner is built without a factory.
var ErrNoFactory = errors.New("spawn factory is required")

// Spawnable is what a spawner can track.
type Spawnable interface {
	ObjectID() uint32
	Alive() bool
	OnDeath(fn func(objectID uint32))
}

// Factory builds one enemy at the spawn point.
type Factory[E Spawnable] func(at model.Transform) (E, error)

// Config describes one spawn point.
type Config struct {
	Name      string           `yaml:"name"`
	MaxActive int              `yaml:"max_active"`
	Interval  float64          `yaml:"interval"`
	Point     *model.Transform `yaml:"point"`
}

// Validate checks the spawn point is usable.
func (c Config) Validate() error {
	if c.MaxActive < 0 {
		return fmt.Errorf("spawner %q: max_active must not be negative, got %d", c.Name, c.MaxActive)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("spawner %q: interval must be positive, got %v", c.Name, c.Interval)
	}
	return nil
}

// Spawner keeps up to MaxActive enemies alive, adding one per Interval.
// The active set only holds living enemies: death notifications remove
// entries immediately and every tick sweeps entries that left the scene.
type Spawner[E Spawnable] struct {
	cfg     Config
	factory Factory[E]
	timer   timer.Interval

	active  []E
	onSpawn []func(E)

	spawned   int
	reclaimed int
	warned    bool
}

// NewSpawner creates a spawner. The first spawn happens one Interval after start.
func NewSpawner[E Spawnable](cfg Config, factory Factory[E]) (*Spawner[E], error) {
	if factory == nil {
		return nil, fmt.Errorf("creating spawner %q: %w", cfg.Name, ErrNoFactory)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating spawner: %w", err)
	}
	return &Spawner[E]{
		cfg:     cfg,
		factory: factory,
		timer:   timer.NewInterval(cfg.Interval),
	}, nil
}

func (s *Spawner[E]) Name() string     { return s.cfg.Name }
func (s *Spawner[E]) MaxActive() int   { return s.cfg.MaxActive }
func (s *Spawner[E]) ActiveCount() int { return len(s.active) }

// Spawned returns how many enemies this spawner has created.
func (s *Spawner[E]) Spawned() int { return s.spawned }

// Reclaimed returns how many handles were dropped after their enemy died or left.
func (s *Spawner[E]) Reclaimed() int { return s.reclaimed }

// Active returns a copy of the active set in spawn order.
func (s *Spawner[E]) Active() []E {
	out := make([]E, len(s.active))
	copy(out, s.active)
	return out
}

// OnSpawn registers fn to run for every new enemy after it joins the active set.
func (s *Spawner[E]) OnSpawn(fn func(E)) {
	s.onSpawn = append(s.onSpawn, fn)
}

// Tick sweeps dead handles and spawns once per completed interval while below capacity.
func (s *Spawner[E]) Tick(dt float64) {
	s.Sweep()
	for range s.timer.Advance(dt) {
		s.trySpawn()
	}
}

func (s *Spawner[E]) trySpawn() {
	if len(s.active) >= s.cfg.MaxActive {
		return
	}
	if s.cfg.Point == nil {
		if !s.warned {
			slog.Warn("spawner has no spawn point", "spawner", s.cfg.Name)
			s.warned = true
		}
		return
	}

	e, err := s.factory(*s.cfg.Point)
	if err != nil {
		slog.Error("spawn failed", "spawner", s.cfg.Name, "error", err)
		return
	}

	id := e.ObjectID()
	s.active = append(s.active, e)
	s.spawned++
	e.OnDeath(s.OnChildDestroyed)

	for _, fn := range s.onSpawn {
		fn(e)
	}

	slog.Debug("enemy spawned",
		"spawner", s.cfg.Name,
		"objectID", id,
		"active", len(s.active),
		"max", s.cfg.MaxActive)
}

// OnChildDestroyed drops the handle for objectID. Unknown IDs are ignored.
func (s *Spawner[E]) OnChildDestroyed(objectID uint32) {
	for i, e := range s.active {
		if e.ObjectID() == objectID {
			s.active = append(s.active[:i], s.active[i+1:]...)
			s.reclaimed++
			return
		}
	}
}

// Sweep drops handles whose enemy is no longer alive.
func (s *Spawner[E]) Sweep() {
	kept := s.active[:0]
	for _, e := range s.active {
		if e.Alive() {
			kept = append(kept, e)
			continue
		}
		s.reclaimed++
	}
	var zero E
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = zero
	}
	s.active = kept
}

// Reset forgets every handle and restarts the interval. Enemies themselves are
// torn down by their owner.
func (s *Spawner[E]) Reset() {
	s.active = nil
	s.timer.Reset()
	s.warned = false
}
