package spawn

import "log/slog"

// Ticker is the part of a Spawner the Manager drives.
type Ticker interface {
	Name() string
	Tick(dt float64)
	ActiveCount() int
	MaxActive() int
	Spawned() int
	Reset()
}

// Stats is a snapshot of one spawner.
type Stats struct {
	Name      string `msgpack:"name"`
	Active    int    `msgpack:"active"`
	MaxActive int    `msgpack:"max_active"`
	Spawned   int    `msgpack:"spawned"`
}

// Manager ticks a set of spawners in registration order.
type Manager struct {
	spawners []Ticker
}

// NewManager creates new spawn manager
func NewManager() *Manager {
	return &Manager{}
}

// Add registers a spawner.
func (m *Manager) Add(s Ticker) {
	m.spawners = append(m.spawners, s)
	slog.Info("spawner registered",
		"spawner", s.Name(),
		"max", s.MaxActive())
}

// Tick ticks every spawner.
func (m *Manager) Tick(dt float64) {
	for _, s := range m.spawners {
		s.Tick(dt)
	}
}

// Reset resets every spawner.
func (m *Manager) Reset() {
	for _, s := range m.spawners {
		s.Reset()
	}
}

// SpawnerCount returns the number of registered spawners.
func (m *Manager) SpawnerCount() int {
	return len(m.spawners)
}

// ActiveCount returns the live enemies across all spawners.
func (m *Manager) ActiveCount() int {
	n := 0
	for _, s := range m.spawners {
		n += s.ActiveCount()
	}
	return n
}

// Stats returns per-spawner counters.
func (m *Manager) Stats() []Stats {
	out := make([]Stats, 0, len(m.spawners))
	for _, s := range m.spawners {
		out = append(out, Stats{
			Name:      s.Name(),
			Active:    s.ActiveCount(),
			MaxActive: s.MaxActive(),
			Spawned:   s.Spawned(),
		})
	}
	return out
}
