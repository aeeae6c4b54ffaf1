package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_TicksAllSpawners(t *testing.T) {
	zombies, _ := newTestSpawner(t, 10, 7)
	drones, _ := newTestSpawner(t, 5, 5)

	mgr := NewManager()
	mgr.Add(zombies)
	mgr.Add(drones)

	for range 40 {
		mgr.Tick(0.5)
	}

	assert.Equal(t, 2, mgr.SpawnerCount())
	assert.Equal(t, 2, zombies.ActiveCount())
	assert.Equal(t, 4, drones.ActiveCount())
	assert.Equal(t, 6, mgr.ActiveCount())

	stats := mgr.Stats()
	assert.Len(t, stats, 2)
	assert.Equal(t, 5, stats[1].MaxActive)
	assert.Equal(t, 4, stats[1].Spawned)

	mgr.Reset()
	assert.Equal(t, 0, mgr.ActiveCount())
}
