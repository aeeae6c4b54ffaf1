package config

import (
	"fmt"

	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/progress"
)

// ArenaConfig describes the level: the walkable grid and its walls.
type ArenaConfig struct {
	Width    int        `yaml:"width"`  // cells
	Height   int        `yaml:"height"` // cells
	CellSize float64    `yaml:"cell_size"`
	Origin   model.Vec3 `yaml:"origin"`
	Walls    []Wall     `yaml:"walls"`
}

// Wall is a thick segment that blocks both movement and shots.
type Wall struct {
	From      model.Vec3 `yaml:"from"`
	To        model.Vec3 `yaml:"to"`
	Thickness float64    `yaml:"thickness"`
}

// DefaultArena is a 60x60 yard with a perimeter and two cover walls.
func DefaultArena() ArenaConfig {
	return ArenaConfig{
		Width:    60,
		Height:   60,
		CellSize: 1,
		Origin:   model.Vec3{X: -30, Z: -30},
		Walls: []Wall{
			{From: model.Vec3{X: -30, Z: -30}, To: model.Vec3{X: 30, Z: -30}, Thickness: 1},
			{From: model.Vec3{X: 30, Z: -30}, To: model.Vec3{X: 30, Z: 30}, Thickness: 1},
			{From: model.Vec3{X: 30, Z: 30}, To: model.Vec3{X: -30, Z: 30}, Thickness: 1},
			{From: model.Vec3{X: -30, Z: 30}, To: model.Vec3{X: -30, Z: -30}, Thickness: 1},
			{From: model.Vec3{X: -6, Z: 8}, To: model.Vec3{X: -2, Z: 8}, Thickness: 1},
			{From: model.Vec3{X: 2, Z: 8}, To: model.Vec3{X: 6, Z: 8}, Thickness: 1},
		},
	}
}

// Validate checks the grid dimensions.
func (a ArenaConfig) Validate() error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("grid must be non-empty, got %dx%d", a.Width, a.Height)
	}
	if a.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %v", a.CellSize)
	}
	for i, w := range a.Walls {
		if w.Thickness < 0 {
			return fmt.Errorf("wall %d: thickness must not be negative, got %v", i, w.Thickness)
		}
	}
	return nil
}

// TriggersConfig places the scene-flow volumes. Nil entries are absent.
type TriggersConfig struct {
	Key       *progress.Volume  `yaml:"key"`
	Gate      *GateConfig       `yaml:"gate"`
	KillZones []progress.Volume `yaml:"kill_zones"`
}

// GateConfig is the level exit.
type GateConfig struct {
	progress.Volume `yaml:",inline"`
	RequireKey      bool `yaml:"require_key"`
}

// DefaultTriggers puts the key behind the cover walls and the gate at the
// far end of the yard.
func DefaultTriggers() TriggersConfig {
	return TriggersConfig{
		Key: &progress.Volume{Position: model.Vec3{Z: 12}, Size: 1},
		Gate: &GateConfig{
			Volume:     progress.Volume{Position: model.Vec3{Z: 27}, Size: 2},
			RequireKey: true,
		},
	}
}
