// Package config loads the arena tuning from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/deadzone/internal/combat"
	"github.com/udisondev/deadzone/internal/enemy"
	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/player"
	"github.com/udisondev/deadzone/internal/spawn"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Deadzone holds all configuration for an arena run.
type Deadzone struct {
	LogLevel string        `yaml:"log_level"` // debug, info, warn, error
	TickRate int           `yaml:"tick_rate"` // steps per second
	Duration time.Duration `yaml:"duration"`  // 0 runs until interrupted
	Seed     int64         `yaml:"seed"`      // 0 picks one from the clock

	// Save data
	SaveApp string `yaml:"save_app"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	Player   PlayerConfig       `yaml:"player"`
	Combat   combat.Config      `yaml:"combat"`
	Ground   enemy.GroundConfig `yaml:"ground"`
	Flyer    enemy.FlyerConfig  `yaml:"flyer"`
	Turret   enemy.TurretConfig `yaml:"turret"`
	Spawners SpawnersConfig     `yaml:"spawners"`
	Turrets  []model.Transform  `yaml:"turrets"`

	Arena      ArenaConfig    `yaml:"arena"`
	Triggers   TriggersConfig `yaml:"triggers"`
	SceneCount int            `yaml:"scene_count"`
}

// DatabaseConfig holds PostgreSQL connection parameters. Encounter records
// are only written when Enabled is set.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// PlayerConfig places and tunes the player.
type PlayerConfig struct {
	Spawn     model.Transform     `yaml:"spawn"`
	EyeHeight float64             `yaml:"eye_height"`
	Health    player.HealthConfig `yaml:"health"`
	Weapon    player.WeaponConfig `yaml:"weapon"`

	// The headless player walks Route once per life at MoveSpeed.
	Route     []model.Vec3 `yaml:"route"`
	MoveSpeed float64      `yaml:"move_speed"`
}

// SpawnersConfig holds the two enemy spawn points.
type SpawnersConfig struct {
	Zombie spawn.Config `yaml:"zombie"`
	Drone  spawn.Config `yaml:"drone"`
}

// Default returns the stock arena.
func Default() Deadzone {
	return Deadzone{
		LogLevel: "info",
		TickRate: 50,
		Duration: 2 * time.Minute,
		SaveApp:  "deadzone",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "deadzone",
			Password: "deadzone",
			DBName:   "deadzone",
			SSLMode:  "disable",
		},
		Player: PlayerConfig{
			Spawn:     model.Transform{Position: model.Vec3{X: 0, Z: -20}},
			EyeHeight: 1.6,
			Health:    player.DefaultHealthConfig(),
			Weapon:    player.DefaultWeaponConfig(),
			Route:     []model.Vec3{{Z: 12}, {Z: 27}},
			MoveSpeed: 1.5,
		},
		Combat: combat.DefaultConfig(),
		Ground: enemy.DefaultGroundConfig(),
		Flyer:  enemy.DefaultFlyerConfig(),
		Turret: enemy.DefaultTurretConfig(),
		Spawners: SpawnersConfig{
			Zombie: spawn.Config{
				Name:      "zombies",
				MaxActive: 10,
				Interval:  7,
				Point:     &model.Transform{Position: model.Vec3{X: -15, Z: 20}},
			},
			Drone: spawn.Config{
				Name:      "drones",
				MaxActive: 5,
				Interval:  5,
				Point:     &model.Transform{Position: model.Vec3{X: 15, Z: 20}},
			},
		},
		Turrets: []model.Transform{
			{Position: model.Vec3{X: -10, Z: 0}, Yaw: 180},
			{Position: model.Vec3{X: 10, Z: 0}, Yaw: 180},
		},
		Arena:      DefaultArena(),
		Triggers:   DefaultTriggers(),
		SceneCount: 3,
	}
}

// Load loads the arena config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Deadzone, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Period is the fixed simulation step.
func (c Deadzone) Period() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Validate rejects tuning the arena cannot run with. An attack range wider
// than the sight range is allowed but logged.
func (c Deadzone) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative, got %s", ErrInvalid, c.Duration)
	}
	if c.SceneCount <= 0 {
		return fmt.Errorf("%w: scene_count must be positive, got %d", ErrInvalid, c.SceneCount)
	}
	if c.Player.MoveSpeed < 0 {
		return fmt.Errorf("%w: player move_speed must not be negative, got %v", ErrInvalid, c.Player.MoveSpeed)
	}
	if c.Player.EyeHeight < 0 {
		return fmt.Errorf("%w: player eye_height must not be negative, got %v", ErrInvalid, c.Player.EyeHeight)
	}

	checks := []struct {
		name string
		fn   func() error
	}{
		{"player health", c.Player.Health.Validate},
		{"player weapon", c.Player.Weapon.Validate},
		{"ground", c.Ground.Validate},
		{"flyer", c.Flyer.Validate},
		{"turret", c.Turret.Validate},
		{"zombie spawner", c.Spawners.Zombie.Validate},
		{"drone spawner", c.Spawners.Drone.Validate},
		{"arena", c.Arena.Validate},
	}
	for _, ch := range checks {
		if err := ch.fn(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, ch.name, err)
		}
	}

	if c.Combat.Bullet.Damage < 0 {
		return fmt.Errorf("%w: bullet damage must not be negative, got %d", ErrInvalid, c.Combat.Bullet.Damage)
	}
	if c.Combat.Projectile.Radius <= 0 {
		return fmt.Errorf("%w: projectile radius must be positive, got %v", ErrInvalid, c.Combat.Projectile.Radius)
	}

	if c.Flyer.AttackRange > c.Flyer.SightRange {
		slog.Warn("flyer attack range exceeds sight range",
			"attack_range", c.Flyer.AttackRange,
			"sight_range", c.Flyer.SightRange)
	}
	if c.Turret.AttackRange > c.Turret.SightRange {
		slog.Warn("turret attack range exceeds sight range",
			"attack_range", c.Turret.AttackRange,
			"sight_range", c.Turret.SightRange)
	}

	return nil
}
