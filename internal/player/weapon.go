package player

import (
	"fmt"

	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/timer"
)

// Gun spawns hitscan bullets.
type Gun interface {
	FireBullet(origin, dir model.Vec3) uint32
}

// WeaponConfig tunes the player's gun.
type WeaponConfig struct {
	FireInterval float64 `yaml:"fire_interval"`
	Range        float64 `yaml:"range"`
}

// DefaultWeaponConfig returns the stock rifle tuning.
func DefaultWeaponConfig() WeaponConfig {
	return WeaponConfig{FireInterval: 0.1, Range: 50}
}

// Validate checks the tuning is usable.
func (c WeaponConfig) Validate() error {
	if c.FireInterval <= 0 {
		return fmt.Errorf("weapon fire interval must be positive, got %v", c.FireInterval)
	}
	return nil
}

// Weapon fires at most one bullet per FireInterval.
type Weapon struct {
	cfg      WeaponConfig
	gun      Gun
	cooldown timer.Cooldown
	shots    int
}

// NewWeapon creates a weapon that fires through gun.
func NewWeapon(cfg WeaponConfig, gun Gun) *Weapon {
	return &Weapon{
		cfg:      cfg,
		gun:      gun,
		cooldown: timer.NewCooldown(cfg.FireInterval),
	}
}

func (w *Weapon) Range() float64 { return w.cfg.Range }
func (w *Weapon) Shots() int     { return w.shots }
func (w *Weapon) Ready() bool    { return w.cooldown.Ready() }

func (w *Weapon) Tick(dt float64) { w.cooldown.Tick(dt) }

// Fire shoots from origin along dir if the weapon is ready.
func (w *Weapon) Fire(origin, dir model.Vec3) bool {
	if w.gun == nil || !w.cooldown.Ready() {
		return false
	}
	w.gun.FireBullet(origin, dir)
	w.cooldown.Trigger()
	w.shots++
	return true
}

// Reset makes the weapon ready and clears the shot counter.
func (w *Weapon) Reset() {
	w.cooldown.Cancel()
	w.shots = 0
}
