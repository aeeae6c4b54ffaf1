// Package player holds the player's health pool, the avatar enemies target
// and the hitscan weapon.
package player

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/deadzone/internal/timer"
)

// HealthConfig tunes the player's health and regeneration.
type HealthConfig struct {
	Max         float64 `yaml:"max"`
	RegenDelay  float64 `yaml:"regen_delay"`
	RegenAmount float64 `yaml:"regen_amount"` // per second
}

// DefaultHealthConfig returns the stock player tuning.
func DefaultHealthConfig() HealthConfig {
	return HealthConfig{Max: 100, RegenDelay: 5, RegenAmount: 5}
}

// Validate checks the tuning is usable.
func (c HealthConfig) Validate() error {
	if c.Max <= 0 {
		return fmt.Errorf("player max health must be positive, got %v", c.Max)
	}
	if c.RegenDelay < 0 || c.RegenAmount < 0 {
		return fmt.Errorf("player regen must not be negative, got delay %v amount %v", c.RegenDelay, c.RegenAmount)
	}
	return nil
}

// Health is the player's hit points. Damage that leaves the player alive
// restarts a delayed regeneration; damage that drops it to zero fires the
// death observers once.
type Health struct {
	cfg     HealthConfig
	current float64
	dead    bool

	regenWait      timer.Delay
	isRegenerating bool

	onDeath   []func()
	onChanged []func(text string)
}

// NewHealth returns a full health pool.
func NewHealth(cfg HealthConfig) *Health {
	return &Health{cfg: cfg, current: cfg.Max}
}

// Current returns health clamped to [0, Max].
func (h *Health) Current() float64 {
	return min(max(h.current, 0), h.cfg.Max)
}

func (h *Health) Max() float64              { return h.cfg.Max }
func (h *Health) Dead() bool                { return h.dead }
func (h *Health) Regenerating() bool        { return h.isRegenerating }
func (h *Health) RegenPending() bool        { return h.regenWait.Pending() }
func (h *Health) OnDeath(fn func())         { h.onDeath = append(h.onDeath, fn) }
func (h *Health) OnChanged(fn func(string)) { h.onChanged = append(h.onChanged, fn) }

// Text is the HUD readout, whole points over max.
func (h *Health) Text() string {
	return fmt.Sprintf("%d/%d", int(h.Current()), int(h.cfg.Max))
}

// TakeDamage subtracts amount. Damage to a dead player is ignored.
func (h *Health) TakeDamage(amount float64) {
	if h.dead {
		return
	}
	h.current -= amount
	slog.Debug("player took damage", "amount", amount, "health", h.Current())
	h.changed()

	if h.current <= 0 {
		h.current = 0
		h.dead = true
		h.stopRegen()
		slog.Info("player has died")
		for _, fn := range h.onDeath {
			fn()
		}
		return
	}

	h.stopRegen()
	h.regenWait.Start(h.cfg.RegenDelay, func() { h.isRegenerating = true })
}

// Heal adds amount, clamped to Max. Healing the dead is a no-op.
func (h *Health) Heal(amount float64) {
	if h.dead || amount <= 0 {
		return
	}
	h.current = min(h.current+amount, h.cfg.Max)
	slog.Debug("player healed", "amount", amount, "health", h.current)
	h.changed()
}

// Tick advances the regeneration delay and regenerates while active.
func (h *Health) Tick(dt float64) {
	if h.dead {
		return
	}
	h.regenWait.Tick(dt)
	if !h.isRegenerating {
		return
	}
	if h.current >= h.cfg.Max {
		h.isRegenerating = false
		return
	}
	h.current = min(h.current+h.cfg.RegenAmount*dt, h.cfg.Max)
	h.changed()
	if h.current >= h.cfg.Max {
		h.isRegenerating = false
	}
}

// Reset restores full health and revives the player.
func (h *Health) Reset() {
	h.stopRegen()
	h.current = h.cfg.Max
	h.dead = false
	h.changed()
}

func (h *Health) stopRegen() {
	h.regenWait.Cancel()
	h.isRegenerating = false
}

func (h *Health) changed() {
	if len(h.onChanged) == 0 {
		return
	}
	text := h.Text()
	for _, fn := range h.onChanged {
		fn(text)
	}
}
