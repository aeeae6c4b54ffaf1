package model

// Health is an integer hit-point pool with a one-way death latch.
type Health struct {
	current int
	max     int
	dead    bool
}

// NewHealth returns a full pool. A non-positive max starts dead.
func NewHealth(maxHP int) Health {
	if maxHP <= 0 {
		return Health{dead: true}
	}
	return Health{current: maxHP, max: maxHP}
}

func (h *Health) Current() int { return h.current }
func (h *Health) Max() int     { return h.max }
func (h *Health) IsDead() bool { return h.dead }

// Apply subtracts amount. applied is false once the pool is dead;
// fatal is true only for the single call that drains it.
// Negative amounts are treated as zero so health never increases.
func (h *Health) Apply(amount int) (applied, fatal bool) {
	if h.dead {
		return false, false
	}
	if amount > 0 {
		h.current = max(0, h.current-amount)
	}
	if h.current == 0 {
		h.dead = true
		return true, true
	}
	return true, false
}
