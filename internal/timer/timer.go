// Package timer holds the tick-driven waits entities use instead of sleeping.
// Every timer advances only when its owner ticks it, so cancelling an owner
// cancels its timers.
package timer

// Cooldown gates an action: after Trigger it stays blocked for a fixed window.
type Cooldown struct {
	window    float64
	remaining float64
}

// NewCooldown returns a ready cooldown with the given window in seconds.
func NewCooldown(window float64) Cooldown {
	return Cooldown{window: window}
}

// Ready reports whether the action may fire.
func (c *Cooldown) Ready() bool { return c.remaining <= 0 }

// Remaining returns seconds left until Ready.
func (c *Cooldown) Remaining() float64 { return max(0, c.remaining) }

// Trigger starts the window.
func (c *Cooldown) Trigger() { c.remaining = c.window }

// Cancel makes the cooldown ready immediately.
func (c *Cooldown) Cancel() { c.remaining = 0 }

func (c *Cooldown) Tick(dt float64) {
	if c.remaining > 0 {
		c.remaining -= dt
	}
}

// Interval counts whole periods of elapsed time, carrying the remainder
// so repeated actions land exactly one period apart.
type Interval struct {
	period  float64
	elapsed float64
}

// NewInterval returns an interval with the given period in seconds.
func NewInterval(period float64) Interval {
	return Interval{period: period}
}

func (i *Interval) Period() float64  { return i.period }
func (i *Interval) Elapsed() float64 { return i.elapsed }
func (i *Interval) Reset()           { i.elapsed = 0 }

// Advance adds dt and returns how many periods completed.
// A non-positive period never completes.
func (i *Interval) Advance(dt float64) int {
	if i.period <= 0 {
		return 0
	}
	i.elapsed += dt
	n := 0
	for i.elapsed >= i.period {
		i.elapsed -= i.period
		n++
	}
	return n
}

// Delay runs a callback once after a wait unless cancelled first.
type Delay struct {
	remaining float64
	fn        func()
	armed     bool
}

// Start arms the delay, replacing any pending callback.
// A zero wait fires on the next Tick.
func (d *Delay) Start(wait float64, fn func()) {
	d.remaining = wait
	d.fn = fn
	d.armed = true
}

// Cancel drops the pending callback.
func (d *Delay) Cancel() {
	d.armed = false
	d.fn = nil
}

func (d *Delay) Pending() bool { return d.armed }

func (d *Delay) Tick(dt float64) {
	if !d.armed {
		return
	}
	d.remaining -= dt
	if d.remaining > 0 {
		return
	}
	fn := d.fn
	d.Cancel()
	if fn != nil {
		fn()
	}
}
