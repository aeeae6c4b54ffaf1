package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// TickManager ticks every registered controller once per step.
// It is owned by the simulation goroutine and is not safe for concurrent use.
type TickManager struct {
	controllers []Controller
	index       map[uint32]int // objectID -> position in controllers
	stepping    bool
}

// NewTickManager creates new AI tick manager
func NewTickManager() *TickManager {
	return &TickManager{
		index: make(map[uint32]int),
	}
}

// Register adds a controller. Controllers registered during Step are first
// ticked on the following step. Registering a known objectID replaces it.
func (m *TickManager) Register(controller Controller) {
	id := controller.ObjectID()
	if i, ok := m.index[id]; ok {
		m.controllers[i] = controller
		return
	}
	m.index[id] = len(m.controllers)
	m.controllers = append(m.controllers, controller)

	if IsDebugEnabled() {
		slog.Debug("AI controller registered", "objectID", id)
	}
}

// Unregister removes the controller and stops it.
func (m *TickManager) Unregister(objectID uint32) {
	i, ok := m.index[objectID]
	if !ok {
		return
	}
	controller := m.controllers[i]
	m.controllers[i] = nil
	delete(m.index, objectID)
	controller.Stop()

	if !m.stepping {
		m.compact()
	}

	if IsDebugEnabled() {
		slog.Debug("AI controller unregistered", "objectID", objectID)
	}
}

// Step ticks all controllers in registration order, then drops the ones
// that are no longer alive.
func (m *TickManager) Step(dt float64) {
	m.stepping = true
	n := len(m.controllers)
	for i := 0; i < n; i++ {
		c := m.controllers[i]
		if c == nil || !c.Alive() {
			continue
		}
		c.Tick(dt)
	}
	m.stepping = false
	m.compact()
}

// compact removes nil and dead controllers, keeping order.
func (m *TickManager) compact() {
	kept := m.controllers[:0]
	for _, c := range m.controllers {
		if c == nil {
			continue
		}
		if !c.Alive() {
			delete(m.index, c.ObjectID())
			continue
		}
		m.index[c.ObjectID()] = len(kept)
		kept = append(kept, c)
	}
	clear(m.controllers[len(kept):])
	m.controllers = kept
}

// Count returns number of registered controllers
func (m *TickManager) Count() int {
	return len(m.index)
}

// GetController returns controller for entity
func (m *TickManager) GetController(objectID uint32) (Controller, error) {
	i, ok := m.index[objectID]
	if !ok {
		return nil, fmt.Errorf("controller not found for objectID %d", objectID)
	}
	return m.controllers[i], nil
}

// Clear stops and forgets every controller.
func (m *TickManager) Clear() {
	for _, c := range m.controllers {
		if c != nil {
			c.Stop()
		}
	}
	clear(m.controllers)
	m.controllers = m.controllers[:0]
	clear(m.index)
}

// Start runs Step at the given period until ctx is done.
func (m *TickManager) Start(ctx context.Context, period time.Duration) error {
	return RunFixedStep(ctx, period, m.Step)
}

// RunFixedStep calls step every period with a constant dt until ctx is done.
func RunFixedStep(ctx context.Context, period time.Duration, step func(dt float64)) error {
	if period <= 0 {
		return fmt.Errorf("fixed step period must be positive, got %s", period)
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	dt := period.Seconds()
	slog.Info("fixed-step loop started", "interval", period)

	for {
		select {
		case <-ctx.Done():
			slog.Info("fixed-step loop stopping")
			return ctx.Err()

		case <-ticker.C:
			step(dt)
		}
	}
}
