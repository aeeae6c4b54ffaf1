package ai

// Controller is a per-entity AI state machine driven by the fixed-step loop.
type Controller interface {
	// ObjectID returns the owning entity's object ID.
	ObjectID() uint32

	// Tick advances the state machine by dt seconds.
	Tick(dt float64)

	// Alive reports whether the entity still exists in the scene.
	// The manager drops controllers that report false.
	Alive() bool

	// Stop tears the entity down without death callbacks (scene unload).
	Stop()
}
