package ai

import "sync/atomic"

// debugLoggingEnabled gates per-tick debug logs so hot paths skip slog level checks.
// Set via EnableDebugLogging() from the runner after reading config.LogLevel.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables per-tick debug logging for gameplay AI.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if debug logging is enabled.
// Use this to guard debug log calls inside Tick:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("state change", "objectID", id, "state", s)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
