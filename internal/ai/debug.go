package ai

import "sync/atomic"

// debugLoggingEnabled gates the per-decision debug logs of the chooser.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging turns decision logging on or off. Called from main
// after the log level is known.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled reports whether decision logging is on.
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
