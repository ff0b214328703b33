package mintcrate

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// logger emits framework diagnostics (room transitions, registry warnings).
// Quiet at Warn level unless debug mode is enabled.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "mintcrate",
	Level:  log.WarnLevel,
})

// globalDebug mirrors the most recently set debug flag so that entity
// operations (which lack a Game pointer) can check it cheaply.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, use of a
// destroyed entity handle panics with a descriptive message instead of being
// logged, and lifecycle diagnostics are emitted at debug level.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// DebugMode reports whether debug mode is currently enabled.
func DebugMode() bool {
	return globalDebug
}

// Logger returns the framework logger so games can route their own
// diagnostics through the same output.
func Logger() *log.Logger {
	return logger
}

// checkDestroyed surfaces an operation on a destroyed handle. Panics in
// debug mode; logs once per call site's invocation otherwise. Returns true
// when the operation must be skipped.
func checkDestroyed(e *Entity, op string) bool {
	if e == nil {
		return true
	}
	if !e.destroyed {
		return false
	}
	if globalDebug {
		panic(fmt.Sprintf("mintcrate debug: %s on destroyed entity (ID was %d)", op, e.ID))
	}
	logger.Warn("operation on destroyed entity", "op", op, "id", e.ID)
	return true
}
