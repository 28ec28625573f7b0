//go:build !debugchecks

package errors

// DebugChecks reports whether debug assertions are compiled in.
const DebugChecks = false

// DebugPanic panics with a formatted message. It compiles to a no-op
// unless the debugchecks build tag is set.
func DebugPanic(format string, args ...any) {}
