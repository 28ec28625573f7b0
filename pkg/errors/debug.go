//go:build debugchecks

package errors

import "fmt"

// DebugChecks reports whether debug assertions are compiled in.
const DebugChecks = true

// DebugPanic panics with a formatted message. It compiles to a no-op
// unless the debugchecks build tag is set.
func DebugPanic(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
