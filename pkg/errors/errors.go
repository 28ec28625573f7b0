// Package errors provides structured error handling for the Loom engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindArena indicates a widget arena access error.
	KindArena
	// KindLayout indicates a layout pass error.
	KindLayout
	// KindDraw indicates a draw or record pass error.
	KindDraw
	// KindEvent indicates an event dispatch error.
	KindEvent
	// KindConfig indicates a settings parse or load error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindArena:
		return "arena"
	case KindLayout:
		return "layout"
	case KindDraw:
		return "draw"
	case KindEvent:
		return "event"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LoomError represents a structured error in the Loom engine.
type LoomError struct {
	// Op is the operation that failed (e.g., "world.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LoomError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LoomError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "world.PointerPressed").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// StaleHandleError reports use of a widget handle whose slot has been
// freed or reused since the handle was issued.
type StaleHandleError struct {
	// Op is the operation that used the handle.
	Op string
	// Index is the arena slot the handle referred to.
	Index uint32
	// Generation is the generation the handle carried.
	Generation uint32
}

func (e *StaleHandleError) Error() string {
	return fmt.Sprintf("%s: stale widget handle (slot %d, generation %d)", e.Op, e.Index, e.Generation)
}

// BorrowError reports an attempt to access a widget that is already
// checked out, such as re-entrant access from inside its own callback.
type BorrowError struct {
	// Op is the operation that attempted the access.
	Op string
	// Index is the arena slot of the widget.
	Index uint32
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("%s: widget at slot %d is already borrowed", e.Op, e.Index)
}

// ErrorHandler receives errors reported by the Loom engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LoomError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
