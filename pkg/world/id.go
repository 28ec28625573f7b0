// Package world implements the retained widget tree: a generational
// arena of widget instances, dirty-flag scheduling, the per-frame
// layout/compose/draw/animate passes, event dispatch with focus and
// hit testing, touch gesture recognition, and the draw-recording
// cache. A World owns the arena, the set of windows, and the outbound
// signal sink; everything runs on a single goroutine.
package world

import "fmt"

// ID is a stable handle to a widget slot. It stays valid until the
// widget is removed; reuse of a freed slot bumps the generation so a
// stale handle never aliases a different widget. The zero ID refers to
// no widget.
type ID struct {
	index      uint32
	generation uint32
}

// IsNil reports whether the handle refers to no widget.
func (id ID) IsNil() bool { return id.index == 0 }

// slot returns the arena slot this handle refers to. Only valid when
// the handle is not nil.
func (id ID) slot() uint32 { return id.index - 1 }

func (id ID) String() string {
	if id.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%d:%d", id.slot(), id.generation)
}

// TypedID is an ID carrying the widget's concrete type, so callers can
// access the widget without a runtime type assertion.
type TypedID[T Widget] struct {
	ID
}

// Untyped returns the plain handle.
func (id TypedID[T]) Untyped() ID { return id.ID }
