// Package event defines the input events the engine dispatches: pointer,
// key, text/IME, and touch events, together with their propagation results.
package event

import "github.com/go-loom/loom/pkg/geometry"

// PointerID identifies a pointing device within a window.
type PointerID uint64

// PointerButton is a button on a pointing device.
type PointerButton int

const (
	PointerButtonPrimary PointerButton = iota
	PointerButtonSecondary
	PointerButtonMiddle
)

// Propagate is the result of a key or text event handler.
type Propagate int

const (
	// PropagateBubble passes the event on to the parent widget.
	PropagateBubble Propagate = iota
	// PropagateHandled stops the event.
	PropagateHandled
)

// PointerPropagate is the result of a pointer event handler.
type PointerPropagate int

const (
	PointerBubble PointerPropagate = iota
	PointerHandled
	// PointerCapture handles the event and captures the pointer: further
	// events for the pointer go to this widget regardless of hit testing.
	// Only valid in response to a down event.
	PointerCapture
)

// PointerEvent is one of PointerDown, PointerUp, PointerMove or
// PointerScroll.
type PointerEvent interface {
	isPointerEvent()
}

// PointerDown reports a button press.
type PointerDown struct {
	Pointer  PointerID
	Button   PointerButton
	Position geometry.Point
}

// PointerUp reports a button release.
type PointerUp struct {
	Pointer  PointerID
	Button   PointerButton
	Position geometry.Point
}

// PointerMove reports pointer motion.
type PointerMove struct {
	Pointer  PointerID
	Position geometry.Point
}

// ScrollDelta is a scroll amount, in lines or pixels depending on the
// device.
type ScrollDelta struct {
	Lines  geometry.Offset
	Pixels geometry.Offset
}

// PointerScroll reports scroll wheel or trackpad motion.
type PointerScroll struct {
	Pointer  PointerID
	Position geometry.Point
	Delta    ScrollDelta
}

func (PointerDown) isPointerEvent()   {}
func (PointerUp) isPointerEvent()     {}
func (PointerMove) isPointerEvent()   {}
func (PointerScroll) isPointerEvent() {}
