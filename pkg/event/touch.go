package event

import (
	"time"

	"github.com/go-loom/loom/pkg/geometry"
)

// TouchID is the device-assigned identifier of one touch sequence.
type TouchID uint64

// TouchPropagate is the result of a touch event handler.
type TouchPropagate int

const (
	TouchBubble TouchPropagate = iota
	TouchHandled
	// TouchCapture handles the event and captures the touch: further
	// move/up events for the touch id go to this widget regardless of hit
	// testing. Only valid in response to a down event or a pan gesture.
	TouchCapture
)

// TouchEvent is one of TouchDown, TouchUp, TouchMove or TouchGesture.
type TouchEvent interface {
	isTouchEvent()
}

// TouchDown reports a finger making contact.
type TouchDown struct {
	Touch    TouchID
	Position geometry.Point
}

// TouchUp reports a finger lifting.
type TouchUp struct {
	Touch    TouchID
	Position geometry.Point
}

// TouchMove reports a finger moving while down.
type TouchMove struct {
	Touch    TouchID
	Position geometry.Point
}

// TouchGesture reports a recognized gesture.
type TouchGesture struct {
	Gesture Gesture
}

func (TouchDown) isTouchEvent()    {}
func (TouchUp) isTouchEvent()      {}
func (TouchMove) isTouchEvent()    {}
func (TouchGesture) isTouchEvent() {}

// Gesture is one of Tap, DoubleTap, LongTap or Pan.
type Gesture interface {
	isGesture()
}

// Tap is a quick press and release without significant movement.
type Tap struct {
	Touch    TouchID
	Position geometry.Point
}

// DoubleTap is a second tap close in time and space to a previous one.
// It is emitted after the Tap for the second press.
type DoubleTap struct {
	Touch    TouchID
	Position geometry.Point
}

// LongTap is a press held past the long-tap threshold without significant
// movement.
type LongTap struct {
	Touch    TouchID
	Position geometry.Point
}

// Pan is continuous movement past the pan threshold. It is emitted for
// every move while panning.
type Pan struct {
	Touch TouchID
	// Start is where the touch first made contact.
	Start geometry.Point
	// Position is the current touch position.
	Position geometry.Point
	// Delta is the movement since the previous pan event.
	Delta geometry.Offset
}

func (Tap) isGesture()       {}
func (DoubleTap) isGesture() {}
func (LongTap) isGesture()   {}
func (Pan) isGesture()       {}

// TouchSettings holds the distance and time thresholds used by gesture
// recognition.
type TouchSettings struct {
	// TapSlop is how far a touch may move and still count as a tap.
	TapSlop float32
	// TapTime is how long a touch may be held and still count as a tap.
	TapTime time.Duration
	// DoubleTapSlop is how far apart two taps may be and still count as
	// a double tap.
	DoubleTapSlop float32
	// DoubleTapTime is how much time may pass between two taps.
	DoubleTapTime time.Duration
	// LongTapTime is how long a stationary touch must be held to emit a
	// long tap.
	LongTapTime time.Duration
	// PanDistance is how far a touch must move to start panning.
	PanDistance float32
}

// DefaultTouchSettings returns the thresholds used when no settings are
// loaded.
func DefaultTouchSettings() TouchSettings {
	return TouchSettings{
		TapSlop:       10,
		TapTime:       200 * time.Millisecond,
		DoubleTapSlop: 20,
		DoubleTapTime: 300 * time.Millisecond,
		LongTapTime:   500 * time.Millisecond,
		PanDistance:   10,
	}
}
