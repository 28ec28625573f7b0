package world

import (
	"time"

	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// Signal is an outbound notification to the host platform layer,
// delivered through the sink registered at World construction. At most
// one signal is emitted per causing event; redraw and animate requests
// are additionally deduplicated per window per frame.
type Signal interface {
	isSignal()
}

// SignalRedraw asks the host to redraw a window.
type SignalRedraw struct {
	Window WindowID
}

// SignalAnimate asks the host to schedule an animation tick for a
// window. Start is when the request was made.
type SignalAnimate struct {
	Window WindowID
	Start  time.Time
}

// SignalMutate defers a World mutation to the owner's next drain
// point. Fn may be sent from another goroutine through a driver proxy.
type SignalMutate struct {
	Fn func(*World)
}

// SignalClipboardSet asks the host to set the clipboard text.
type SignalClipboardSet struct {
	Text string
}

// SignalCreateWindow reports a window created in the World that the
// host should realize.
type SignalCreateWindow struct {
	Window WindowID
}

// SignalRemoveWindow reports a window removed from the World.
type SignalRemoveWindow struct {
	Window WindowID
}

// SignalWindowUpdate asks the host to apply a window property change.
type SignalWindowUpdate struct {
	Window WindowID
	Update WindowUpdate
}

// SignalIme asks the host to drive the platform input method.
type SignalIme struct {
	Window WindowID
	Event  ImeSignal
}

func (SignalRedraw) isSignal()       {}
func (SignalAnimate) isSignal()      {}
func (SignalMutate) isSignal()       {}
func (SignalClipboardSet) isSignal() {}
func (SignalCreateWindow) isSignal() {}
func (SignalRemoveWindow) isSignal() {}
func (SignalWindowUpdate) isSignal() {}
func (SignalIme) isSignal()          {}

// WindowUpdate is the payload of a SignalWindowUpdate.
type WindowUpdate interface {
	isWindowUpdate()
}

// WindowTitle sets the window title.
type WindowTitle struct{ Title string }

// WindowSizing sets the window sizing policy.
type WindowSizing struct{ Sizing Sizing }

// WindowVisible shows or hides the window.
type WindowVisible struct{ Visible bool }

// WindowDecorated toggles host decorations.
type WindowDecorated struct{ Decorated bool }

// WindowCursor sets the pointer cursor.
type WindowCursor struct{ Cursor CursorIcon }

func (WindowTitle) isWindowUpdate()     {}
func (WindowSizing) isWindowUpdate()    {}
func (WindowVisible) isWindowUpdate()   {}
func (WindowDecorated) isWindowUpdate() {}
func (WindowCursor) isWindowUpdate()    {}

// ImeSignal is the payload of a SignalIme.
type ImeSignal interface {
	isImeSignal()
}

// ImeStart begins an IME session for the focused text widget.
type ImeStart struct{}

// ImeEnd ends the IME session.
type ImeEnd struct{}

// ImeArea reports the on-screen rect of the text being edited, so the
// host can place candidate windows.
type ImeArea struct{ Rect geometry.Rect }

// ImeText reports the edited text contents.
type ImeText struct{ Text string }

// ImeSelection reports the selection and composing ranges.
type ImeSelection struct {
	Selection event.Range
	Composing *event.Range
}

func (ImeStart) isImeSignal()     {}
func (ImeEnd) isImeSignal()       {}
func (ImeArea) isImeSignal()      {}
func (ImeText) isImeSignal()      {}
func (ImeSelection) isImeSignal() {}
