package world

import (
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// TouchDown starts or restarts a touch sequence and dispatches a Down
// event. A widget answering with Capture receives the rest of the
// sequence regardless of hit testing.
func (w *World) TouchDown(window WindowID, touch event.TouchID, position geometry.Point) bool {
	win := w.window(window)
	if win == nil {
		return false
	}

	t := win.touch(touch)
	if t != nil {
		t.Position = position
		t.Start = position
		t.startTime = Now()
		t.capturer = ID{}
	} else {
		t = &Touch{
			ID:        touch,
			Position:  position,
			Start:     position,
			startTime: Now(),
		}
		win.touches = append(win.touches, t)
	}

	target := w.touchTarget(win, t, position)
	if target.IsNil() {
		return false
	}

	ev := event.TouchDown{Touch: touch, Position: position}
	switch w.sendTouchEvent(win, target, ev) {
	case event.TouchHandled:
		return true
	case event.TouchCapture:
		w.setActive(target, true)
		t.capturer = target
		return true
	default:
		return false
	}
}

// TouchUp finishes a touch sequence: gesture recognition may emit Tap,
// DoubleTap or LongTap before the Up event itself. An unhandled,
// non-panning release outside the focused widget clears focus.
func (w *World) TouchUp(window WindowID, touch event.TouchID, position geometry.Point) bool {
	win := w.window(window)
	if win == nil {
		return false
	}
	t := win.touch(touch)
	if t == nil {
		return false
	}

	t.Position = position

	panning := t.phase == touchPanning

	var events []event.TouchEvent

	switch {
	case t.phase == touchTapped &&
		t.tapPos.Distance(position) < w.touch.DoubleTapSlop &&
		Now().Sub(t.tapTime) < w.touch.DoubleTapTime:
		t.phase = touchIdle
		events = append(events,
			event.TouchGesture{Gesture: event.Tap{Touch: touch, Position: position}},
			event.TouchGesture{Gesture: event.DoubleTap{Touch: touch, Position: position}},
		)

	case t.distance() < w.touch.TapSlop && t.duration() < w.touch.TapTime:
		t.phase = touchTapped
		t.tapPos = position
		t.tapTime = Now()
		events = append(events,
			event.TouchGesture{Gesture: event.Tap{Touch: touch, Position: position}},
		)

	case t.distance() < w.touch.TapSlop && t.duration() >= w.touch.LongTapTime:
		t.phase = touchIdle
		events = append(events,
			event.TouchGesture{Gesture: event.LongTap{Touch: touch, Position: position}},
		)

	default:
		t.phase = touchIdle
	}

	events = append(events, event.TouchUp{Touch: touch, Position: position})

	handled := false
	for _, ev := range events {
		handled = w.sendTouchEventAt(win, t, position, ev) || handled
	}

	if !panning && !handled && !win.focused.IsNil() {
		if state := w.arena.stateOf(win.focused); state != nil {
			local := state.globalTransform.Inverse().Apply(position)
			if !geometry.RectFromSize(state.size).Contains(local) {
				w.transferFocus(win, ID{})
			}
		}
	}

	if target := w.touchTarget(win, t, position); !target.IsNil() {
		w.setActive(target, false)
	}
	t.capturer = ID{}

	return handled
}

// TouchMoved updates a touch's position. Movement past the pan
// threshold starts panning and emits Pan gestures; a Move event
// follows either way.
func (w *World) TouchMoved(window WindowID, touch event.TouchID, position geometry.Point) bool {
	win := w.window(window)
	if win == nil {
		return false
	}
	t := win.touch(touch)
	if t == nil {
		return false
	}

	delta := position.Sub(t.Position)
	t.Position = position

	handled := false

	if t.distance() > w.touch.PanDistance || t.phase == touchPanning {
		t.phase = touchPanning

		if target := w.touchTarget(win, t, position); !target.IsNil() {
			ev := event.TouchGesture{Gesture: event.Pan{
				Touch:    touch,
				Start:    t.Start,
				Position: position,
				Delta:    delta,
			}}

			switch w.sendTouchEvent(win, target, ev) {
			case event.TouchHandled:
				handled = true
			case event.TouchCapture:
				w.setActive(target, true)
				t.capturer = target
				handled = true
			}
		}
	}

	ev := event.TouchMove{Touch: touch, Position: position}
	return w.sendTouchEventAt(win, t, position, ev) || handled
}

// sendTouchEventAt dispatches to the touch's capturer or the widget
// under position. Capture is rejected here; it is only valid for Down
// and Pan.
func (w *World) sendTouchEventAt(win *Window, t *Touch, position geometry.Point, ev event.TouchEvent) bool {
	target := w.touchTarget(win, t, position)
	if target.IsNil() {
		return false
	}

	switch w.sendTouchEvent(win, target, ev) {
	case event.TouchHandled:
		return true
	case event.TouchCapture:
		errors.DebugPanic("touch capture is only valid in response to a Down event or a Pan gesture")
		return true
	default:
		return false
	}
}

func (w *World) touchTarget(win *Window, t *Touch, position geometry.Point) ID {
	if !t.capturer.IsNil() {
		return t.capturer
	}
	return w.findWidgetAt(win, position)
}

func (w *World) sendTouchEvent(win *Window, target ID, ev event.TouchEvent) event.TouchPropagate {
	return sendEvent(w, win, target, event.TouchBubble,
		func(widget Widget, cx *EventContext) event.TouchPropagate {
			return widget.OnTouchEvent(cx, ev)
		})
}
