package world

import (
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// PointerEntered registers a new pointer device on the window.
func (w *World) PointerEntered(window WindowID, pointer event.PointerID) {
	win := w.window(window)
	if win == nil {
		return
	}
	win.pointers = append(win.pointers, &Pointer{ID: pointer})
}

// PointerLeft removes a pointer from the window, unhovering whatever
// it was over.
func (w *World) PointerLeft(window WindowID, pointer event.PointerID) {
	win := w.window(window)
	if win == nil {
		return
	}

	for i, p := range win.pointers {
		if p.ID == pointer {
			win.pointers[i] = win.pointers[len(win.pointers)-1]
			win.pointers = win.pointers[:len(win.pointers)-1]

			if !p.hovering.IsNil() {
				w.setHovered(p.hovering, false)
			}
			return
		}
	}
}

// PointerMoved updates a pointer's position, re-resolves hover, and
// dispatches a Move event to the capturer or the hovered widget.
func (w *World) PointerMoved(window WindowID, pointer event.PointerID, position geometry.Point) bool {
	win := w.window(window)
	if win == nil {
		return false
	}
	p := win.pointer(pointer)
	if p == nil {
		return false
	}

	p.Position = position
	capturer := p.capturer

	hovered := w.updatePointerHovered(win, p)

	target := capturer
	if target.IsNil() {
		target = hovered
	}
	if target.IsNil() {
		return false
	}

	ev := event.PointerMove{Pointer: pointer, Position: position}
	switch w.sendPointerEvent(win, target, ev) {
	case event.PointerHandled:
		return true
	case event.PointerCapture:
		errors.DebugPanic("pointer capture is only valid in response to a Down event")
		return true
	default:
		return false
	}
}

// PointerPressed dispatches a button Down or Up to the pointer's
// target. A widget answering Down with Capture becomes active and
// receives every pointer event until the button releases. An
// unhandled primary press outside the focused widget clears focus.
func (w *World) PointerPressed(window WindowID, pointer event.PointerID, button event.PointerButton, pressed bool) bool {
	win := w.window(window)
	if win == nil {
		return false
	}
	p := win.pointer(pointer)
	if p == nil {
		return false
	}

	position := p.Position
	target := p.target()
	handled := false

	if !target.IsNil() {
		var ev event.PointerEvent
		if pressed {
			ev = event.PointerDown{Pointer: pointer, Button: button, Position: position}
		} else {
			ev = event.PointerUp{Pointer: pointer, Button: button, Position: position}
		}

		switch w.sendPointerEvent(win, target, ev) {
		case event.PointerHandled:
			handled = true
		case event.PointerCapture:
			if pressed {
				w.setActive(target, true)
				p.capturer = target
			} else {
				errors.DebugPanic("pointer capture is only valid in response to a Down event")
			}
			handled = true
		}

		if !pressed {
			if state := w.arena.stateOf(target); state != nil && state.isActive {
				w.setActive(target, false)
				p.capturer = ID{}
				w.updatePointerHovered(win, p)
			}
		}
	}

	if pressed && !handled && !win.focused.IsNil() {
		if state := w.arena.stateOf(win.focused); state != nil {
			local := state.globalTransform.Inverse().Apply(position)
			if !geometry.RectFromSize(state.size).Contains(local) {
				w.transferFocus(win, ID{})
			}
		}
	}

	return handled
}

// PointerScrolled dispatches a scroll to the pointer's target.
func (w *World) PointerScrolled(window WindowID, pointer event.PointerID, delta event.ScrollDelta) bool {
	win := w.window(window)
	if win == nil {
		return false
	}
	p := win.pointer(pointer)
	if p == nil {
		return false
	}

	target := p.target()
	if target.IsNil() {
		return false
	}

	ev := event.PointerScroll{Pointer: pointer, Position: p.Position, Delta: delta}
	switch w.sendPointerEvent(win, target, ev) {
	case event.PointerHandled:
		return true
	case event.PointerCapture:
		errors.DebugPanic("pointer capture is only valid in response to a Down event")
		return true
	default:
		return false
	}
}

func (w *World) sendPointerEvent(win *Window, target ID, ev event.PointerEvent) event.PointerPropagate {
	return sendEvent(w, win, target, event.PointerBubble,
		func(widget Widget, cx *EventContext) event.PointerPropagate {
			return widget.OnPointerEvent(cx, ev)
		})
}

// updateWindowHovered re-resolves hover for every pointer, after
// layout or compose may have moved widgets under them.
func (w *World) updateWindowHovered(win *Window) {
	for _, p := range win.pointers {
		w.updatePointerHovered(win, p)
	}
}

// updatePointerHovered recomputes what the pointer is over and keeps
// widget hover flags and the window cursor in sync. While captured,
// hover tracks whether the pointer is inside the capturer.
func (w *World) updatePointerHovered(win *Window, p *Pointer) ID {
	if !p.capturer.IsNil() {
		state := w.arena.stateOf(p.capturer)
		if state == nil {
			return ID{}
		}

		w.setWindowCursor(win, state.cursor)

		local := state.globalTransform.Inverse().Apply(p.Position)
		hovered := geometry.RectFromSize(state.size).Contains(local)
		w.setHovered(p.capturer, hovered)

		if hovered {
			return p.capturer
		}
		return ID{}
	}

	hovered := w.findWidgetAt(win, p.Position)

	if p.hovering != hovered {
		if !p.hovering.IsNil() {
			w.setHovered(p.hovering, false)
		}
		if !hovered.IsNil() {
			w.setHovered(hovered, true)
		}
	}

	p.hovering = hovered

	if state := w.arena.stateOf(hovered); state != nil {
		w.setWindowCursor(win, state.cursor)
	} else {
		w.setWindowCursor(win, CursorDefault)
	}

	return hovered
}

// setHovered flips a widget's hover flag and notifies it.
func (w *World) setHovered(id ID, hovered bool) {
	state := w.arena.stateOf(id)
	if state == nil || state.isHovered == hovered {
		return
	}
	state.isHovered = hovered
	w.updateWidget(id, UpdateHovered{Hovered: hovered})
	w.refreshUp(id)
}

// setActive flips a widget's active flag and notifies it.
func (w *World) setActive(id ID, active bool) {
	state := w.arena.stateOf(id)
	if state == nil || state.isActive == active {
		return
	}
	state.isActive = active
	w.updateWidget(id, UpdateActive{Active: active})
	w.refreshUp(id)
}

// setFocused flips a widget's focus flag and notifies it.
func (w *World) setFocused(id ID, focused bool) {
	state := w.arena.stateOf(id)
	if state == nil || state.isFocused == focused {
		return
	}
	state.isFocused = focused
	w.updateWidget(id, UpdateFocused{Focused: focused})
	w.refreshUp(id)
}

func (w *World) setWindowCursor(win *Window, cursor CursorIcon) {
	if win.cursor == cursor {
		return
	}
	win.cursor = cursor
	w.emitSignal(SignalWindowUpdate{Window: win.id, Update: WindowCursor{Cursor: cursor}})
}
