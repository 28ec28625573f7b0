package world

import "github.com/go-loom/loom/pkg/event"

// ModifiersChanged records the window's current modifier-key state.
func (w *World) ModifiersChanged(window WindowID, modifiers event.Modifiers) {
	if win := w.window(window); win != nil {
		win.modifiers = modifiers
	}
}

// KeyPressed dispatches a key press or release. The window's OnKey
// hook sees the event first; otherwise it goes to the focused widget.
// An unhandled Tab press moves focus forward, Shift+Tab backward.
func (w *World) KeyPressed(window WindowID, key event.Key, text string, repeat, pressed bool) bool {
	win := w.window(window)
	if win == nil {
		return false
	}

	ev := event.KeyEvent{
		Down:      pressed,
		Key:       key,
		Modifiers: win.modifiers,
		Text:      text,
		Repeat:    repeat,
	}

	if win.OnKey != nil && win.OnKey(ev) {
		return true
	}

	handled := false
	if !win.focused.IsNil() {
		handled = w.sendKeyEvent(win, win.focused, ev) == event.PropagateHandled
	}

	if key == event.Named(event.NamedKeyTab) && pressed && !handled {
		w.focusNext(win, !win.modifiers.Shift())
	}

	return handled
}

func (w *World) sendKeyEvent(win *Window, target ID, ev event.KeyEvent) event.Propagate {
	return sendEvent(w, win, target, event.PropagateBubble,
		func(widget Widget, cx *EventContext) event.Propagate {
			return widget.OnKeyEvent(cx, ev)
		})
}
