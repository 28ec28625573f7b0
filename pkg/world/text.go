package world

import "github.com/go-loom/loom/pkg/event"

// TextPasted delivers clipboard contents to the focused widget.
func (w *World) TextPasted(window WindowID, text string) bool {
	win := w.window(window)
	if win == nil || win.focused.IsNil() {
		return false
	}
	ev := event.TextPaste{Text: text}
	return w.sendTextEvent(win, win.focused, ev) == event.PropagateHandled
}

// ImeCommit delivers composed input-method text to the focused widget.
func (w *World) ImeCommit(window WindowID, text string) bool {
	win := w.window(window)
	if win == nil || win.focused.IsNil() {
		return false
	}
	ev := event.TextIme{Ime: event.ImeCommit{Text: text}}
	return w.sendTextEvent(win, win.focused, ev) == event.PropagateHandled
}

// ImeSelect updates the input-method selection on the focused widget.
func (w *World) ImeSelect(window WindowID, selection event.Range) bool {
	win := w.window(window)
	if win == nil || win.focused.IsNil() {
		return false
	}
	ev := event.TextIme{Ime: event.ImeSelect{Selection: selection}}
	return w.sendTextEvent(win, win.focused, ev) == event.PropagateHandled
}

func (w *World) sendTextEvent(win *Window, target ID, ev event.TextEvent) event.Propagate {
	return sendEvent(w, win, target, event.PropagateBubble,
		func(widget Widget, cx *EventContext) event.Propagate {
			return widget.OnTextEvent(cx, ev)
		})
}
