package world

// focusKind is the focus change a widget requested while handling an
// event.
type focusKind int

const (
	focusNone focusKind = iota
	focusSet
	focusClear
	focusNext
	focusPrevious
)

type focusRequest struct {
	kind   focusKind
	target ID
}

// sendEvent bubbles an event from target toward the root. fire is
// called per widget until it returns something other than bubble or
// the root is passed. Focus changes requested during dispatch apply
// after the walk.
func sendEvent[P comparable](
	w *World,
	win *Window,
	target ID,
	bubble P,
	fire func(widget Widget, cx *EventContext) P,
) P {
	var focus focusRequest

	propagate := bubble
	current := target

	for !current.IsNil() && propagate == bubble {
		e, ok := w.arena.acquire("event", current)
		if !ok {
			break
		}

		cx := EventContext{
			Context: w.newContext(current, &e.state),
			window:  win,
			focus:   &focus,
		}

		propagate = fire(e.widget, &cx)
		current = e.state.parent
		w.arena.release(e)
	}

	w.refreshUp(target)
	w.applyFocus(win, focus)

	return propagate
}

func (w *World) applyFocus(win *Window, focus focusRequest) {
	switch focus.kind {
	case focusNone:
	case focusSet:
		w.transferFocus(win, focus.target)
	case focusClear:
		w.transferFocus(win, ID{})
	case focusNext:
		w.focusNext(win, true)
	case focusPrevious:
		w.focusNext(win, false)
	}
}

// Focus moves keyboard focus to the widget on the given window.
func (w *World) Focus(window WindowID, target ID) {
	if win := w.window(window); win != nil {
		w.transferFocus(win, target)
	}
}

// Unfocus clears keyboard focus on the given window.
func (w *World) Unfocus(window WindowID) {
	if win := w.window(window); win != nil {
		w.transferFocus(win, ID{})
	}
}

// FocusNext moves focus to the next focusable widget in tree order,
// wrapping around at the end.
func (w *World) FocusNext(window WindowID) {
	if win := w.window(window); win != nil {
		w.focusNext(win, true)
	}
}

// FocusPrevious moves focus to the previous focusable widget in tree
// order, wrapping around at the start.
func (w *World) FocusPrevious(window WindowID) {
	if win := w.window(window); win != nil {
		w.focusNext(win, false)
	}
}

func (w *World) focusNext(win *Window, forward bool) {
	target := w.findNextFocus(win, forward)
	if target.IsNil() && !win.focused.IsNil() {
		// wrap around
		target = w.findFirstFocus(win, forward)
	}
	w.transferFocus(win, target)
}
