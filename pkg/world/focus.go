package world

import (
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// transferFocus moves keyboard focus to target, or clears it for a
// nil target. The widget losing focus gets an input-method End event,
// the widget gaining focus gets a Start event and is scrolled into
// view.
func (w *World) transferFocus(win *Window, target ID) {
	if win.focused == target {
		return
	}

	current := win.focused
	win.focused = target

	if !current.IsNil() {
		w.setFocused(current, false)

		if state := w.arena.stateOf(current); state != nil && state.acceptsText() {
			if target.IsNil() {
				w.emitSignal(SignalIme{Window: win.id, Event: ImeEnd{}})
			}
			w.sendTextEvent(win, current, event.TextIme{Ime: event.ImeEnd{}})
		}
	}

	if !target.IsNil() {
		w.setFocused(target, true)

		state := w.arena.stateOf(target)
		if state == nil {
			return
		}

		if state.acceptsText() {
			w.emitSignal(SignalIme{Window: win.id, Event: ImeStart{}})
			w.sendTextEvent(win, target, event.TextIme{Ime: event.ImeStart{}})
		}

		w.scrollTo(target, geometry.RectFromSize(state.size))
	}
}

// findFirstFocus returns the first focusable widget in tree order, or
// the last when walking backward.
func (w *World) findFirstFocus(win *Window, forward bool) ID {
	if forward {
		for i := range win.layers {
			if id := w.findFirstFocusFrom(win.layers[i].Widget, forward); !id.IsNil() {
				return id
			}
		}
	} else {
		for i := len(win.layers) - 1; i >= 0; i-- {
			if id := w.findFirstFocusFrom(win.layers[i].Widget, forward); !id.IsNil() {
				return id
			}
		}
	}
	return ID{}
}

func (w *World) findFirstFocusFrom(id ID, forward bool) ID {
	state := w.arena.stateOf(id)
	if state == nil {
		return ID{}
	}

	if state.acceptsFocus() {
		return id
	}

	if forward {
		for _, child := range state.children {
			if found := w.findFirstFocusFrom(child, forward); !found.IsNil() {
				return found
			}
		}
	} else {
		for i := len(state.children) - 1; i >= 0; i-- {
			if found := w.findFirstFocusFrom(state.children[i], forward); !found.IsNil() {
				return found
			}
		}
	}
	return ID{}
}

// findNextFocus returns the next focusable widget after the currently
// focused one, or a nil ID at the end of the tree.
func (w *World) findNextFocus(win *Window, forward bool) ID {
	if win.focused.IsNil() {
		return w.findFirstFocus(win, forward)
	}

	order := make([]ID, 0, len(win.layers))
	if forward {
		for i := range win.layers {
			order = append(order, win.layers[i].Widget)
		}
	} else {
		for i := len(win.layers) - 1; i >= 0; i-- {
			order = append(order, win.layers[i].Widget)
		}
	}

	return w.nextFocusAmong(order, forward)
}

// nextFocusAmong scans siblings in order: the subtree holding focus
// continues the search, and siblings after it restart it.
func (w *World) nextFocusAmong(siblings []ID, forward bool) ID {
	rest := siblings
	for i, id := range siblings {
		state := w.arena.stateOf(id)
		if state == nil {
			return ID{}
		}

		if state.isFocused || state.hasFocused {
			rest = siblings[i+1:]
			if found := w.findNextFocusFrom(id, forward); !found.IsNil() {
				return found
			}
			break
		}
	}

	for _, id := range rest {
		if found := w.findFirstFocusFrom(id, forward); !found.IsNil() {
			return found
		}
	}
	return ID{}
}

func (w *World) findNextFocusFrom(id ID, forward bool) ID {
	state := w.arena.stateOf(id)
	if state == nil {
		return ID{}
	}

	if !state.isFocused && !state.hasFocused {
		return w.findFirstFocusFrom(id, forward)
	}

	if state.isFocused {
		// the search continues in the siblings after this widget
		return ID{}
	}

	children := state.children
	if !forward {
		children = make([]ID, len(state.children))
		for i, child := range state.children {
			children[len(children)-1-i] = child
		}
	}

	return w.nextFocusAmong(children, forward)
}
