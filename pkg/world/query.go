package world

import "github.com/go-loom/loom/pkg/geometry"

// WidgetAt returns the topmost pointer-accepting widget under a
// window-space point, or a nil ID.
func (w *World) WidgetAt(window WindowID, point geometry.Point) ID {
	win := w.window(window)
	if win == nil {
		return ID{}
	}
	return w.findWidgetAt(win, point)
}

// findWidgetAt hit-tests the window's layers, topmost first.
func (w *World) findWidgetAt(win *Window, point geometry.Point) ID {
	for i := len(win.layers) - 1; i >= 0; i-- {
		if found := w.widgetAt(win.layers[i].Widget, point); !found.IsNil() {
			return found
		}
	}
	return ID{}
}

func (w *World) widgetAt(id ID, point geometry.Point) ID {
	e := w.arena.entryOf(id)
	if e == nil {
		return ID{}
	}
	state := &e.state

	// a widget can supply its own hit shape
	if tester, ok := e.widget.(HitTester); ok {
		cx := w.newContext(id, state)
		return tester.WidgetAt(&cx, point)
	}

	local := state.globalTransform.Inverse().Apply(point)

	if !geometry.RectFromSize(state.size).Contains(local) || state.isStashed {
		return ID{}
	}
	if state.clip != nil && !state.clip.Contains(local) {
		return ID{}
	}

	// later children draw on top, so they are hit-tested first
	for i := len(state.children) - 1; i >= 0; i-- {
		if found := w.widgetAt(state.children[i], point); !found.IsNil() {
			return found
		}
	}

	if state.acceptsPointer() {
		return id
	}
	return ID{}
}
