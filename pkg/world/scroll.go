package world

import "github.com/go-loom/loom/pkg/geometry"

// scrollTo offers rect to target and every ancestor as an
// UpdateScrollTo, mapping it into each ancestor's local coordinates
// on the way up. Scrollable containers respond by adjusting their
// scroll offset.
func (w *World) scrollTo(target ID, rect geometry.Rect) {
	current := target
	for !current.IsNil() {
		state := w.arena.stateOf(current)
		if state == nil {
			return
		}

		w.refreshUp(current)
		w.updateWidget(current, UpdateScrollTo{Rect: rect})

		rect.Min = state.transform.Apply(rect.Min)
		rect.Max = state.transform.Apply(rect.Max)

		current = state.parent
	}
}
