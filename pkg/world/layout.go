package world

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/geometry"
)

// layoutWindow lays out every layer of a window. The second return is
// true for fit-content windows, whose size follows the base layer.
func (w *World) layoutWindow(win *Window) (geometry.Size, bool) {
	if len(win.layers) == 0 {
		return geometry.Size{}, false
	}

	_, fit := win.sizing.(SizingFitContent)

	max := win.size
	if fit {
		max = geometry.Sz(math32.Inf(1), math32.Inf(1))
	}

	space := geometry.NewSpace(geometry.Size{}, max)
	size := w.layoutWidget(win.layers[0].Widget, space, win.scale)
	win.layers[0].Size = size

	if fit {
		win.size = size
	}

	// overlay layers size to content, topmost first
	for i := len(win.layers) - 1; i >= 1; i-- {
		layer := &win.layers[i]
		layer.Size = w.layoutWidget(layer.Widget, geometry.Unbounded(), win.scale)
	}

	return size, fit
}

// layoutWidget measures a widget within space. Layout is memoized: a
// clean widget handed the same space it saw last time keeps its size
// without being visited.
func (w *World) layoutWidget(id ID, space geometry.Space, scale float32) geometry.Size {
	e, ok := w.arena.acquire("layout", id)
	if !ok {
		return space.Min
	}
	defer w.arena.release(e)

	state := &e.state

	if state.isStashed {
		state.size = space.Min
		return space.Min
	}

	if !state.needsLayout && state.hasPrevSpace && state.prevSpace == space {
		return state.size
	}

	// clear before visiting so a layout requested from within sticks
	state.needsLayout = false

	cx := LayoutContext{Context: w.newContext(id, state), scale: scale}
	size := e.widget.Layout(&cx, space)

	if !state.subpixel && w.settings.Render.PixelAlign {
		size = size.PixelCeil(scale)

		// ceiling can push past the max; step back one pixel
		if size.Width > space.Max.Width {
			size.Width -= 1 / scale
		}
		if size.Height > space.Max.Height {
			size.Height -= 1 / scale
		}
	}

	if errors.DebugChecks {
		if !size.IsFinite() {
			w.reportLayout(id, state, fmt.Errorf("size %v is not finite", size))
		} else if !space.Contains(size) {
			w.reportLayout(id, state, fmt.Errorf("size %v does not fit space %v", size, space))
		}
	}

	if state.size != size {
		state.needsDraw = true
		w.requestRedraw(state.window)
	}

	state.size = size
	state.prevSpace = space
	state.hasPrevSpace = true

	w.refreshOne(state)

	return size
}

// placeChild sets a child's transform relative to parent, snapping
// the translation to pixel boundaries unless the child opted into
// subpixel placement.
func (w *World) placeChild(parent *State, child ID, transform geometry.Affine, scale float32) {
	state := w.arena.stateOf(child)
	if state == nil {
		return
	}
	if state.parent != parent.id {
		errors.DebugPanic("PlaceChild: %v is not a child of %v", child, parent.id)
		return
	}

	if !state.subpixel && w.settings.Render.PixelAlign {
		transform.Offset = transform.Offset.PixelRound(scale)
	}

	if state.transform != transform {
		state.transform = transform
		state.needsCompose = true
		parent.needsDraw = true
		w.requestRedraw(state.window)
	}
}

// refreshOne recomputes a single widget's aggregate flags from its
// children.
func (w *World) refreshOne(state *State) {
	state.reset()
	for _, child := range state.children {
		if childState := w.arena.stateOf(child); childState != nil {
			state.merge(childState)
		}
	}
}

func (w *World) reportLayout(id ID, state *State, err error) {
	errors.Report(&errors.LoomError{
		Op:   fmt.Sprintf("layout %s %v", state.typeName, id),
		Kind: errors.KindLayout,
		Err:  err,
	})
}
