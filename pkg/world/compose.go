package world

import (
	"time"

	"github.com/go-loom/loom/pkg/geometry"
)

// composeWindow recomputes global transforms for every layer.
func (w *World) composeWindow(win *Window) {
	for i := range win.layers {
		layer := &win.layers[i]
		transform := geometry.Translate(geometry.Off(layer.Position.X, layer.Position.Y))
		w.composeWidget(layer.Widget, transform, win.scale)
	}
}

// composeWidget updates a widget's global transform and recurses. A
// clean subtree whose global transform is unchanged is skipped whole.
func (w *World) composeWidget(id ID, parent geometry.Affine, scale float32) {
	e, ok := w.arena.acquire("compose", id)
	if !ok {
		return
	}

	state := &e.state

	if state.isStashed {
		w.arena.release(e)
		return
	}

	global := parent.Mul(state.transform)

	if !state.needsCompose && state.globalTransform == global {
		w.arena.release(e)
		return
	}

	state.needsCompose = false
	state.globalTransform = global

	cx := ComposeContext{Context: w.newContext(id, state), scale: scale}
	e.widget.Compose(&cx)

	children := state.children
	w.arena.release(e)

	for _, child := range children {
		w.composeWidget(child, global, scale)
	}

	w.refreshOne(state)
}

// animateWindow ticks animations on every layer that asked for them.
func (w *World) animateWindow(win *Window, dt time.Duration) {
	for i := range win.layers {
		w.animateWidget(win.layers[i].Widget, dt)
	}
}

func (w *World) animateWidget(id ID, dt time.Duration) {
	e, ok := w.arena.acquire("animate", id)
	if !ok {
		return
	}

	state := &e.state

	if !state.needsAnimate || state.isStashed {
		w.arena.release(e)
		return
	}

	state.needsAnimate = false

	cx := UpdateContext{Context: w.newContext(id, state)}
	e.widget.Animate(&cx, dt)

	children := state.children
	w.arena.release(e)

	for _, child := range children {
		w.animateWidget(child, dt)
	}

	w.refreshOne(state)
}
