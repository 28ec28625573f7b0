package world

import "github.com/go-loom/loom/pkg/canvas"

// drawWindow draws every layer, base first.
func (w *World) drawWindow(win *Window, c canvas.Canvas) {
	for i := range win.layers {
		w.drawWidget(win.layers[i].Widget, c, win.scale)
	}
}

// drawWidget draws a widget under its local transform, replaying a
// cached recording when one is marked. DrawOver output is drawn last,
// outside the widget's clip.
func (w *World) drawWidget(id ID, c canvas.Canvas, scale float32) {
	e, ok := w.arena.acquire("draw", id)
	if !ok {
		return
	}
	defer w.arena.release(e)

	state := &e.state

	if state.isStashed {
		return
	}

	state.stableDraws++

	if state.needsDraw {
		state.stableDraws = 0
		w.recorder.Remove(id)
	}
	state.needsDraw = false

	if recording := w.recorder.GetMarked(id); recording != nil {
		c.Transform(state.transform, func(c canvas.Canvas) {
			c.DrawRecording(recording)
		})
	} else {
		c.Transform(state.transform, func(c canvas.Canvas) {
			w.drawWidgetClipped(e, c, scale)
		})
	}

	c.Transform(state.transform, func(c canvas.Canvas) {
		cx := DrawContext{Context: w.newContext(id, state), scale: scale}
		e.widget.DrawOver(&cx, c)
	})
}

// drawWidgetClipped draws the widget's own output and its children,
// clipped to the widget's clip shape if it has one. The caller has
// already applied the local transform and holds the borrow.
func (w *World) drawWidgetClipped(e *entry, c canvas.Canvas, scale float32) {
	if clip := e.state.clip; clip != nil {
		c.Clip(*clip, func(c canvas.Canvas) {
			w.drawWidgetRaw(e, c, scale)
		})
	} else {
		w.drawWidgetRaw(e, c, scale)
	}
}

func (w *World) drawWidgetRaw(e *entry, c canvas.Canvas, scale float32) {
	cx := DrawContext{Context: w.newContext(e.state.id, &e.state), scale: scale}
	e.widget.Draw(&cx, c)

	for _, child := range e.state.children {
		w.drawWidget(child, c, scale)
	}
}
