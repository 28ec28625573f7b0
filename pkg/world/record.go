package world

import (
	"github.com/chewxy/math32"

	"github.com/go-loom/loom/pkg/canvas"
)

// recordWindow walks each layer caching recordings of subtrees whose
// estimated draw cost crossed the threshold, then advances the cache
// one frame.
func (w *World) recordWindow(win *Window, c canvas.Canvas) {
	for i := range win.layers {
		w.recordWidget(win.layers[i].Widget, c, win.scale)
	}

	w.recorder.Frame(w.arena.contains)
}

func (w *World) recordWidget(id ID, c canvas.Canvas, scale float32) {
	// an already-recorded subtree replays as a unit
	if w.recorder.Contains(id) {
		return
	}

	e, ok := w.arena.acquire("record", id)
	if !ok {
		return
	}
	defer w.arena.release(e)

	state := &e.state

	area := state.size.Area()
	cost := math32.Sqrt(area*scale*scale) +
		math32.Min(float32(state.stableDraws)/8, 1)
	memory := uint64(area * scale * scale * 4)

	if cost >= w.settings.Record.CostThreshold &&
		state.stableDraws >= 3 &&
		area > 256 &&
		w.recorder.MemoryUsage()+memory < w.settings.Record.MaxMemoryUsage {
		recording := c.Record(state.size, scale, func(c canvas.Canvas) {
			w.drawWidgetClipped(e, c, scale)
		})
		if recording != nil {
			w.recorder.Insert(id, cost, recording)
		}
		return
	}

	w.recorder.Remove(id)

	for _, child := range state.children {
		w.recordWidget(child, c, scale)
	}
}
