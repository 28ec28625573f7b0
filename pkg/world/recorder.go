package world

import (
	"fmt"
	"sort"

	"github.com/go-loom/loom/pkg/canvas"
)

// Recorder caches replayable draw recordings for expensive, stable
// widget subtrees. Entries are evicted when their widget redraws,
// goes unused too long, or the memory budget runs low.
type Recorder struct {
	config RecordConfig

	memoryUsage uint64
	frameCount  uint64
	entries     map[ID]*recorderEntry
}

type recorderEntry struct {
	recording     *canvas.Recording
	lastFrameUsed uint64
	cost          float32
}

// NewRecorder creates a recorder with the given cache limits.
func NewRecorder(config RecordConfig) *Recorder {
	return &Recorder{
		config:  config,
		entries: make(map[ID]*recorderEntry),
	}
}

// MemoryUsage returns the estimated bytes held by cached recordings.
func (r *Recorder) MemoryUsage() uint64 {
	return r.memoryUsage
}

// Insert caches a recording for widget at the given draw cost.
func (r *Recorder) Insert(widget ID, cost float32, recording *canvas.Recording) {
	if prev, ok := r.entries[widget]; ok {
		r.memoryUsage -= prev.recording.Memory
	}
	r.memoryUsage += recording.Memory
	r.entries[widget] = &recorderEntry{
		recording:     recording,
		lastFrameUsed: r.frameCount,
		cost:          cost,
	}
}

// GetMarked returns the widget's cached recording and marks it used
// this frame, or nil.
func (r *Recorder) GetMarked(widget ID) *canvas.Recording {
	entry, ok := r.entries[widget]
	if !ok {
		return nil
	}
	entry.lastFrameUsed = r.frameCount
	return entry.recording
}

// Remove evicts the widget's recording, if any.
func (r *Recorder) Remove(widget ID) {
	if entry, ok := r.entries[widget]; ok {
		r.memoryUsage -= entry.recording.Memory
		delete(r.entries, widget)
	}
}

// Contains reports whether the widget has a cached recording.
func (r *Recorder) Contains(widget ID) bool {
	_, ok := r.entries[widget]
	return ok
}

// Frame advances the cache one frame: recordings of removed widgets
// are dropped, stale recordings expire, and the cache is culled back
// under three quarters of the memory budget.
func (r *Recorder) Frame(alive func(ID) bool) {
	for widget := range r.entries {
		if !alive(widget) {
			r.Remove(widget)
		}
	}

	r.frameCount++

	for widget, entry := range r.entries {
		if r.frameCount-entry.lastFrameUsed >= r.config.MaxFramesUnused {
			r.memoryUsage -= entry.recording.Memory
			delete(r.entries, widget)
		}
	}

	r.cullMemory()
}

// cullMemory evicts the entries with the worst memory-per-cost ratio
// until usage drops back under 75% of the budget.
func (r *Recorder) cullMemory() {
	threshold := r.config.MaxMemoryUsage * 3 / 4
	if r.memoryUsage <= threshold {
		return
	}

	type weighted struct {
		widget ID
		weight float32
	}

	widgets := make([]weighted, 0, len(r.entries))
	for widget, entry := range r.entries {
		widgets = append(widgets, weighted{
			widget: widget,
			weight: float32(entry.recording.Memory) / entry.cost,
		})
	}

	sort.Slice(widgets, func(i, j int) bool {
		return widgets[i].weight > widgets[j].weight
	})

	for _, candidate := range widgets {
		if r.memoryUsage <= threshold {
			break
		}
		r.Remove(candidate.widget)
	}
}

// MemorySize formats a byte count for log output.
type MemorySize uint64

func (m MemorySize) String() string {
	switch size := uint64(m); {
	case size > 1024*1024*1024:
		return fmt.Sprintf("%.1fGiB", float32(size)/(1024*1024*1024))
	case size > 1024*1024:
		return fmt.Sprintf("%.1fMiB", float32(size)/(1024*1024))
	case size > 1024:
		return fmt.Sprintf("%.1fKiB", float32(size)/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}
