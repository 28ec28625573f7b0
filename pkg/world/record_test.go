package world

import (
	"testing"

	"github.com/go-loom/loom/pkg/canvas"
	"github.com/go-loom/loom/pkg/geometry"
)

func testID(slot uint32) ID {
	return ID{index: slot + 1}
}

func alwaysAlive(ID) bool { return true }

func TestRecorderInsertAndMark(t *testing.T) {
	r := NewRecorder(RecordConfig{CostThreshold: 1, MaxFramesUnused: 30, MaxMemoryUsage: 1 << 20})

	id := testID(0)
	rec := canvas.NewRecording(geometry.Sz(10, 10), 1, nil)

	r.Insert(id, 100, rec)
	if !r.Contains(id) {
		t.Fatalf("inserted recording missing")
	}
	if r.MemoryUsage() != rec.Memory {
		t.Fatalf("memory usage = %d, want %d", r.MemoryUsage(), rec.Memory)
	}
	if got := r.GetMarked(id); got != rec {
		t.Fatalf("GetMarked returned %v", got)
	}

	// replacing a recording swaps the accounting, not adds to it
	bigger := canvas.NewRecording(geometry.Sz(20, 20), 1, nil)
	r.Insert(id, 100, bigger)
	if r.MemoryUsage() != bigger.Memory {
		t.Fatalf("memory usage after replace = %d, want %d", r.MemoryUsage(), bigger.Memory)
	}

	r.Remove(id)
	if r.Contains(id) || r.MemoryUsage() != 0 {
		t.Fatalf("remove left residue: usage = %d", r.MemoryUsage())
	}
}

func TestRecorderExpiresUnusedEntries(t *testing.T) {
	r := NewRecorder(RecordConfig{CostThreshold: 1, MaxFramesUnused: 3, MaxMemoryUsage: 1 << 20})

	stale := testID(0)
	fresh := testID(1)
	r.Insert(stale, 100, canvas.NewRecording(geometry.Sz(10, 10), 1, nil))
	r.Insert(fresh, 100, canvas.NewRecording(geometry.Sz(10, 10), 1, nil))

	for i := 0; i < 3; i++ {
		r.GetMarked(fresh)
		r.Frame(alwaysAlive)
	}

	if r.Contains(stale) {
		t.Fatalf("unused recording survived expiry")
	}
	if !r.Contains(fresh) {
		t.Fatalf("recently used recording was expired")
	}
}

func TestRecorderDropsDeadWidgets(t *testing.T) {
	r := NewRecorder(RecordConfig{CostThreshold: 1, MaxFramesUnused: 30, MaxMemoryUsage: 1 << 20})

	dead := testID(0)
	r.Insert(dead, 100, canvas.NewRecording(geometry.Sz(10, 10), 1, nil))

	r.Frame(func(ID) bool { return false })

	if r.Contains(dead) || r.MemoryUsage() != 0 {
		t.Fatalf("recording for a removed widget survived")
	}
}

func TestRecorderCullsToThreeQuartersOfBudget(t *testing.T) {
	// each 100x100 recording is 40000 bytes
	rec := func() *canvas.Recording {
		return canvas.NewRecording(geometry.Sz(100, 100), 1, nil)
	}
	budget := uint64(100000) // threshold 75000, fits one entry

	r := NewRecorder(RecordConfig{CostThreshold: 1, MaxFramesUnused: 30, MaxMemoryUsage: budget})

	cheap := testID(0)     // weight 40000/10 = 4000
	expensive := testID(1) // weight 40000/400 = 100

	r.Insert(cheap, 10, rec())
	r.Insert(expensive, 400, rec())

	r.Frame(alwaysAlive)

	if r.MemoryUsage() > budget*3/4 {
		t.Fatalf("usage %d above threshold %d after cull", r.MemoryUsage(), budget*3/4)
	}
	if r.Contains(cheap) {
		t.Fatalf("cull kept the entry with the worst memory-per-cost ratio")
	}
	if !r.Contains(expensive) {
		t.Fatalf("cull evicted the costlier-to-redraw entry first")
	}
}

func TestRecordPassCachesStableWidget(t *testing.T) {
	w, _ := newTestWorld()

	root := &testWidget{size: geometry.Sz(200, 200)}
	rootID := w.Insert(root)
	win := w.CreateWindow(rootID)

	// the first frame resets the stability counter; three more to
	// reach the recording gate
	for i := 0; i < 4; i++ {
		frame(w, win.ID())
	}

	if !w.Recorder().Contains(rootID) {
		t.Fatalf("stable widget was not recorded")
	}

	drawsWhenRecorded := root.draws
	frame(w, win.ID())
	if root.draws != drawsWhenRecorded {
		t.Fatalf("recorded widget was drawn instead of replayed")
	}
}

func TestRecordEvictedOnRedrawRequest(t *testing.T) {
	w, _ := newTestWorld()

	root := &testWidget{size: geometry.Sz(200, 200)}
	rootID := w.Insert(root)
	win := w.CreateWindow(rootID)

	for i := 0; i < 4; i++ {
		frame(w, win.ID())
	}
	if !w.Recorder().Contains(rootID) {
		t.Fatalf("stable widget was not recorded")
	}

	With(w, TypedID[*testWidget]{ID: rootID}, func(cx *UpdateContext, widget *testWidget) {
		cx.RequestDraw()
	})
	drawsBefore := root.draws
	frame(w, win.ID())

	if root.draws == drawsBefore {
		t.Fatalf("dirty widget replayed a stale recording")
	}
	if w.Recorder().Contains(rootID) {
		t.Fatalf("stale recording survived the redraw")
	}
}

func TestSmallWidgetsAreNotRecorded(t *testing.T) {
	w, _ := newTestWorld()

	// 16x16 = 256 logical pixels, at the area floor
	root := &testWidget{size: geometry.Sz(16, 16)}
	rootID := w.Insert(root)
	win := w.CreateWindow(rootID)
	w.SetWindowSizing(win.ID(), SizingFitContent{})

	for i := 0; i < 6; i++ {
		frame(w, win.ID())
	}

	if w.Recorder().Contains(rootID) {
		t.Fatalf("widget at the area floor was recorded")
	}
}
