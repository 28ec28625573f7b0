package world

import (
	"testing"
	"time"

	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// touchRig is a single full-window touch target with a recorded
// gesture stream and a controllable clock.
type touchRig struct {
	w        *World
	win      *Window
	widget   *testWidget
	id       ID
	clock    *fakeClock
	gestures []event.TouchGesture
}

func newTouchRig(t *testing.T) *touchRig {
	t.Helper()

	rig := &touchRig{
		clock: &fakeClock{now: time.Unix(1000, 0)},
	}
	prev := SetClock(rig.clock)
	t.Cleanup(func() { SetClock(prev) })

	rig.w, _ = newTestWorld()

	rig.widget = &testWidget{
		size:   geometry.Sz(800, 600),
		traits: Traits{AcceptsPointer: true},
	}
	rig.widget.onTouch = func(cx *EventContext, ev event.TouchEvent) event.TouchPropagate {
		if g, ok := ev.(event.TouchGesture); ok {
			rig.gestures = append(rig.gestures, g)
		}
		return event.TouchBubble
	}

	rig.id = rig.w.Insert(rig.widget)
	rig.win = rig.w.CreateWindow(rig.id)
	frame(rig.w, rig.win.ID())

	return rig
}

func (r *touchRig) gestureNames() []string {
	var names []string
	for _, g := range r.gestures {
		switch g.Gesture.(type) {
		case event.Tap:
			names = append(names, "tap")
		case event.DoubleTap:
			names = append(names, "double")
		case event.LongTap:
			names = append(names, "long")
		case event.Pan:
			names = append(names, "pan")
		}
	}
	return names
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTapGesture(t *testing.T) {
	rig := newTouchRig(t)

	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(100, 100))
	rig.clock.advance(50 * time.Millisecond)
	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(103, 102))

	if got := rig.gestureNames(); !sameStrings(got, []string{"tap"}) {
		t.Fatalf("gestures = %v, want [tap]", got)
	}
}

func TestDoubleTapGesture(t *testing.T) {
	rig := newTouchRig(t)

	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(100, 100))
	rig.clock.advance(50 * time.Millisecond)
	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(100, 100))

	rig.clock.advance(100 * time.Millisecond)
	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(105, 100))
	rig.clock.advance(50 * time.Millisecond)
	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(105, 100))

	if got := rig.gestureNames(); !sameStrings(got, []string{"tap", "tap", "double"}) {
		t.Fatalf("gestures = %v, want [tap tap double]", got)
	}
}

func TestSlowSecondTapDoesNotDouble(t *testing.T) {
	rig := newTouchRig(t)

	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(100, 100))
	rig.clock.advance(50 * time.Millisecond)
	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(100, 100))

	// past the double-tap window
	rig.clock.advance(400 * time.Millisecond)
	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(100, 100))
	rig.clock.advance(50 * time.Millisecond)
	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(100, 100))

	if got := rig.gestureNames(); !sameStrings(got, []string{"tap", "tap"}) {
		t.Fatalf("gestures = %v, want [tap tap]", got)
	}
}

func TestLongTapGesture(t *testing.T) {
	rig := newTouchRig(t)

	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(100, 100))
	rig.clock.advance(600 * time.Millisecond)
	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(102, 101))

	if got := rig.gestureNames(); !sameStrings(got, []string{"long"}) {
		t.Fatalf("gestures = %v, want [long]", got)
	}
}

func TestHoldBetweenTapAndLongTapIsNoGesture(t *testing.T) {
	rig := newTouchRig(t)

	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(100, 100))
	rig.clock.advance(350 * time.Millisecond)
	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(100, 100))

	if got := rig.gestureNames(); len(got) != 0 {
		t.Fatalf("gestures = %v, want none", got)
	}
}

func TestPanStartsPastThreshold(t *testing.T) {
	rig := newTouchRig(t)

	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(100, 100))

	// within the pan distance: no gesture yet
	rig.w.TouchMoved(rig.win.ID(), 1, geometry.Pt(105, 100))
	if len(rig.gestures) != 0 {
		t.Fatalf("pan emitted before the threshold")
	}

	rig.w.TouchMoved(rig.win.ID(), 1, geometry.Pt(120, 100))
	rig.w.TouchMoved(rig.win.ID(), 1, geometry.Pt(121, 100))

	got := rig.gestureNames()
	if !sameStrings(got, []string{"pan", "pan"}) {
		t.Fatalf("gestures = %v, want [pan pan]", got)
	}

	pan := rig.gestures[1].Gesture.(event.Pan)
	if pan.Start != geometry.Pt(100, 100) {
		t.Fatalf("pan start = %v, want the touch origin", pan.Start)
	}
	if pan.Delta != geometry.Off(1, 0) {
		t.Fatalf("pan delta = %v, want (1, 0)", pan.Delta)
	}

	// a release after panning is not a tap
	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(121, 100))
	if got := rig.gestureNames(); !sameStrings(got, []string{"pan", "pan"}) {
		t.Fatalf("gestures after release = %v", got)
	}
}

func TestTouchCaptureFromDown(t *testing.T) {
	rig := newTouchRig(t)

	// a second widget layered above captures the sequence
	var moves int
	capturing := &testWidget{
		size:   geometry.Sz(50, 50),
		traits: Traits{AcceptsPointer: true},
	}
	capturing.onTouch = func(cx *EventContext, ev event.TouchEvent) event.TouchPropagate {
		switch ev.(type) {
		case event.TouchDown:
			return event.TouchCapture
		case event.TouchMove:
			moves++
			return event.TouchHandled
		}
		return event.TouchBubble
	}

	capID := rig.w.Insert(capturing)
	rig.w.AddLayer(rig.win.ID(), geometry.Pt(0, 0), capID)
	frame(rig.w, rig.win.ID())

	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(10, 10))
	if !rig.w.arena.stateOf(capID).isActive {
		t.Fatalf("capturing widget is not active")
	}

	// a move far outside still reaches the capturer, not the base layer
	rig.w.TouchMoved(rig.win.ID(), 1, geometry.Pt(400, 400))
	if moves != 1 {
		t.Fatalf("captured move count = %d, want 1", moves)
	}

	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(400, 400))
	if rig.w.arena.stateOf(capID).isActive {
		t.Fatalf("capturer still active after release")
	}
}

func TestTapOutsideFocusedClearsFocus(t *testing.T) {
	rig := newTouchRig(t)

	field := &testWidget{
		size:   geometry.Sz(50, 50),
		traits: Traits{AcceptsPointer: true, AcceptsFocus: true},
	}
	fieldID := rig.w.Insert(field)
	rig.w.AddLayer(rig.win.ID(), geometry.Pt(0, 0), fieldID)
	frame(rig.w, rig.win.ID())

	rig.w.Focus(rig.win.ID(), fieldID)

	rig.w.TouchDown(rig.win.ID(), 1, geometry.Pt(400, 400))
	rig.clock.advance(50 * time.Millisecond)
	rig.w.TouchUp(rig.win.ID(), 1, geometry.Pt(400, 400))

	if !rig.win.Focused().IsNil() {
		t.Fatalf("tap outside the focused widget kept focus")
	}
}
