package world

import (
	"testing"

	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// pointerTree builds root > middle > leaf, each accepting pointer
// input, with the leaf covering (20,20)-(60,60) in window coordinates.
func pointerTree(t *testing.T) (*World, *Window, [3]*testWidget, [3]ID) {
	t.Helper()

	w, _ := newTestWorld()

	leaf := &testWidget{
		size:   geometry.Sz(40, 40),
		traits: Traits{AcceptsPointer: true},
	}
	middle := &testWidget{
		size:    geometry.Sz(100, 100),
		traits:  Traits{AcceptsPointer: true},
		offsets: []geometry.Offset{geometry.Off(10, 10)},
	}
	root := &testWidget{
		size:    geometry.Sz(200, 200),
		traits:  Traits{AcceptsPointer: true},
		offsets: []geometry.Offset{geometry.Off(10, 10)},
	}

	rootID := w.Insert(root)
	middleID := w.Insert(middle)
	leafID := w.Insert(leaf)
	w.AddChild(rootID, middleID)
	w.AddChild(middleID, leafID)

	win := w.CreateWindow(rootID)
	frame(w, win.ID())
	w.PointerEntered(win.ID(), 1)

	return w, win, [3]*testWidget{root, middle, leaf}, [3]ID{rootID, middleID, leafID}
}

func TestHitTestFindsDeepestWidget(t *testing.T) {
	w, win, _, ids := pointerTree(t)

	if got := w.WidgetAt(win.ID(), geometry.Pt(30, 30)); got != ids[2] {
		t.Fatalf("WidgetAt(30,30) = %v, want leaf %v", got, ids[2])
	}
	if got := w.WidgetAt(win.ID(), geometry.Pt(15, 15)); got != ids[1] {
		t.Fatalf("WidgetAt(15,15) = %v, want middle %v", got, ids[1])
	}
	if got := w.WidgetAt(win.ID(), geometry.Pt(150, 150)); got != ids[0] {
		t.Fatalf("WidgetAt(150,150) = %v, want root %v", got, ids[0])
	}
	if got := w.WidgetAt(win.ID(), geometry.Pt(-5, -5)); !got.IsNil() {
		t.Fatalf("WidgetAt outside window = %v, want nil", got)
	}
}

func TestHitTestPrefersTopmostLayer(t *testing.T) {
	w, win, _, ids := pointerTree(t)

	overlay := w.Insert(&testWidget{
		size:   geometry.Sz(30, 30),
		traits: Traits{AcceptsPointer: true},
	})
	w.AddLayer(win.ID(), geometry.Pt(25, 25), overlay)
	frame(w, win.ID())

	if got := w.WidgetAt(win.ID(), geometry.Pt(30, 30)); got != overlay {
		t.Fatalf("WidgetAt under overlay = %v, want %v", got, overlay)
	}

	// outside the overlay the base layer wins again
	if got := w.WidgetAt(win.ID(), geometry.Pt(100, 100)); got != ids[1] {
		t.Fatalf("WidgetAt beside overlay = %v, want %v", got, ids[1])
	}
}

func TestHoverTracksPointer(t *testing.T) {
	w, win, widgets, ids := pointerTree(t)

	w.PointerMoved(win.ID(), 1, geometry.Pt(30, 30))

	if u, ok := widgets[2].lastUpdate().(UpdateHovered); !ok || !u.Hovered {
		t.Fatalf("leaf did not observe hover, last update = %v", widgets[2].lastUpdate())
	}
	if !w.arena.stateOf(ids[0]).hasHovered {
		t.Fatalf("hover flag did not propagate to the root")
	}

	w.PointerMoved(win.ID(), 1, geometry.Pt(150, 150))
	if u, ok := widgets[2].lastUpdate().(UpdateHovered); !ok || u.Hovered {
		t.Fatalf("leaf kept hover after pointer left")
	}
}

func TestPointerEventsBubbleUntilHandled(t *testing.T) {
	w, win, widgets, _ := pointerTree(t)

	var order []string
	widgets[2].onPointer = func(cx *EventContext, ev event.PointerEvent) event.PointerPropagate {
		if _, ok := ev.(event.PointerDown); ok {
			order = append(order, "leaf")
		}
		return event.PointerBubble
	}
	widgets[1].onPointer = func(cx *EventContext, ev event.PointerEvent) event.PointerPropagate {
		if _, ok := ev.(event.PointerDown); ok {
			order = append(order, "middle")
			return event.PointerHandled
		}
		return event.PointerBubble
	}
	widgets[0].onPointer = func(cx *EventContext, ev event.PointerEvent) event.PointerPropagate {
		if _, ok := ev.(event.PointerDown); ok {
			order = append(order, "root")
		}
		return event.PointerBubble
	}

	w.PointerMoved(win.ID(), 1, geometry.Pt(30, 30))
	if !w.PointerPressed(win.ID(), 1, event.PointerButtonPrimary, true) {
		t.Fatalf("handled press reported as unhandled")
	}

	if len(order) != 2 || order[0] != "leaf" || order[1] != "middle" {
		t.Fatalf("bubble order = %v, want [leaf middle]", order)
	}
}

func TestPointerCaptureRoutesUntilRelease(t *testing.T) {
	w, win, widgets, ids := pointerTree(t)

	var moves int
	widgets[2].onPointer = func(cx *EventContext, ev event.PointerEvent) event.PointerPropagate {
		switch ev.(type) {
		case event.PointerDown:
			return event.PointerCapture
		case event.PointerMove:
			moves++
			return event.PointerHandled
		}
		return event.PointerBubble
	}

	w.PointerMoved(win.ID(), 1, geometry.Pt(30, 30))
	w.PointerPressed(win.ID(), 1, event.PointerButtonPrimary, true)

	if !w.arena.stateOf(ids[2]).isActive {
		t.Fatalf("capturing widget is not active")
	}

	// moves far outside the widget still reach it
	w.PointerMoved(win.ID(), 1, geometry.Pt(190, 190))
	if moves != 1 {
		t.Fatalf("captured move count = %d, want 1", moves)
	}

	w.PointerPressed(win.ID(), 1, event.PointerButtonPrimary, false)
	if w.arena.stateOf(ids[2]).isActive {
		t.Fatalf("widget still active after release")
	}

	// subsequent moves resolve by position again
	w.PointerMoved(win.ID(), 1, geometry.Pt(190, 190))
	if moves != 1 {
		t.Fatalf("released widget still receives moves")
	}
}

func TestUnhandledPressOutsideFocusedClearsFocus(t *testing.T) {
	w, win, widgets, ids := pointerTree(t)

	widgets[2].traits.AcceptsFocus = true
	w.Focus(win.ID(), ids[2])

	// press inside keeps focus
	w.PointerMoved(win.ID(), 1, geometry.Pt(30, 30))
	w.PointerPressed(win.ID(), 1, event.PointerButtonPrimary, true)
	if win.Focused() != ids[2] {
		t.Fatalf("press inside the focused widget cleared focus")
	}
	w.PointerPressed(win.ID(), 1, event.PointerButtonPrimary, false)

	// unhandled press elsewhere clears it
	w.PointerMoved(win.ID(), 1, geometry.Pt(150, 150))
	w.PointerPressed(win.ID(), 1, event.PointerButtonPrimary, true)
	if !win.Focused().IsNil() {
		t.Fatalf("unhandled press outside the focused widget kept focus")
	}
}

func TestScrollDispatchesToHovered(t *testing.T) {
	w, win, widgets, _ := pointerTree(t)

	var got event.ScrollDelta
	widgets[2].onPointer = func(cx *EventContext, ev event.PointerEvent) event.PointerPropagate {
		if s, ok := ev.(event.PointerScroll); ok {
			got = s.Delta
			return event.PointerHandled
		}
		return event.PointerBubble
	}

	w.PointerMoved(win.ID(), 1, geometry.Pt(30, 30))
	handled := w.PointerScrolled(win.ID(), 1, event.ScrollDelta{Lines: geometry.Off(0, -3)})

	if !handled {
		t.Fatalf("handled scroll reported as unhandled")
	}
	if got.Lines != geometry.Off(0, -3) {
		t.Fatalf("scroll delta = %v", got)
	}
}

func TestCursorFollowsHoveredWidget(t *testing.T) {
	w, win, _, ids := pointerTree(t)

	With(w, TypedID[*testWidget]{ID: ids[2]}, func(cx *UpdateContext, widget *testWidget) {
		cx.SetCursor(CursorPointer)
	})

	w.PointerMoved(win.ID(), 1, geometry.Pt(30, 30))
	if win.Cursor() != CursorPointer {
		t.Fatalf("cursor = %v, want pointer", win.Cursor())
	}

	w.PointerMoved(win.ID(), 1, geometry.Pt(150, 150))
	if win.Cursor() != CursorDefault {
		t.Fatalf("cursor = %v, want default after leaving", win.Cursor())
	}
}

func TestPointerLeftUnhovers(t *testing.T) {
	w, win, widgets, _ := pointerTree(t)

	w.PointerMoved(win.ID(), 1, geometry.Pt(30, 30))
	w.PointerLeft(win.ID(), 1)

	if u, ok := widgets[2].lastUpdate().(UpdateHovered); !ok || u.Hovered {
		t.Fatalf("widget kept hover after the pointer left the window")
	}
}
