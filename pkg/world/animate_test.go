package world

import (
	"testing"
	"time"

	"github.com/go-loom/loom/pkg/geometry"
)

func TestAnimateTicksOnlyRequestedWidgets(t *testing.T) {
	w, signals := newTestWorld()

	var ticks []time.Duration
	animated := &testWidget{size: geometry.Sz(50, 50)}
	animated.onAnimate = func(cx *UpdateContext, dt time.Duration) {
		ticks = append(ticks, dt)
	}
	idle := &testWidget{size: geometry.Sz(50, 50)}
	idle.onAnimate = func(cx *UpdateContext, dt time.Duration) {
		t.Fatalf("widget without an animate request was ticked")
	}

	root := &testWidget{
		size:    geometry.Sz(200, 200),
		offsets: []geometry.Offset{geometry.Off(0, 0), geometry.Off(100, 0)},
	}
	rootID := w.Insert(root)
	animatedID := w.Insert(animated)
	idleID := w.Insert(idle)
	w.AddChild(rootID, animatedID)
	w.AddChild(rootID, idleID)

	win := w.CreateWindow(rootID)
	frame(w, win.ID())
	*signals = (*signals)[:0]

	With(w, TypedID[*testWidget]{ID: animatedID}, func(cx *UpdateContext, widget *testWidget) {
		cx.RequestAnimate()
	})

	animates := 0
	for _, s := range *signals {
		if _, ok := s.(SignalAnimate); ok {
			animates++
		}
	}
	if animates != 1 {
		t.Fatalf("got %d animate signals, want 1", animates)
	}

	w.Animate(win.ID(), 16*time.Millisecond)
	if len(ticks) != 1 || ticks[0] != 16*time.Millisecond {
		t.Fatalf("ticks = %v, want one 16ms tick", ticks)
	}

	// the request does not persist across ticks
	w.Animate(win.ID(), 16*time.Millisecond)
	if len(ticks) != 1 {
		t.Fatalf("widget ticked without a fresh request")
	}
}

func TestAnimateRerequestGetsFreshSignal(t *testing.T) {
	w, signals := newTestWorld()

	widget := &testWidget{size: geometry.Sz(50, 50)}
	widget.onAnimate = func(cx *UpdateContext, dt time.Duration) {
		cx.RequestAnimate()
	}

	id := w.Insert(widget)
	win := w.CreateWindow(id)
	frame(w, win.ID())
	*signals = (*signals)[:0]

	With(w, TypedID[*testWidget]{ID: id}, func(cx *UpdateContext, widget *testWidget) {
		cx.RequestAnimate()
	})

	count := func() int {
		n := 0
		for _, s := range *signals {
			if _, ok := s.(SignalAnimate); ok {
				n++
			}
		}
		return n
	}

	if count() != 1 {
		t.Fatalf("got %d animate signals after the request, want 1", count())
	}

	// the re-request from within the tick emits again
	w.Animate(win.ID(), 16*time.Millisecond)
	if count() != 2 {
		t.Fatalf("got %d animate signals after the tick, want 2", count())
	}
}
