package world

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-loom/loom/pkg/canvas"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// Traits declares which input a widget type participates in. Widgets
// report their traits once at insertion; the values are cached on the
// widget's State.
type Traits struct {
	// AcceptsPointer makes the widget a hit-testing target.
	AcceptsPointer bool

	// AcceptsFocus includes the widget in Tab traversal.
	AcceptsFocus bool

	// AcceptsText routes paste and IME events to the widget while
	// focused, and has focus transfer drive the platform IME.
	AcceptsText bool
}

// Widget is the capability set every tree node implements. Embed Base
// to inherit no-op defaults and override only what the widget needs.
//
// All methods are invoked by the engine with the widget checked out of
// the arena; re-entrant access to the same widget through the context
// resolves to absent.
type Widget interface {
	// Layout measures the widget against the given constraints and
	// returns its size. Layout is memoized: it is skipped when the
	// widget is clean and the constraints match the previous pass.
	Layout(cx *LayoutContext, space geometry.Space) geometry.Size

	// Compose runs when the widget's global transform is recomputed.
	// Widgets reposition children here independent of layout.
	Compose(cx *ComposeContext)

	// Draw renders the widget, inside its clip if one is set.
	Draw(cx *DrawContext, c canvas.Canvas)

	// DrawOver renders after all descendants, outside the clip.
	DrawOver(cx *DrawContext, c canvas.Canvas)

	// Update delivers state changes: hover/active/focus flips, stash
	// and disable, child list changes, window notifications, and
	// scroll-into-view offers.
	Update(cx *UpdateContext, update Update)

	// Animate advances animated state by dt. Only called while the
	// widget has animation requested.
	Animate(cx *UpdateContext, dt time.Duration)

	OnPointerEvent(cx *EventContext, ev event.PointerEvent) event.PointerPropagate
	OnTouchEvent(cx *EventContext, ev event.TouchEvent) event.TouchPropagate
	OnKeyEvent(cx *EventContext, ev event.KeyEvent) event.Propagate
	OnTextEvent(cx *EventContext, ev event.TextEvent) event.Propagate

	Traits() Traits
}

// HitTester lets a widget override the default hit-testing walk, for
// example to account for scroll offsets or non-rectangular shapes.
type HitTester interface {
	// WidgetAt returns the deepest widget at point, in window
	// coordinates, or a nil ID when the point misses the subtree.
	WidgetAt(cx *Context, point geometry.Point) ID
}

// Base provides no-op defaults for the Widget interface. Its Layout
// returns the minimum of the given constraints.
type Base struct{}

func (Base) Layout(cx *LayoutContext, space geometry.Space) geometry.Size {
	return space.Min
}

func (Base) Compose(cx *ComposeContext)               {}
func (Base) Draw(cx *DrawContext, c canvas.Canvas)     {}
func (Base) DrawOver(cx *DrawContext, c canvas.Canvas) {}
func (Base) Update(cx *UpdateContext, update Update)   {}
func (Base) Animate(cx *UpdateContext, dt time.Duration) {}

func (Base) OnPointerEvent(cx *EventContext, ev event.PointerEvent) event.PointerPropagate {
	return event.PointerBubble
}

func (Base) OnTouchEvent(cx *EventContext, ev event.TouchEvent) event.TouchPropagate {
	return event.TouchBubble
}

func (Base) OnKeyEvent(cx *EventContext, ev event.KeyEvent) event.Propagate {
	return event.PropagateBubble
}

func (Base) OnTextEvent(cx *EventContext, ev event.TextEvent) event.Propagate {
	return event.PropagateBubble
}

func (Base) Traits() Traits { return Traits{} }

// widgetTypeName returns the widget's short type name for diagnostics.
func widgetTypeName(w Widget) string {
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.String()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
