package world

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-loom/loom/pkg/canvas"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// WindowID identifies a window for its lifetime.
type WindowID struct {
	data uint64
}

// IsNil reports whether the id refers to no window.
func (id WindowID) IsNil() bool { return id.data == 0 }

func (id WindowID) String() string { return fmt.Sprintf("w%x", id.data) }

// LayerID identifies a layer within a window.
type LayerID struct {
	data uint64
}

// IsNil reports whether the id refers to no layer.
func (id LayerID) IsNil() bool { return id.data == 0 }

func (id LayerID) String() string { return fmt.Sprintf("l%x", id.data) }

// CursorIcon names the pointer cursor a hovered widget requests.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorPointer
	CursorText
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorCrosshair
	CursorNotAllowed
	CursorResizeEW
	CursorResizeNS
)

// Sizing is a window's sizing policy.
type Sizing interface {
	isSizing()
}

// SizingFitContent sizes the window to its base layer's content.
type SizingFitContent struct{}

// SizingResizable lets the host resize the window within bounds.
type SizingResizable struct {
	Default geometry.Size
	Min     geometry.Size
	Max     geometry.Size
}

func (SizingFitContent) isSizing() {}
func (SizingResizable) isSizing()  {}

// Layer is an independently rooted widget subtree stacked within a
// window. The base (first) layer is laid out against the window's
// sizing policy; later layers lay out unconstrained and draw above it.
type Layer struct {
	ID       LayerID
	Widget   ID
	Size     geometry.Size
	Position geometry.Point
}

// Pointer tracks one active pointer device in a window.
type Pointer struct {
	ID       event.PointerID
	Position geometry.Point

	hovering ID
	capturer ID
}

// target returns the widget pointer events should go to: the capturer
// while captured, otherwise whatever is hovered.
func (p *Pointer) target() ID {
	if !p.capturer.IsNil() {
		return p.capturer
	}
	return p.hovering
}

// touchPhase is the per-touch gesture recognition state.
type touchPhase int

const (
	touchIdle touchPhase = iota
	touchTapped
	touchPanning
)

// Touch tracks one active touch sequence in a window.
type Touch struct {
	ID       event.TouchID
	Position geometry.Point
	Start    geometry.Point

	startTime time.Time
	phase     touchPhase
	tapPos    geometry.Point
	tapTime   time.Time
	capturer  ID
}

func (t *Touch) distance() float32 {
	return t.Start.Distance(t.Position)
}

func (t *Touch) duration() time.Duration {
	return Now().Sub(t.startTime)
}

// Window owns an ordered stack of layers plus the per-window input
// state: modifier keys, active pointers and touches, and the focused
// widget. Widgets are owned by the arena, not the window; removing a
// window's layers removes their subtrees, but a widget can outlive its
// window.
type Window struct {
	id     WindowID
	anchor WindowID
	layers []Layer

	modifiers event.Modifiers
	pointers  []*Pointer
	touches   []*Touch

	focused ID

	properties []any

	scale     float32
	size      geometry.Size
	insets    geometry.Padding
	visible   bool
	focusedWin bool
	decorated bool

	cursor CursorIcon
	title  string
	sizing Sizing
	color  canvas.Color

	// OnKey intercepts key events before dispatch. Returning true
	// consumes the event.
	OnKey func(ev event.KeyEvent) bool
}

// ID returns the window's identifier.
func (w *Window) ID() WindowID { return w.id }

// Anchor returns the parent window for transient popups, or a nil id.
func (w *Window) Anchor() WindowID { return w.anchor }

// SetAnchor marks the window as transient for parent.
func (w *Window) SetAnchor(parent WindowID) { w.anchor = parent }

// Scale returns the device scale factor.
func (w *Window) Scale() float32 { return w.scale }

// Size returns the window's current logical size.
func (w *Window) Size() geometry.Size { return w.size }

// Insets returns the safe-area padding: the parts of the window
// occupied by system bars, IMEs, or cutouts.
func (w *Window) Insets() geometry.Padding { return w.insets }

// Modifiers returns the window's current modifier-key state.
func (w *Window) Modifiers() event.Modifiers { return w.modifiers }

// Cursor returns the cursor the hovered widget requested.
func (w *Window) Cursor() CursorIcon { return w.cursor }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Sizing returns the window's sizing policy.
func (w *Window) Sizing() Sizing { return w.sizing }

// Focused returns the widget holding keyboard focus, or a nil ID.
func (w *Window) Focused() ID { return w.focused }

// IsFocused reports whether the window itself has focus.
func (w *Window) IsFocused() bool { return w.focusedWin }

// IsVisible reports whether the window is shown.
func (w *Window) IsVisible() bool { return w.visible }

// IsDecorated reports whether the window has host decorations.
func (w *Window) IsDecorated() bool { return w.decorated }

// Color returns the window's background color.
func (w *Window) Color() canvas.Color { return w.color }

// Layers returns the window's layer stack, base layer first.
func (w *Window) Layers() []Layer { return w.layers }

// BaseLayer returns the window's content layer.
func (w *Window) BaseLayer() *Layer {
	if len(w.layers) == 0 {
		return nil
	}
	return &w.layers[0]
}

func (w *Window) layer(id LayerID) *Layer {
	for i := range w.layers {
		if w.layers[i].ID == id {
			return &w.layers[i]
		}
	}
	return nil
}

func (w *Window) pointer(id event.PointerID) *Pointer {
	for _, p := range w.pointers {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (w *Window) touch(id event.TouchID) *Touch {
	for _, t := range w.touches {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// SetProperty attaches a host-defined value to the window, replacing
// any existing value of the same type.
func (w *Window) SetProperty(property any) {
	for i, p := range w.properties {
		if sameDynamicType(p, property) {
			w.properties[i] = property
			return
		}
	}
	w.properties = append(w.properties, property)
}

// RemoveProperty detaches and returns the value of the same dynamic
// type as probe, or nil.
func (w *Window) RemoveProperty(probe any) any {
	for i, p := range w.properties {
		if sameDynamicType(p, probe) {
			w.properties[i] = w.properties[len(w.properties)-1]
			w.properties = w.properties[:len(w.properties)-1]
			return p
		}
	}
	return nil
}

// Property returns the attached value of type T, if any.
func Property[T any](w *Window) (T, bool) {
	for _, p := range w.properties {
		if v, ok := p.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func sameDynamicType(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}
