package world

import (
	"github.com/go-loom/loom/pkg/canvas"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// Context gives a widget access to its own state and to the World
// while a pass visits it. A Context is only valid for the duration of
// the widget call it was passed to.
type Context struct {
	world *World
	id    ID
	state *State
}

// ID returns the identity of the visited widget.
func (cx *Context) ID() ID { return cx.id }

// Size returns the widget's laid-out size.
func (cx *Context) Size() geometry.Size { return cx.state.size }

// Width returns the widget's laid-out width.
func (cx *Context) Width() float32 { return cx.state.size.Width }

// Height returns the widget's laid-out height.
func (cx *Context) Height() float32 { return cx.state.size.Height }

// Rect returns the widget's bounds in local coordinates.
func (cx *Context) Rect() geometry.Rect {
	return geometry.RectFromSize(cx.state.size)
}

// Transform returns the widget's transform relative to its parent.
func (cx *Context) Transform() geometry.Affine { return cx.state.transform }

// GlobalTransform returns the widget's transform relative to the
// window.
func (cx *Context) GlobalTransform() geometry.Affine { return cx.state.globalTransform }

// Parent returns the widget's parent, or a nil ID for layer roots.
func (cx *Context) Parent() ID { return cx.state.parent }

// Children returns the widget's children in order.
func (cx *Context) Children() []ID { return cx.state.children }

// Clip returns the widget's clip shape, or nil when unclipped.
func (cx *Context) Clip() *canvas.Clip { return cx.state.clip }

// IsHovered reports whether a pointer is over this widget.
func (cx *Context) IsHovered() bool { return cx.state.isHovered }

// HasHovered reports whether a pointer is over this widget or any
// descendant.
func (cx *Context) HasHovered() bool { return cx.state.isHovered || cx.state.hasHovered }

// IsActive reports whether this widget is being pressed.
func (cx *Context) IsActive() bool { return cx.state.isActive }

// HasActive reports whether this widget or any descendant is being
// pressed.
func (cx *Context) HasActive() bool { return cx.state.isActive || cx.state.hasActive }

// IsFocused reports whether this widget has keyboard focus.
func (cx *Context) IsFocused() bool { return cx.state.isFocused }

// HasFocused reports whether this widget or any descendant has
// keyboard focus.
func (cx *Context) HasFocused() bool { return cx.state.isFocused || cx.state.hasFocused }

// IsStashed reports whether this widget is stashed.
func (cx *Context) IsStashed() bool { return cx.state.isStashed }

// IsDisabled reports whether this widget is disabled.
func (cx *Context) IsDisabled() bool { return cx.state.isDisabled }

// RequestLayout schedules a layout pass for this widget.
func (cx *Context) RequestLayout() {
	cx.state.needsLayout = true
	cx.state.needsDraw = true
	cx.world.requestRedraw(cx.state.window)
}

// RequestDraw schedules a draw pass for this widget.
func (cx *Context) RequestDraw() {
	cx.state.needsDraw = true
	cx.world.requestRedraw(cx.state.window)
}

// RequestAnimate schedules an animation tick for this widget.
func (cx *Context) RequestAnimate() {
	cx.state.needsAnimate = true
	cx.world.requestAnimate(cx.state.window)
}

// SetCursor sets the cursor shown while a pointer hovers this widget.
func (cx *Context) SetCursor(cursor CursorIcon) {
	cx.state.cursor = cursor
}

// SetSubpixel disables pixel alignment of this widget's offset.
func (cx *Context) SetSubpixel(subpixel bool) {
	cx.state.subpixel = subpixel
}

// LayoutContext is passed to Widget.Layout.
type LayoutContext struct {
	Context
	scale float32
}

// Scale returns the window's pixel scale factor.
func (cx *LayoutContext) Scale() float32 { return cx.scale }

// Painter returns a text shaper for measuring text during layout. It
// is nil before the first frame.
func (cx *LayoutContext) Painter() canvas.Painter { return cx.world.painter }

// ChildLayout lays out a child within the given space and returns the
// size it took.
func (cx *LayoutContext) ChildLayout(child ID, space geometry.Space) geometry.Size {
	return cx.world.layoutWidget(child, space, cx.scale)
}

// ChildSize returns the size a child took in its last layout.
func (cx *LayoutContext) ChildSize(child ID) geometry.Size {
	state := cx.world.arena.stateOf(child)
	if state == nil {
		return geometry.Size{}
	}
	return state.size
}

// PlaceChild positions a child relative to this widget.
func (cx *LayoutContext) PlaceChild(child ID, offset geometry.Offset) {
	cx.world.placeChild(cx.state, child, geometry.Translate(offset), cx.scale)
}

// TransformChild sets a child's full transform relative to this
// widget.
func (cx *LayoutContext) TransformChild(child ID, transform geometry.Affine) {
	cx.world.placeChild(cx.state, child, transform, cx.scale)
}

// SetClip sets the widget's clip shape. Descendants and the widget's
// own Draw output are clipped to it; DrawOver output is not.
func (cx *LayoutContext) SetClip(clip *canvas.Clip) {
	cx.state.clip = clip
}

// SetChildStashed stashes or unstashes a child during layout.
func (cx *LayoutContext) SetChildStashed(child ID, stashed bool) {
	cx.world.SetStashed(child, stashed)
}

// ComposeContext is passed to Widget.Compose.
type ComposeContext struct {
	Context
	scale float32
}

// Scale returns the window's pixel scale factor.
func (cx *ComposeContext) Scale() float32 { return cx.scale }

// PlaceChild repositions a child without triggering layout.
func (cx *ComposeContext) PlaceChild(child ID, offset geometry.Offset) {
	cx.world.placeChild(cx.state, child, geometry.Translate(offset), cx.scale)
}

// TransformChild sets a child's full transform without triggering
// layout.
func (cx *ComposeContext) TransformChild(child ID, transform geometry.Affine) {
	cx.world.placeChild(cx.state, child, transform, cx.scale)
}

// DrawContext is passed to Widget.Draw and Widget.DrawOver.
type DrawContext struct {
	Context
	scale float32
}

// Scale returns the window's pixel scale factor.
func (cx *DrawContext) Scale() float32 { return cx.scale }

// UpdateContext is passed to Widget.Update and Widget.Animate.
type UpdateContext struct {
	Context
}

// EventContext is passed to widget event handlers.
type EventContext struct {
	Context
	window *Window
	focus  *focusRequest
}

// Window returns the window the event arrived on.
func (cx *EventContext) Window() *Window { return cx.window }

// Modifiers returns the window's current keyboard modifiers.
func (cx *EventContext) Modifiers() event.Modifiers { return cx.window.modifiers }

// RequestFocus asks for keyboard focus to move to this widget once
// the event finishes dispatching.
func (cx *EventContext) RequestFocus() {
	*cx.focus = focusRequest{kind: focusSet, target: cx.id}
}

// RequestUnfocus asks for keyboard focus to be cleared once the event
// finishes dispatching.
func (cx *EventContext) RequestUnfocus() {
	*cx.focus = focusRequest{kind: focusClear}
}

// RequestFocusNext asks for focus to move to the next focusable
// widget once the event finishes dispatching.
func (cx *EventContext) RequestFocusNext() {
	*cx.focus = focusRequest{kind: focusNext}
}

// RequestFocusPrevious asks for focus to move to the previous
// focusable widget once the event finishes dispatching.
func (cx *EventContext) RequestFocusPrevious() {
	*cx.focus = focusRequest{kind: focusPrevious}
}

// sendIme emits an input-method signal for this widget's window.
func (cx *EventContext) sendIme(ev ImeSignal) {
	cx.world.emitSignal(SignalIme{Window: cx.window.id, Event: ev})
}

// SetImeArea reports the on-screen rectangle of the text cursor so
// the platform can position input-method popups.
func (cx *EventContext) SetImeArea(rect geometry.Rect) {
	cx.sendIme(ImeArea{Rect: cx.state.globalTransform.ApplyRect(rect)})
}

// SetImeText reports the text surrounding the cursor to the input
// method.
func (cx *EventContext) SetImeText(text string) {
	cx.sendIme(ImeText{Text: text})
}

// SetImeSelection reports the current selection and composing range
// to the input method.
func (cx *EventContext) SetImeSelection(selection event.Range, composing *event.Range) {
	cx.sendIme(ImeSelection{Selection: selection, Composing: composing})
}

// SetClipboard asks the platform to place text on the clipboard.
func (cx *EventContext) SetClipboard(text string) {
	cx.world.emitSignal(SignalClipboardSet{Text: text})
}

// ScrollTo asks ancestors to scroll the given local rectangle into
// view.
func (cx *EventContext) ScrollTo(rect geometry.Rect) {
	cx.world.scrollTo(cx.id, rect)
}

func (w *World) newContext(id ID, state *State) Context {
	return Context{world: w, id: id, state: state}
}
