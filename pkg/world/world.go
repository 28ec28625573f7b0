package world

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/go-loom/loom/pkg/canvas"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geometry"
)

// World owns the widget arena, the windows, and the outbound signal
// sink. All methods must be called from the same goroutine; other
// goroutines reach the world through a driver proxy sending
// SignalMutate closures.
type World struct {
	arena    arena
	windows  []*Window
	settings Settings
	touch    event.TouchSettings
	recorder *Recorder
	painter  canvas.Painter

	signal func(Signal)

	redrawRequested  map[WindowID]bool
	animateRequested map[WindowID]bool

	nextWindowID uint64
	nextLayerID  uint64
}

// New creates a world with default settings. signal receives outbound
// notifications; it may be nil.
func New(signal func(Signal)) *World {
	return NewWithSettings(DefaultSettings(), signal)
}

// NewWithSettings creates a world with the given settings.
func NewWithSettings(settings Settings, signal func(Signal)) *World {
	return &World{
		settings:         settings,
		touch:            settings.Touch.touchSettings(),
		recorder:         NewRecorder(settings.Record),
		signal:           signal,
		redrawRequested:  make(map[WindowID]bool),
		animateRequested: make(map[WindowID]bool),
	}
}

// Settings returns the world's settings.
func (w *World) Settings() Settings { return w.settings }

// Recorder returns the draw-recording cache.
func (w *World) Recorder() *Recorder { return w.recorder }

// Insert adds a widget to the arena and returns its handle. The
// widget is an orphan until attached to a parent or a layer.
func (w *World) Insert(widget Widget) ID {
	return w.arena.insert(widget)
}

// Contains reports whether the handle refers to a live widget.
func (w *World) Contains(id ID) bool {
	return w.arena.contains(id)
}

// Insert adds a widget to the arena keeping its concrete type in the
// returned handle.
func Insert[T Widget](w *World, widget T) TypedID[T] {
	return TypedID[T]{ID: w.arena.insert(widget)}
}

// With runs fn against the widget behind a typed handle, giving it an
// update context for requesting layout, draw, or animation.
func With[T Widget](w *World, id TypedID[T], fn func(cx *UpdateContext, widget T)) bool {
	e, ok := w.arena.acquire("with", id.ID)
	if !ok {
		return false
	}
	defer w.arena.release(e)

	widget, ok := e.widget.(T)
	if !ok {
		return false
	}

	cx := UpdateContext{Context: w.newContext(id.ID, &e.state)}
	fn(&cx, widget)

	// dirty flags set through the context must reach the ancestors
	w.refreshUp(id.ID)
	return true
}

// CreateWindow creates a window whose base layer shows contents. The
// host is asked to realize it through a SignalCreateWindow.
func (w *World) CreateWindow(contents ID) *Window {
	w.nextWindowID++
	id := WindowID{data: w.nextWindowID}

	win := &Window{
		id: id,
		layers: []Layer{{
			ID:     w.newLayerID(),
			Widget: contents,
			Size:   geometry.Sz(800, 600),
		}},
		scale:     1,
		size:      geometry.Sz(800, 600),
		visible:   true,
		decorated: true,
		sizing: SizingResizable{
			Default: geometry.Sz(800, 600),
			Max:     geometry.Sz(math32.Inf(1), math32.Inf(1)),
		},
		color: canvas.White,
	}
	w.windows = append(w.windows, win)

	w.emitSignal(SignalCreateWindow{Window: id})
	w.setWindow(contents, id)

	return win
}

// RemoveWindow removes a window and every widget in its layers.
func (w *World) RemoveWindow(window WindowID) {
	for i, win := range w.windows {
		if win.id == window {
			w.windows = append(w.windows[:i], w.windows[i+1:]...)
			for _, layer := range win.layers {
				w.Remove(layer.Widget)
			}
			break
		}
	}

	w.emitSignal(SignalRemoveWindow{Window: window})
}

// Window returns the window with the given id, or nil.
func (w *World) Window(id WindowID) *Window {
	return w.window(id)
}

// Windows returns all live windows.
func (w *World) Windows() []*Window {
	return w.windows
}

func (w *World) window(id WindowID) *Window {
	for _, win := range w.windows {
		if win.id == id {
			return win
		}
	}
	return nil
}

// SetWindowWidget replaces the base layer's widget, removing the
// previous one and its subtree.
func (w *World) SetWindowWidget(window WindowID, widget ID) {
	win := w.window(window)
	if win == nil || len(win.layers) == 0 {
		return
	}

	w.setWindow(widget, window)

	prev := win.layers[0].Widget
	win.layers[0].Widget = widget
	w.Remove(prev)

	w.requestRedraw(window)
}

// AddLayer stacks an orphan widget as a new layer above the existing
// ones.
func (w *World) AddLayer(window WindowID, position geometry.Point, widget ID) LayerID {
	win := w.window(window)
	if win == nil {
		return LayerID{}
	}

	w.setWindow(widget, window)

	id := w.newLayerID()
	layer := Layer{ID: id, Widget: widget, Position: position}
	if state := w.arena.stateOf(widget); state != nil {
		layer.Size = state.size
	}
	win.layers = append(win.layers, layer)

	if state := w.arena.stateOf(widget); state != nil {
		state.transform.Offset = geometry.Off(position.X, position.Y)
		state.needsCompose = true
		w.requestRedraw(window)
	}

	return id
}

// SetLayerPosition moves a layer without relayout.
func (w *World) SetLayerPosition(window WindowID, layer LayerID, position geometry.Point) {
	win := w.window(window)
	if win == nil {
		return
	}
	l := win.layer(layer)
	if l == nil {
		return
	}

	l.Position = position

	if state := w.arena.stateOf(l.Widget); state != nil {
		state.transform.Offset = geometry.Off(position.X, position.Y)
		state.needsCompose = true
		w.requestRedraw(window)
	}
}

// SetLayerWidget swaps the widget shown by a layer. The previous
// widget is detached but kept in the arena.
func (w *World) SetLayerWidget(window WindowID, layer LayerID, widget ID) {
	win := w.window(window)
	if win == nil {
		return
	}
	l := win.layer(layer)
	if l == nil {
		return
	}

	w.setWindow(widget, window)
	w.setWindow(l.Widget, WindowID{})
	l.Widget = widget

	if state := w.arena.stateOf(widget); state != nil {
		state.needsCompose = true
		w.requestRedraw(window)
	}
}

// RemoveLayer removes a layer and its widget subtree. The base layer
// cannot be removed.
func (w *World) RemoveLayer(window WindowID, layer LayerID) {
	win := w.window(window)
	if win == nil {
		return
	}

	for i := 1; i < len(win.layers); i++ {
		if win.layers[i].ID == layer {
			widget := win.layers[i].Widget
			win.layers = append(win.layers[:i], win.layers[i+1:]...)
			w.Remove(widget)
			break
		}
	}

	w.requestRedraw(window)
}

func (w *World) newLayerID() LayerID {
	w.nextLayerID++
	return LayerID{data: w.nextLayerID}
}

// WindowResized records a new window size and notifies every widget.
func (w *World) WindowResized(window WindowID, size geometry.Size) {
	win := w.window(window)
	if win == nil {
		return
	}
	win.size = size
	w.updateWindow(win, UpdateWindowResized{Size: size})
}

// WindowScaled records a new size and scale factor.
func (w *World) WindowScaled(window WindowID, size geometry.Size, scale float32) {
	win := w.window(window)
	if win == nil {
		return
	}
	win.size = size
	win.scale = scale
	w.updateWindow(win, UpdateWindowResized{Size: size})
	w.updateWindow(win, UpdateWindowScaled{Scale: scale})
}

// WindowInset records new safe-area insets.
func (w *World) WindowInset(window WindowID, insets geometry.Padding) {
	win := w.window(window)
	if win == nil {
		return
	}
	win.insets = insets
	w.updateWindow(win, UpdateWindowInset{Insets: insets})
}

// WindowFocused records the window gaining or losing focus. When a
// text widget holds focus in a newly focused window, the host is
// asked to restart the input method.
func (w *World) WindowFocused(window WindowID, focused bool) {
	win := w.window(window)
	if win == nil {
		return
	}
	win.focusedWin = focused
	w.updateWindow(win, UpdateWindowFocused{Focused: focused})

	if focused && !win.focused.IsNil() {
		if state := w.arena.stateOf(win.focused); state != nil && state.acceptsText() {
			w.emitSignal(SignalIme{Window: window, Event: ImeStart{}})
		}
	}
}

// updateWindow delivers an update to every widget in the window,
// children before parents.
func (w *World) updateWindow(win *Window, update Update) {
	for i := range win.layers {
		w.updateWidgetRecursive(win.layers[i].Widget, update)
	}
}

func (w *World) updateWidgetRecursive(id ID, update Update) {
	state := w.arena.stateOf(id)
	if state == nil {
		return
	}

	for _, child := range state.children {
		w.updateWidgetRecursive(child, update)
	}

	w.refreshOne(state)
	w.updateWidget(id, update)
}

// Animate ticks animations for one window. dt is the time since the
// previous tick.
func (w *World) Animate(window WindowID, dt time.Duration) {
	win := w.window(window)
	if win == nil {
		return
	}

	// widgets that re-request during the tick need a fresh signal
	delete(w.animateRequested, window)

	w.animateWindow(win, dt)
}

// Frame runs a full frame for one window: layout, compose, hover
// refresh, draw, and recording. The returned size is meaningful for
// fit-content windows, reported by the second return value.
func (w *World) Frame(window WindowID, c canvas.Canvas) (geometry.Size, bool) {
	win := w.window(window)
	if win == nil {
		return geometry.Size{}, false
	}

	delete(w.redrawRequested, window)
	delete(w.animateRequested, window)

	w.painter = c.Painter()

	size, fit := w.layoutWindow(win)
	w.composeWindow(win)
	w.updateWindowHovered(win)
	w.drawWindow(win, c)
	w.recordWindow(win, c)

	return size, fit
}

// SetWindowTitle sets the window title and notifies the host.
func (w *World) SetWindowTitle(window WindowID, title string) {
	if win := w.window(window); win != nil && win.title != title {
		win.title = title
		w.emitSignal(SignalWindowUpdate{Window: window, Update: WindowTitle{Title: title}})
	}
}

// SetWindowSizing sets the window sizing policy and notifies the host.
func (w *World) SetWindowSizing(window WindowID, sizing Sizing) {
	if win := w.window(window); win != nil {
		win.sizing = sizing
		w.emitSignal(SignalWindowUpdate{Window: window, Update: WindowSizing{Sizing: sizing}})
		w.requestRedraw(window)
	}
}

// SetWindowVisible shows or hides the window.
func (w *World) SetWindowVisible(window WindowID, visible bool) {
	if win := w.window(window); win != nil && win.visible != visible {
		win.visible = visible
		w.emitSignal(SignalWindowUpdate{Window: window, Update: WindowVisible{Visible: visible}})
	}
}

// SetWindowDecorated toggles host decorations.
func (w *World) SetWindowDecorated(window WindowID, decorated bool) {
	if win := w.window(window); win != nil && win.decorated != decorated {
		win.decorated = decorated
		w.emitSignal(SignalWindowUpdate{Window: window, Update: WindowDecorated{Decorated: decorated}})
	}
}

// SetWindowColor sets the window background color.
func (w *World) SetWindowColor(window WindowID, color canvas.Color) {
	if win := w.window(window); win != nil {
		win.color = color
		w.requestRedraw(window)
	}
}

func (w *World) emitSignal(signal Signal) {
	if w.signal != nil {
		w.signal(signal)
	}
}

// requestRedraw asks the host to redraw a window, at most once per
// frame.
func (w *World) requestRedraw(window WindowID) {
	if window.IsNil() || w.redrawRequested[window] {
		return
	}
	w.redrawRequested[window] = true
	w.emitSignal(SignalRedraw{Window: window})
}

// requestAnimate asks the host to schedule an animation tick, at most
// once per frame.
func (w *World) requestAnimate(window WindowID) {
	if window.IsNil() || w.animateRequested[window] {
		return
	}
	w.animateRequested[window] = true
	w.emitSignal(SignalAnimate{Window: window, Start: Now()})
}
