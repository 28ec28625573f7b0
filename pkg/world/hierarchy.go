package world

import "github.com/go-loom/loom/pkg/errors"

// AddChild appends child to parent's children.
func (w *World) AddChild(parent, child ID) {
	childState := w.arena.stateOf(child)
	parentState := w.arena.stateOf(parent)
	if childState == nil || parentState == nil {
		return
	}
	if !childState.parent.IsNil() {
		errors.DebugPanic("AddChild: widget %v already has a parent", child)
		return
	}

	childState.parent = parent
	parentState.children = append(parentState.children, child)

	w.pushWindowDown(child, parentState.window)
	w.refreshUp(parent)

	w.updateWidget(parent, UpdateChildAdded{Index: len(parentState.children) - 1})
	w.requestWidgetLayout(parentState)
}

// InsertChild splices child into parent's children at index. The
// child inherits the parent's window.
func (w *World) InsertChild(parent ID, index int, child ID) {
	childState := w.arena.stateOf(child)
	parentState := w.arena.stateOf(parent)
	if childState == nil || parentState == nil {
		return
	}
	if index < 0 || index > len(parentState.children) {
		errors.DebugPanic("InsertChild: index %d out of range", index)
		return
	}
	if !childState.parent.IsNil() {
		errors.DebugPanic("InsertChild: widget %v already has a parent", child)
		return
	}

	childState.parent = parent
	parentState.children = append(parentState.children, ID{})
	copy(parentState.children[index+1:], parentState.children[index:])
	parentState.children[index] = child

	w.pushWindowDown(child, parentState.window)
	w.refreshUp(parent)

	w.updateWidget(parent, UpdateChildInserted{Index: index})
	w.requestWidgetLayout(parentState)
}

// SetChild replaces the child at index, detaching the previous child
// from the tree without removing it from the arena.
func (w *World) SetChild(parent ID, index int, child ID) {
	parentState := w.arena.stateOf(parent)
	if parentState == nil {
		return
	}
	if index < 0 || index >= len(parentState.children) {
		errors.DebugPanic("SetChild: index %d out of range", index)
		return
	}
	prev := parentState.children[index]
	parentState.children[index] = child

	if prevState := w.arena.stateOf(prev); prevState != nil {
		prevState.parent = ID{}
	}
	w.pushWindowDown(prev, WindowID{})

	if childState := w.arena.stateOf(child); childState != nil {
		childState.parent = parent
	}
	w.pushWindowDown(child, parentState.window)
	w.refreshUp(parent)

	w.updateWidget(parent, UpdateChildReplaced{Index: index})
	w.requestWidgetLayout(parentState)
}

// SwapChildren exchanges two children of parent.
func (w *World) SwapChildren(parent ID, a, b int) {
	state := w.arena.stateOf(parent)
	if state == nil {
		return
	}
	if a < 0 || a >= len(state.children) || b < 0 || b >= len(state.children) {
		errors.DebugPanic("SwapChildren: indices %d, %d out of range", a, b)
		return
	}

	state.children[a], state.children[b] = state.children[b], state.children[a]

	w.updateWidget(parent, UpdateChildrenSwapped{A: a, B: b})
	w.requestWidgetLayout(state)
}

// RemoveChild detaches the child at index from parent and returns it.
// The child stays in the arena and can be re-attached elsewhere.
func (w *World) RemoveChild(parent ID, index int) ID {
	state := w.arena.stateOf(parent)
	if state == nil {
		return ID{}
	}
	if index < 0 || index >= len(state.children) {
		errors.DebugPanic("RemoveChild: index %d out of range", index)
		return ID{}
	}

	child := state.children[index]
	state.children = append(state.children[:index], state.children[index+1:]...)

	w.updateWidget(parent, UpdateChildRemoved{Index: index})
	w.requestWidgetLayout(state)

	if childState := w.arena.stateOf(child); childState != nil {
		childState.parent = ID{}
	}
	w.setWindow(child, WindowID{})

	return child
}

// Remove deletes a widget and its whole subtree from the arena. All
// handles into the subtree become stale.
func (w *World) Remove(id ID) {
	state := w.arena.stateOf(id)
	if state == nil {
		return
	}

	children := make([]ID, len(state.children))
	copy(children, state.children)
	for _, child := range children {
		w.Remove(child)
	}

	parent := state.parent

	w.updateWidget(id, UpdateRemoved{})

	// Clearing the window releases hover, focus, and capture held by
	// the subtree.
	w.setWindow(id, WindowID{})

	if parentState := w.arena.stateOf(parent); parentState != nil {
		for i, child := range parentState.children {
			if child == id {
				parentState.children = append(parentState.children[:i], parentState.children[i+1:]...)
				w.updateWidget(parent, UpdateChildRemoved{Index: i})
				w.requestWidgetLayout(parentState)
				break
			}
		}
	}

	w.arena.freeSlot(id)
}

// SetStashed stashes or unstashes a widget and its subtree. Stashed
// widgets keep their state but are skipped by every pass.
func (w *World) SetStashed(id ID, stashed bool) {
	state := w.arena.stateOf(id)
	if state == nil {
		return
	}

	// un-stashing under a stashed parent would desync the subtree
	if !state.isStashed {
		if parent := w.arena.stateOf(state.parent); parent != nil && parent.isStashed {
			return
		}
	}

	w.setStashedRecursive(id, stashed)
	w.refreshUp(id)
	w.requestWidgetLayout(state)
}

func (w *World) setStashedRecursive(id ID, stashed bool) {
	state := w.arena.stateOf(id)
	if state == nil {
		return
	}

	for _, child := range state.children {
		w.setStashedRecursive(child, stashed)
	}

	if state.isStashed != stashed {
		w.updateWidget(id, UpdateStashed{Stashed: stashed})
	}
	state.isStashed = stashed
}

// SetDisabled disables or enables a widget and its subtree. Disabled
// widgets still draw but no longer accept focus.
func (w *World) SetDisabled(id ID, disabled bool) {
	state := w.arena.stateOf(id)
	if state == nil {
		return
	}

	if !state.isDisabled {
		if parent := w.arena.stateOf(state.parent); parent != nil && parent.isDisabled {
			return
		}
	}

	w.setDisabledRecursive(id, disabled)
	w.refreshUp(id)
}

func (w *World) setDisabledRecursive(id ID, disabled bool) {
	state := w.arena.stateOf(id)
	if state == nil {
		return
	}

	for _, child := range state.children {
		w.setDisabledRecursive(child, disabled)
	}

	if state.isDisabled != disabled {
		w.updateWidget(id, UpdateDisabled{Disabled: disabled})
	}
	state.isDisabled = disabled
}

// IsDescendant reports whether descendant is ancestor or lies in its
// subtree.
func (w *World) IsDescendant(ancestor, descendant ID) bool {
	current := descendant
	for !current.IsNil() {
		if current == ancestor {
			return true
		}
		state := w.arena.stateOf(current)
		if state == nil {
			return false
		}
		current = state.parent
	}
	return false
}

// refreshUp recomputes the aggregate flags on id and every ancestor.
func (w *World) refreshUp(id ID) {
	current := id
	for !current.IsNil() {
		state := w.arena.stateOf(current)
		if state == nil {
			return
		}
		state.reset()
		for _, child := range state.children {
			if childState := w.arena.stateOf(child); childState != nil {
				state.merge(childState)
			}
		}
		current = state.parent
	}
}

// pushWindowDown assigns window to a widget and all its descendants.
func (w *World) pushWindowDown(id ID, window WindowID) {
	state := w.arena.stateOf(id)
	if state == nil {
		return
	}
	state.window = window
	for _, child := range state.children {
		w.pushWindowDown(child, window)
	}
}

// setWindow moves a subtree to another window, releasing hover, focus,
// and pointer or touch capture held against the previous window.
func (w *World) setWindow(id ID, window WindowID) {
	state := w.arena.stateOf(id)
	if state == nil {
		return
	}

	previous := state.window
	hasHovered := state.isHovered || state.hasHovered
	hasActive := state.isActive || state.hasActive
	hasFocused := state.isFocused || state.hasFocused

	w.pushWindowDown(id, window)

	prevWindow := w.window(previous)
	if prevWindow != nil && hasHovered {
		for _, pointer := range prevWindow.pointers {
			if !pointer.hovering.IsNil() && w.IsDescendant(id, pointer.hovering) {
				hovered := pointer.hovering
				pointer.hovering = ID{}
				w.setHovered(hovered, false)
				break
			}
		}
	}

	if prevWindow != nil && hasActive {
		for _, pointer := range prevWindow.pointers {
			if !pointer.capturer.IsNil() && w.IsDescendant(id, pointer.capturer) {
				capturer := pointer.capturer
				pointer.capturer = ID{}
				w.setActive(capturer, false)
				break
			}
		}
		for _, touch := range prevWindow.touches {
			if !touch.capturer.IsNil() && w.IsDescendant(id, touch.capturer) {
				capturer := touch.capturer
				touch.capturer = ID{}
				w.setActive(capturer, false)
				break
			}
		}
	}

	if prevWindow != nil && hasFocused && !prevWindow.focused.IsNil() {
		focused := prevWindow.focused
		prevWindow.focused = ID{}
		w.setFocused(focused, false)
	}

	w.refreshUp(id)
}

// updateWidget delivers an Update to a single widget.
func (w *World) updateWidget(id ID, update Update) {
	e, ok := w.arena.acquire("update", id)
	if !ok {
		return
	}
	defer w.arena.release(e)

	cx := UpdateContext{Context: w.newContext(id, &e.state)}
	e.widget.Update(&cx, update)
}

// requestWidgetLayout marks a widget for layout outside a pass, when
// no context is available.
func (w *World) requestWidgetLayout(state *State) {
	state.needsLayout = true
	state.needsDraw = true
	w.requestRedraw(state.window)
	w.refreshUp(state.id)
}
