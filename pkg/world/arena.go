package world

import "github.com/go-loom/loom/pkg/errors"

// entry is one arena slot. The borrowed flag enforces the exclusive
// access discipline: a widget is checked out while any of its methods
// run, and re-entrant access resolves to absent.
type entry struct {
	generation uint32
	borrowed   bool
	widget     Widget
	state      State
}

// arena is generational slot storage for widget instances. Freed slots
// are reused with a bumped generation so stale handles never resolve.
type arena struct {
	entries []*entry
	free    []uint32
}

// insert allocates a slot for widget, reusing a freed one if any.
func (a *arena) insert(widget Widget) ID {
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]

		e := a.entries[slot]
		e.generation++
		e.widget = widget
		e.state = newState(ID{index: slot + 1, generation: e.generation}, widget)
		return e.state.id
	}

	slot := uint32(len(a.entries))
	id := ID{index: slot + 1}
	a.entries = append(a.entries, &entry{
		widget: widget,
		state:  newState(id, widget),
	})
	return id
}

// entryOf resolves a handle, returning nil when the slot is out of
// range or the generation is stale.
func (a *arena) entryOf(id ID) *entry {
	if id.IsNil() || id.slot() >= uint32(len(a.entries)) {
		return nil
	}
	e := a.entries[id.slot()]
	if e.generation != id.generation || e.widget == nil {
		return nil
	}
	return e
}

// stateOf returns the widget's state record, or nil for a stale
// handle. State reads are allowed while the widget is borrowed.
func (a *arena) stateOf(id ID) *State {
	e := a.entryOf(id)
	if e == nil {
		return nil
	}
	return &e.state
}

// acquire checks a widget out for exclusive access. It returns false
// for stale handles, and for widgets already checked out, which is
// internal misuse.
func (a *arena) acquire(op string, id ID) (*entry, bool) {
	e := a.entryOf(id)
	if e == nil {
		return nil, false
	}
	if e.borrowed {
		errors.DebugPanic("%s: widget %v is already borrowed", op, id)
		errors.Report(&errors.LoomError{
			Op:   op,
			Kind: errors.KindArena,
			Err:  &errors.BorrowError{Op: op, Index: id.slot()},
		})
		return nil, false
	}
	e.borrowed = true
	return e, true
}

func (a *arena) release(e *entry) {
	e.borrowed = false
}

// freeSlot clears a slot and queues it for reuse. The caller is
// responsible for detaching the widget from the tree first.
func (a *arena) freeSlot(id ID) {
	e := a.entryOf(id)
	if e == nil {
		return
	}
	e.widget = nil
	e.state = State{}
	a.free = append(a.free, id.slot())
}

// contains reports whether the handle still resolves to a live widget.
func (a *arena) contains(id ID) bool {
	return a.entryOf(id) != nil
}
