package world

import "github.com/go-loom/loom/pkg/geometry"

// Update is a state change delivered to a widget's Update method.
type Update interface {
	isUpdate()
}

// UpdateHovered reports the pointer entering or leaving the widget.
type UpdateHovered struct{ Hovered bool }

// UpdateActive reports the widget gaining or losing input capture.
type UpdateActive struct{ Active bool }

// UpdateFocused reports the widget gaining or losing keyboard focus.
type UpdateFocused struct{ Focused bool }

// UpdateStashed reports the widget being stashed or un-stashed.
type UpdateStashed struct{ Stashed bool }

// UpdateDisabled reports the widget being disabled or re-enabled.
type UpdateDisabled struct{ Disabled bool }

// UpdateScrollTo asks an ancestor to scroll the given rect, in the
// ancestor's local coordinates, into view.
type UpdateScrollTo struct{ Rect geometry.Rect }

// UpdateWindowFocused reports the owning window's focus changing.
type UpdateWindowFocused struct{ Focused bool }

// UpdateWindowResized reports the owning window's size changing.
type UpdateWindowResized struct{ Size geometry.Size }

// UpdateWindowScaled reports the owning window's scale factor changing.
type UpdateWindowScaled struct{ Scale float32 }

// UpdateWindowInset reports the owning window's safe-area insets
// changing.
type UpdateWindowInset struct{ Insets geometry.Padding }

// UpdateChildAdded reports a child appended at Index.
type UpdateChildAdded struct{ Index int }

// UpdateChildInserted reports a child spliced in at Index.
type UpdateChildInserted struct{ Index int }

// UpdateChildRemoved reports the child at Index being removed.
type UpdateChildRemoved struct{ Index int }

// UpdateChildReplaced reports the child at Index being replaced.
type UpdateChildReplaced struct{ Index int }

// UpdateChildrenSwapped reports the children at A and B trading places.
type UpdateChildrenSwapped struct{ A, B int }

// UpdateRemoved is the widget's last update before its slot is freed.
type UpdateRemoved struct{}

func (UpdateHovered) isUpdate()         {}
func (UpdateActive) isUpdate()          {}
func (UpdateFocused) isUpdate()         {}
func (UpdateStashed) isUpdate()         {}
func (UpdateDisabled) isUpdate()        {}
func (UpdateScrollTo) isUpdate()        {}
func (UpdateWindowFocused) isUpdate()   {}
func (UpdateWindowResized) isUpdate()   {}
func (UpdateWindowScaled) isUpdate()    {}
func (UpdateWindowInset) isUpdate()     {}
func (UpdateChildAdded) isUpdate()      {}
func (UpdateChildInserted) isUpdate()   {}
func (UpdateChildRemoved) isUpdate()    {}
func (UpdateChildReplaced) isUpdate()   {}
func (UpdateChildrenSwapped) isUpdate() {}
func (UpdateRemoved) isUpdate()         {}
