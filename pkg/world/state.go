package world

import (
	"github.com/go-loom/loom/pkg/canvas"
	"github.com/go-loom/loom/pkg/geometry"
)

// State is the engine-side record kept for every widget slot: tree
// links, transforms, measured size, dirty flags, and the aggregate
// child flags used to skip subtrees during queries.
type State struct {
	id       ID
	parent   ID
	children []ID
	window   WindowID

	transform       geometry.Affine
	globalTransform geometry.Affine
	size            geometry.Size
	prevSpace       geometry.Space
	hasPrevSpace    bool
	clip            *canvas.Clip
	cursor          CursorIcon

	subpixel    bool
	stableDraws uint32

	isHovered  bool
	hasHovered bool

	isFocused  bool
	hasFocused bool

	isActive  bool
	hasActive bool

	isStashed  bool
	isDisabled bool

	needsLayout  bool
	needsCompose bool
	needsDraw    bool
	needsAnimate bool

	traits Traits

	typeName string
}

func newState(id ID, widget Widget) State {
	return State{
		id:              id,
		transform:       geometry.Identity(),
		globalTransform: geometry.Identity(),
		needsLayout:     true,
		needsDraw:       true,
		traits:          widget.Traits(),
		typeName:        widgetTypeName(widget),
	}
}

// reset re-seeds the aggregate flags from the widget's own state
// before merging children back in.
func (s *State) reset() {
	s.hasHovered = s.isHovered
	s.hasActive = s.isActive
	s.hasFocused = s.isFocused
}

// merge folds a child's aggregate flags into this widget. Dirty flags
// of stashed children are ignored so hidden subtrees never schedule
// work.
func (s *State) merge(child *State) {
	s.hasHovered = s.hasHovered || child.hasHovered
	s.hasActive = s.hasActive || child.hasActive
	s.hasFocused = s.hasFocused || child.hasFocused

	if !child.isStashed {
		s.needsLayout = s.needsLayout || child.needsLayout
		s.needsCompose = s.needsCompose || child.needsCompose
		s.needsDraw = s.needsDraw || child.needsDraw
		s.needsAnimate = s.needsAnimate || child.needsAnimate
	}
}

func (s *State) acceptsFocus() bool {
	return s.traits.AcceptsFocus && !s.isStashed && !s.isDisabled
}

func (s *State) acceptsPointer() bool {
	return s.traits.AcceptsPointer && !s.isStashed
}

func (s *State) acceptsText() bool {
	return s.traits.AcceptsText && !s.isStashed
}
