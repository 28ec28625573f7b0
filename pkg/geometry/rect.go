package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Rect is an axis-aligned rectangle between two corner points.
type Rect struct {
	Min Point
	Max Point
}

// RectMinMax constructs a rectangle from two corners.
func RectMinMax(min, max Point) Rect {
	return Rect{Min: min, Max: max}
}

// RectFromSize constructs a rectangle at the origin with the given size.
func RectFromSize(size Size) Rect {
	return Rect{Max: Point{X: size.Width, Y: size.Height}}
}

// RectFromPointSize constructs a rectangle with its top-left at min.
func RectFromPointSize(min Point, size Size) Rect {
	return Rect{
		Min: min,
		Max: Point{X: min.X + size.Width, Y: min.Y + size.Height},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) * 0.5, Y: (r.Min.Y + r.Max.Y) * 0.5}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Translate returns the rectangle moved by an offset.
func (r Rect) Translate(o Offset) Rect {
	return Rect{Min: r.Min.Add(o), Max: r.Max.Add(o)}
}

// Intersect returns the overlap of two rectangles, or the zero rect when
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	min := r.Min.Max(other.Min)
	max := r.Max.Min(other.Max)
	if min.X >= max.X || min.Y >= max.Y {
		return Rect{}
	}
	return Rect{Min: min, Max: max}
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(other Rect) Rect {
	return Rect{Min: r.Min.Min(other.Min), Max: r.Max.Max(other.Max)}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v %v]", r.Min, r.Max)
}

// Space is the constraint box a widget lays out against: a minimum and a
// maximum size. Layout must return a size within the space; returning a
// size outside it is reported as a warning, not an error.
type Space struct {
	Min Size
	Max Size
}

// spaceEpsilon absorbs float error when checking containment.
const spaceEpsilon = 0.0001

// NewSpace constructs a space from its bounds.
func NewSpace(min, max Size) Space {
	return Space{Min: min, Max: max}
}

// Unbounded is the space overlay layers are laid out against.
func Unbounded() Space {
	return Space{Max: SizeInfinite}
}

// Shrink reduces both bounds by a size, clamping at zero.
func (s Space) Shrink(by Size) Space {
	return Space{
		Min: s.Min.Sub(by).Max(Size{}),
		Max: s.Max.Sub(by).Max(Size{}),
	}
}

// Contains reports whether a size fits within the space.
func (s Space) Contains(size Size) bool {
	return size.Width >= s.Min.Width-spaceEpsilon &&
		size.Width <= s.Max.Width+spaceEpsilon &&
		size.Height >= s.Min.Height-spaceEpsilon &&
		size.Height <= s.Max.Height+spaceEpsilon
}

// Constrain clamps a size into the space.
func (s Space) Constrain(size Size) Size {
	return Size{
		Width:  math32.Min(math32.Max(size.Width, s.Min.Width), s.Max.Width),
		Height: math32.Min(math32.Max(size.Height, s.Min.Height), s.Max.Height),
	}
}

// Loosen returns the space with its minimum cleared.
func (s Space) Loosen() Space {
	return Space{Max: s.Max}
}
