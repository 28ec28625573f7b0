// Package geometry provides the value types the engine is measured in:
// points, offsets, sizes, rectangles, affine transforms, and layout space.
// All coordinates are float32 logical pixels.
package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Point is a position in 2D space.
type Point struct {
	X float32
	Y float32
}

// Pt constructs a point from its coordinates.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by an offset.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset from other to p.
func (p Point) Sub(other Point) Offset {
	return Offset{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(other Point) float32 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// Min returns the component-wise minimum of two points.
func (p Point) Min(other Point) Point {
	return Point{X: math32.Min(p.X, other.X), Y: math32.Min(p.Y, other.Y)}
}

// Max returns the component-wise maximum of two points.
func (p Point) Max(other Point) Point {
	return Point{X: math32.Max(p.X, other.X), Y: math32.Max(p.Y, other.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Offset is a displacement vector in 2D space.
type Offset struct {
	X float32
	Y float32
}

// Off constructs an offset from its components.
func Off(x, y float32) Offset {
	return Offset{X: x, Y: y}
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Neg returns the offset pointing the opposite way.
func (o Offset) Neg() Offset {
	return Offset{X: -o.X, Y: -o.Y}
}

// Scale returns the offset multiplied by a scalar.
func (o Offset) Scale(f float32) Offset {
	return Offset{X: o.X * f, Y: o.Y * f}
}

// Length returns the euclidean length of the offset.
func (o Offset) Length() float32 {
	return math32.Sqrt(o.X*o.X + o.Y*o.Y)
}

// PixelRound returns the offset aligned to the device pixel grid,
// rounding each component to the nearest pixel at the given scale.
func (o Offset) PixelRound(scale float32) Offset {
	return Offset{X: pixelRound(o.X, scale), Y: pixelRound(o.Y, scale)}
}

func (o Offset) String() string {
	return fmt.Sprintf("(%g, %g)", o.X, o.Y)
}

// pixelRound aligns a coordinate to the nearest device pixel.
func pixelRound(v, scale float32) float32 {
	return math32.Floor(v*scale+0.5) / scale
}

// pixelCeil aligns a coordinate to the next device pixel.
func pixelCeil(v, scale float32) float32 {
	return math32.Ceil(v*scale) / scale
}
