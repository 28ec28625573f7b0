package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Size holds width and height dimensions in logical pixels.
type Size struct {
	Width  float32
	Height float32
}

// SizeInfinite is an unconstrained size, used as the max of an unbounded
// layout space.
var SizeInfinite = Size{Width: math32.Inf(1), Height: math32.Inf(1)}

// Sz constructs a size from its dimensions.
func Sz(width, height float32) Size {
	return Size{Width: width, Height: height}
}

// Area returns width times height.
func (s Size) Area() float32 {
	return s.Width * s.Height
}

// IsFinite reports whether both dimensions are finite.
func (s Size) IsFinite() bool {
	return !math32.IsInf(s.Width, 0) && !math32.IsInf(s.Height, 0) &&
		!math32.IsNaN(s.Width) && !math32.IsNaN(s.Height)
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the component-wise difference of two sizes.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// Min returns the component-wise minimum of two sizes.
func (s Size) Min(other Size) Size {
	return Size{
		Width:  math32.Min(s.Width, other.Width),
		Height: math32.Min(s.Height, other.Height),
	}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{
		Width:  math32.Max(s.Width, other.Width),
		Height: math32.Max(s.Height, other.Height),
	}
}

// PixelCeil returns the size aligned up to the device pixel grid.
// Sizes align up rather than to nearest so content is never clipped
// by a fractional trailing pixel.
func (s Size) PixelCeil(scale float32) Size {
	return Size{
		Width:  pixelCeil(s.Width, scale),
		Height: pixelCeil(s.Height, scale),
	}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Padding is a set of edge insets.
type Padding struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// PadAll constructs uniform padding.
func PadAll(v float32) Padding {
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}

// Size returns the total horizontal and vertical extent of the padding.
func (p Padding) Size() Size {
	return Size{Width: p.Left + p.Right, Height: p.Top + p.Bottom}
}

// Offset returns the top-left inset as an offset.
func (p Padding) Offset() Offset {
	return Offset{X: p.Left, Y: p.Top}
}
