package transition

import (
	"github.com/go-loom/loom/pkg/canvas"
	"github.com/go-loom/loom/pkg/geometry"
)

// LerpFloat interpolates between two float32 values.
func LerpFloat(start, end, x float32) float32 {
	return start + (end-start)*x
}

// LerpSize interpolates width and height independently.
func LerpSize(start, end geometry.Size, x float32) geometry.Size {
	return geometry.Size{
		Width:  LerpFloat(start.Width, end.Width, x),
		Height: LerpFloat(start.Height, end.Height, x),
	}
}

// LerpOffset interpolates both axes independently.
func LerpOffset(start, end geometry.Offset, x float32) geometry.Offset {
	return geometry.Offset{
		X: LerpFloat(start.X, end.X, x),
		Y: LerpFloat(start.Y, end.Y, x),
	}
}

// LerpColor interpolates each channel independently.
func LerpColor(start, end canvas.Color, x float32) canvas.Color {
	return canvas.Color{
		R: LerpFloat(start.R, end.R, x),
		G: LerpFloat(start.G, end.G, x),
		B: LerpFloat(start.B, end.B, x),
		A: LerpFloat(start.A, end.A, x),
	}
}

// LerpPadding interpolates each side independently.
func LerpPadding(start, end geometry.Padding, x float32) geometry.Padding {
	return geometry.Padding{
		Left:   LerpFloat(start.Left, end.Left, x),
		Top:    LerpFloat(start.Top, end.Top, x),
		Right:  LerpFloat(start.Right, end.Right, x),
		Bottom: LerpFloat(start.Bottom, end.Bottom, x),
	}
}

// Float returns a Transitioned float32.
func Float(value float32, tr Transition) Transitioned[float32] {
	return New(value, tr, LerpFloat)
}

// SizeOf returns a Transitioned Size.
func SizeOf(value geometry.Size, tr Transition) Transitioned[geometry.Size] {
	return New(value, tr, LerpSize)
}

// OffsetOf returns a Transitioned Offset.
func OffsetOf(value geometry.Offset, tr Transition) Transitioned[geometry.Offset] {
	return New(value, tr, LerpOffset)
}

// ColorOf returns a Transitioned Color.
func ColorOf(value canvas.Color, tr Transition) Transitioned[canvas.Color] {
	return New(value, tr, LerpColor)
}

// PaddingOf returns a Transitioned Padding.
func PaddingOf(value geometry.Padding, tr Transition) Transitioned[geometry.Padding] {
	return New(value, tr, LerpPadding)
}
