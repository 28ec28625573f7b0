// Package canvas defines the drawing capability the engine paints through.
// The engine never rasterizes; it issues commands to a Canvas supplied by
// the host, and records sub-trees into replayable buffers.
package canvas

import "github.com/go-loom/loom/pkg/geometry"

// Color is a straight-alpha RGBA color with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
)

// RGB constructs an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Paint describes how geometry is filled.
type Paint struct {
	Color Color
	// Blur is a gaussian blur sigma applied to the fill, zero for none.
	Blur float32
}

// BorderRadius holds per-corner radii for a rounded rectangle.
type BorderRadius struct {
	TopLeft     float32
	TopRight    float32
	BottomRight float32
	BottomLeft  float32
}

// RadiusAll constructs a uniform border radius.
func RadiusAll(r float32) BorderRadius {
	return BorderRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// BorderWidth holds per-edge stroke widths for a rounded rect border.
type BorderWidth struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// WidthAll constructs a uniform border width.
func WidthAll(w float32) BorderWidth {
	return BorderWidth{Left: w, Top: w, Right: w, Bottom: w}
}

// Clip restricts drawing to a rounded rectangle in local coordinates.
type Clip struct {
	Rect   geometry.Rect
	Radius BorderRadius
}

// Contains reports whether a local-space point falls inside the clip
// rectangle. Corner radii are ignored for hit testing.
func (c Clip) Contains(p geometry.Point) bool {
	return c.Rect.Contains(p)
}

// VectorImage is an embedded vector graphic. The payload is
// backend-specific; the engine only routes it to the canvas.
type VectorImage struct {
	Size    geometry.Size
	Payload any
}
