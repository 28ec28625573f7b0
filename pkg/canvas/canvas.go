package canvas

import "github.com/go-loom/loom/pkg/geometry"

// Canvas records or renders drawing commands. Transform, clip and layer
// state is scoped: the state applies to everything drawn inside the
// callback and is restored afterwards.
type Canvas interface {
	// Transform applies an affine transform for the scope of draw.
	Transform(t geometry.Affine, draw func(Canvas))

	// Clip restricts drawing to a rounded rect for the scope of draw.
	Clip(clip Clip, draw func(Canvas))

	// Layer composites everything drawn inside draw with the given
	// opacity.
	Layer(bounds geometry.Rect, alpha float32, draw func(Canvas))

	// Fill fills a rectangle.
	Fill(rect geometry.Rect, paint Paint)

	// FillRounded fills a rounded rectangle.
	FillRounded(rect geometry.Rect, radius BorderRadius, paint Paint)

	// StrokeBorder strokes the border of a rounded rectangle.
	StrokeBorder(rect geometry.Rect, radius BorderRadius, width BorderWidth, paint Paint)

	// DrawText draws a pre-shaped paragraph with its top-left at position.
	DrawText(layout *TextLayout, position geometry.Point)

	// DrawVector draws an embedded vector image within bounds.
	DrawVector(img *VectorImage, bounds geometry.Rect)

	// Record renders draw into an offscreen replayable buffer sized for
	// the given logical size and device scale. Returns nil if the
	// backend cannot record.
	Record(size geometry.Size, scale float32, draw func(Canvas)) *Recording

	// DrawRecording replays a previously recorded buffer.
	DrawRecording(rec *Recording)

	// Painter returns the text shaping capability of this canvas.
	Painter() Painter
}

// Painter shapes text during layout, before any drawing happens.
type Painter interface {
	// ShapeText measures and shapes a paragraph. maxWidth bounds line
	// wrapping; pass an infinite width for a single line.
	ShapeText(text string, style TextStyle, maxWidth float32) *TextLayout
}

// Recording is a replayable draw-command buffer standing in for a widget
// subtree's rendering.
type Recording struct {
	// Size in logical pixels.
	Size geometry.Size

	// Width and Height in device pixels.
	Width  uint32
	Height uint32

	// Memory is the estimated footprint in bytes, usually
	// width * height * 4.
	Memory uint64

	// Payload is the backend-specific replay data.
	Payload any
}

// NewRecording computes device dimensions and the memory estimate for a
// recording of the given logical size at a device scale.
func NewRecording(size geometry.Size, scale float32, payload any) *Recording {
	width := uint32(size.Width * scale)
	height := uint32(size.Height * scale)
	return &Recording{
		Size:    size,
		Width:   width,
		Height:  height,
		Memory:  uint64(width) * uint64(height) * 4,
		Payload: payload,
	}
}
