package canvas

import "github.com/go-loom/loom/pkg/geometry"

// DisplayList is an immutable list of drawing operations that can be
// replayed onto any Canvas. It is the engine's reference Record backend
// and the canvas used by tests.
type DisplayList struct {
	ops  []Op
	size geometry.Size
}

// Ops returns the recorded operations in draw order.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Size returns the size the list was recorded at.
func (d *DisplayList) Size() geometry.Size {
	return d.size
}

// Replay executes the recorded operations onto the target canvas.
func (d *DisplayList) Replay(target Canvas) {
	for _, op := range d.ops {
		op.replay(target)
	}
}

// Op is a single recorded drawing operation.
type Op interface {
	replay(target Canvas)
}

// OpFill records a Fill call.
type OpFill struct {
	Rect  geometry.Rect
	Paint Paint
}

// OpFillRounded records a FillRounded call.
type OpFillRounded struct {
	Rect   geometry.Rect
	Radius BorderRadius
	Paint  Paint
}

// OpStrokeBorder records a StrokeBorder call.
type OpStrokeBorder struct {
	Rect   geometry.Rect
	Radius BorderRadius
	Width  BorderWidth
	Paint  Paint
}

// OpText records a DrawText call.
type OpText struct {
	Layout   *TextLayout
	Position geometry.Point
}

// OpVector records a DrawVector call.
type OpVector struct {
	Image  *VectorImage
	Bounds geometry.Rect
}

// OpTransform records a scoped transform and its inner operations.
type OpTransform struct {
	Affine geometry.Affine
	Inner  []Op
}

// OpClip records a scoped clip and its inner operations.
type OpClip struct {
	Clip  Clip
	Inner []Op
}

// OpLayer records a scoped opacity layer and its inner operations.
type OpLayer struct {
	Bounds geometry.Rect
	Alpha  float32
	Inner  []Op
}

// OpRecording records a DrawRecording call.
type OpRecording struct {
	Recording *Recording
}

func (o OpFill) replay(target Canvas)         { target.Fill(o.Rect, o.Paint) }
func (o OpFillRounded) replay(target Canvas)  { target.FillRounded(o.Rect, o.Radius, o.Paint) }
func (o OpStrokeBorder) replay(target Canvas) { target.StrokeBorder(o.Rect, o.Radius, o.Width, o.Paint) }
func (o OpText) replay(target Canvas)         { target.DrawText(o.Layout, o.Position) }
func (o OpVector) replay(target Canvas)       { target.DrawVector(o.Image, o.Bounds) }
func (o OpRecording) replay(target Canvas)    { target.DrawRecording(o.Recording) }

func (o OpTransform) replay(target Canvas) {
	target.Transform(o.Affine, func(inner Canvas) { replayAll(o.Inner, inner) })
}

func (o OpClip) replay(target Canvas) {
	target.Clip(o.Clip, func(inner Canvas) { replayAll(o.Inner, inner) })
}

func (o OpLayer) replay(target Canvas) {
	target.Layer(o.Bounds, o.Alpha, func(inner Canvas) { replayAll(o.Inner, inner) })
}

func replayAll(ops []Op, target Canvas) {
	for _, op := range ops {
		op.replay(target)
	}
}

// ListCanvas is a Canvas that records every operation into a DisplayList.
type ListCanvas struct {
	ops     []Op
	size    geometry.Size
	painter Painter
}

// NewListCanvas creates a recording canvas with the default painter.
func NewListCanvas(size geometry.Size) *ListCanvas {
	return &ListCanvas{size: size, painter: DefaultPainter()}
}

// List returns the operations recorded so far as a display list.
func (c *ListCanvas) List() *DisplayList {
	ops := make([]Op, len(c.ops))
	copy(ops, c.ops)
	return &DisplayList{ops: ops, size: c.size}
}

// Reset discards the recorded operations, keeping the canvas reusable
// across frames.
func (c *ListCanvas) Reset() {
	c.ops = c.ops[:0]
}

func (c *ListCanvas) Transform(t geometry.Affine, draw func(Canvas)) {
	inner := &ListCanvas{size: c.size, painter: c.painter}
	draw(inner)
	c.ops = append(c.ops, OpTransform{Affine: t, Inner: inner.ops})
}

func (c *ListCanvas) Clip(clip Clip, draw func(Canvas)) {
	inner := &ListCanvas{size: c.size, painter: c.painter}
	draw(inner)
	c.ops = append(c.ops, OpClip{Clip: clip, Inner: inner.ops})
}

func (c *ListCanvas) Layer(bounds geometry.Rect, alpha float32, draw func(Canvas)) {
	inner := &ListCanvas{size: c.size, painter: c.painter}
	draw(inner)
	c.ops = append(c.ops, OpLayer{Bounds: bounds, Alpha: alpha, Inner: inner.ops})
}

func (c *ListCanvas) Fill(rect geometry.Rect, paint Paint) {
	c.ops = append(c.ops, OpFill{Rect: rect, Paint: paint})
}

func (c *ListCanvas) FillRounded(rect geometry.Rect, radius BorderRadius, paint Paint) {
	c.ops = append(c.ops, OpFillRounded{Rect: rect, Radius: radius, Paint: paint})
}

func (c *ListCanvas) StrokeBorder(rect geometry.Rect, radius BorderRadius, width BorderWidth, paint Paint) {
	c.ops = append(c.ops, OpStrokeBorder{Rect: rect, Radius: radius, Width: width, Paint: paint})
}

func (c *ListCanvas) DrawText(layout *TextLayout, position geometry.Point) {
	c.ops = append(c.ops, OpText{Layout: layout, Position: position})
}

func (c *ListCanvas) DrawVector(img *VectorImage, bounds geometry.Rect) {
	c.ops = append(c.ops, OpVector{Image: img, Bounds: bounds})
}

func (c *ListCanvas) Record(size geometry.Size, scale float32, draw func(Canvas)) *Recording {
	inner := &ListCanvas{size: size, painter: c.painter}
	draw(inner)
	return NewRecording(size, scale, inner.List())
}

func (c *ListCanvas) DrawRecording(rec *Recording) {
	c.ops = append(c.ops, OpRecording{Recording: rec})
}

func (c *ListCanvas) Painter() Painter {
	return c.painter
}
