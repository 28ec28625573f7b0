package geometry

import "github.com/chewxy/math32"

// Affine is a 2D affine transform: a linear part followed by a translation.
// Applying it to a point computes matrix * p + offset.
type Affine struct {
	XX, XY float32
	YX, YY float32
	Offset Offset
}

// Identity is the transform that leaves points unchanged.
func Identity() Affine {
	return Affine{XX: 1, YY: 1}
}

// Translate constructs a pure translation.
func Translate(offset Offset) Affine {
	return Affine{XX: 1, YY: 1, Offset: offset}
}

// Rotate constructs a rotation around the origin by angle radians.
func Rotate(angle float32) Affine {
	sin := math32.Sin(angle)
	cos := math32.Cos(angle)
	return Affine{XX: cos, XY: -sin, YX: sin, YY: cos}
}

// ScaleBy constructs a scale around the origin.
func ScaleBy(sx, sy float32) Affine {
	return Affine{XX: sx, YY: sy}
}

// Mul composes two transforms; the result applies other first, then a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		XX: a.XX*other.XX + a.XY*other.YX,
		XY: a.XX*other.XY + a.XY*other.YY,
		YX: a.YX*other.XX + a.YY*other.YX,
		YY: a.YX*other.XY + a.YY*other.YY,
		Offset: Offset{
			X: a.XX*other.Offset.X + a.XY*other.Offset.Y + a.Offset.X,
			Y: a.YX*other.Offset.X + a.YY*other.Offset.Y + a.Offset.Y,
		},
	}
}

// Apply transforms a point.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a.XX*p.X + a.XY*p.Y + a.Offset.X,
		Y: a.YX*p.X + a.YY*p.Y + a.Offset.Y,
	}
}

// ApplyRect transforms a rectangle and returns the axis-aligned bounds of
// the result.
func (a Affine) ApplyRect(r Rect) Rect {
	p0 := a.Apply(r.Min)
	p1 := a.Apply(Point{X: r.Max.X, Y: r.Min.Y})
	p2 := a.Apply(Point{X: r.Min.X, Y: r.Max.Y})
	p3 := a.Apply(r.Max)
	return Rect{
		Min: p0.Min(p1).Min(p2).Min(p3),
		Max: p0.Max(p1).Max(p2).Max(p3),
	}
}

// Inverse returns the transform that undoes a. A singular transform
// inverts to the identity.
func (a Affine) Inverse() Affine {
	det := a.XX*a.YY - a.XY*a.YX
	if det == 0 || math32.IsNaN(det) {
		return Identity()
	}
	inv := 1 / det
	m := Affine{
		XX: a.YY * inv,
		XY: -a.XY * inv,
		YX: -a.YX * inv,
		YY: a.XX * inv,
	}
	m.Offset = Offset{
		X: -(m.XX*a.Offset.X + m.XY*a.Offset.Y),
		Y: -(m.YX*a.Offset.X + m.YY*a.Offset.Y),
	}
	return m
}

// IsIdentity reports whether the transform is exactly the identity.
func (a Affine) IsIdentity() bool {
	return a == Identity()
}
