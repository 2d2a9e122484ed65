package geom

import "github.com/grindlemire/cake/internal/scalar"

// Rect2 is an axis-aligned rectangle. X and Y are the top-left corner;
// Width and Height are never negative.
type Rect2 struct {
	X, Y          float32
	Width, Height float32
}

// NewRect2 creates a Rect2, folding a negative width or height into the
// origin so the extents come out non-negative: NewRect2(1, 1, -3, -3) is the
// rectangle at (-2, -2) with size 3x3.
func NewRect2(x, y, w, h float32) Rect2 {
	r := Rect2{X: x, Y: y, Width: w, Height: h}
	if w < 0 {
		r.X = x + w
		r.Width = -w
	}
	if h < 0 {
		r.Y = y + h
		r.Height = -h
	}
	return r
}

// Right returns the x-coordinate of the right edge.
func (r Rect2) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect2) Bottom() float32 {
	return r.Y + r.Height
}

// Position returns the top-left corner.
func (r Rect2) Position() Vector2 {
	return Vector2{X: r.X, Y: r.Y}
}

// Size returns the width and height as a vector.
func (r Rect2) Size() Vector2 {
	return Vector2{X: r.Width, Y: r.Height}
}

// HasPoint reports whether p lies inside r. All four edges are inside.
func (r Rect2) HasPoint(p Vector2) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// HasIntersection reports whether r and area overlap. Rectangles that only
// touch along an edge or corner count as overlapping.
func (r Rect2) HasIntersection(area Rect2) bool {
	return r.Right() >= area.X && r.X <= area.Right() &&
		r.Bottom() >= area.Y && r.Y <= area.Bottom()
}

// Intersection returns the overlap of r and area.
// If they don't overlap, returns the zero Rect2.
func (r Rect2) Intersection(area Rect2) Rect2 {
	if !r.HasIntersection(area) {
		return Rect2{}
	}
	x := scalar.Max(r.X, area.X)
	y := scalar.Max(r.Y, area.Y)
	return NewRect2(
		x,
		y,
		scalar.Min(r.Right(), area.Right())-x,
		scalar.Min(r.Bottom(), area.Bottom())-y,
	)
}

// Merger returns the smallest rectangle containing both r and area.
func (r Rect2) Merger(area Rect2) Rect2 {
	x := scalar.Min(r.X, area.X)
	y := scalar.Min(r.Y, area.Y)
	return NewRect2(
		x,
		y,
		scalar.Max(r.Right(), area.Right())-x,
		scalar.Max(r.Bottom(), area.Bottom())-y,
	)
}

// String formats r as "[x y width height]".
func (r Rect2) String() string {
	return "[" + formatFloat(r.X) + " " + formatFloat(r.Y) + " " +
		formatFloat(r.Width) + " " + formatFloat(r.Height) + "]"
}
