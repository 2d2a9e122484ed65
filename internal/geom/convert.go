package geom

import (
	"image"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/grindlemire/cake/internal/scalar"
)

// Number is any integer or floating-point type that can be converted into
// the float32 coordinates used by this package.
type Number interface {
	constraints.Integer | constraints.Float
}

// VectorOf converts coordinates of any numeric type into a Vector2.
func VectorOf[T Number](x, y T) Vector2 {
	return Vector2{X: float32(x), Y: float32(y)}
}

// RectOf converts a rectangle given in any numeric type, such as the integer
// cell rectangles of a terminal layout, into a normalized Rect2.
func RectOf[T Number](x, y, w, h T) Rect2 {
	return NewRect2(float32(x), float32(y), float32(w), float32(h))
}

// Vec2 returns v as an x/image f32.Vec2.
func (v Vector2) Vec2() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// FromVec2 converts an x/image f32.Vec2 into a Vector2.
func FromVec2(v f32.Vec2) Vector2 {
	return Vector2{X: v[0], Y: v[1]}
}

// Fixed returns v in 26.6 fixed point, rounded to the nearest 1/64.
func (v Vector2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(v.X), Y: toFixed(v.Y)}
}

// Fixed returns r in 26.6 fixed point with both corners rounded to the
// nearest 1/64.
func (r Rect2) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: r.Position().Fixed(),
		Max: Vector2{X: r.Right(), Y: r.Bottom()}.Fixed(),
	}
}

func toFixed(f float32) fixed.Int26_6 {
	return fixed.Int26_6(scalar.Round(f * 64))
}

// R2 returns v as a gonum r2.Vec.
func (v Vector2) R2() r2.Vec {
	return r2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

// FromR2 converts a gonum r2.Vec into a Vector2, narrowing to float32.
func FromR2(v r2.Vec) Vector2 {
	return Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// Box returns r as a gonum r2.Box spanning its top-left and bottom-right
// corners.
func (r Rect2) Box() r2.Box {
	return r2.Box{
		Min: r.Position().R2(),
		Max: Vector2{X: r.Right(), Y: r.Bottom()}.R2(),
	}
}

// FromBox converts a gonum r2.Box into a Rect2. Boxes whose corners are
// swapped are normalized rather than rejected.
func FromBox(b r2.Box) Rect2 {
	return RectOf(b.Min.X, b.Min.Y, b.Max.X-b.Min.X, b.Max.Y-b.Min.Y)
}

// Image returns the smallest integer rectangle covering r.
func (r Rect2) Image() image.Rectangle {
	return image.Rect(
		int(scalar.Floor(r.X)),
		int(scalar.Floor(r.Y)),
		int(scalar.Ceil(r.Right())),
		int(scalar.Ceil(r.Bottom())),
	)
}

// FromImage converts an integer rectangle into a Rect2.
func FromImage(r image.Rectangle) Rect2 {
	return RectOf(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}
