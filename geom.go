// geom.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package cake

import (
	"image"

	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/grindlemire/cake/internal/geom"
)

// Vector2 is a 2D point or displacement with value semantics.
type Vector2 = geom.Vector2

// Rect2 is an axis-aligned rectangle with non-negative width and height.
type Rect2 = geom.Rect2

// Anchor names one of nine reference positions on a rectangle.
type Anchor = geom.Anchor

const (
	AnchorTopLeft     = geom.AnchorTopLeft
	AnchorTop         = geom.AnchorTop
	AnchorTopRight    = geom.AnchorTopRight
	AnchorCenterLeft  = geom.AnchorCenterLeft
	AnchorCenter      = geom.AnchorCenter
	AnchorCenterRight = geom.AnchorCenterRight
	AnchorBottomLeft  = geom.AnchorBottomLeft
	AnchorBottom      = geom.AnchorBottom
	AnchorBottomRight = geom.AnchorBottomRight
)

// NewVector2 creates a Vector2 from its components.
func NewVector2(x, y float32) Vector2 {
	return geom.NewVector2(x, y)
}

// NewRect2 creates a Rect2, folding negative extents into the origin.
func NewRect2(x, y, w, h float32) Rect2 {
	return geom.NewRect2(x, y, w, h)
}

// Number is any integer or floating-point coordinate type.
type Number = geom.Number

// VectorOf converts coordinates of any numeric type into a Vector2.
func VectorOf[T Number](x, y T) Vector2 {
	return geom.VectorOf(x, y)
}

// RectOf converts a rectangle in any numeric type into a normalized Rect2.
func RectOf[T Number](x, y, w, h T) Rect2 {
	return geom.RectOf(x, y, w, h)
}

// FromVec2 converts an x/image f32.Vec2 into a Vector2.
func FromVec2(v f32.Vec2) Vector2 {
	return geom.FromVec2(v)
}

// FromR2 converts a gonum r2.Vec into a Vector2.
func FromR2(v r2.Vec) Vector2 {
	return geom.FromR2(v)
}

// FromBox converts a gonum r2.Box into a Rect2.
func FromBox(b r2.Box) Rect2 {
	return geom.FromBox(b)
}

// FromImage converts an integer rectangle into a Rect2.
func FromImage(r image.Rectangle) Rect2 {
	return geom.FromImage(r)
}
