package geom

import (
	"strconv"

	"github.com/grindlemire/cake/internal/scalar"
)

// Vector2 is a 2D point or displacement. Operations never mutate the
// receiver; they return a new value.
type Vector2 struct {
	X, Y float32
}

// NewVector2 creates a Vector2 from its components.
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the component-wise sum v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the component-wise product v * o.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns the component-wise quotient v / o.
func (v Vector2) Div(o Vector2) Vector2 {
	return Vector2{X: v.X / o.X, Y: v.Y / o.Y}
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 {
	return scalar.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vector2) Normalized() Vector2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Direction returns the unit vector pointing from v toward target.
func (v Vector2) Direction(target Vector2) Vector2 {
	return target.Sub(v).Normalized()
}

// Move steps v toward target. The step on each axis is the unit direction
// toward target scaled component-wise by delta, so diagonal motion is
// shared between the axes rather than applied in full to each. An axis
// that would reach or pass its target snaps to it.
func (v Vector2) Move(target, delta Vector2) Vector2 {
	offset := v.Direction(target).Mul(delta)
	result := target
	if scalar.Abs(target.X-v.X) > scalar.Abs(offset.X) {
		result.X = v.X + offset.X
	}
	if scalar.Abs(target.Y-v.Y) > scalar.Abs(offset.Y) {
		result.Y = v.Y + offset.Y
	}
	return result
}

// MoveWith eases v toward target independently on each axis.
// See scalar.MoveWith; slowdown must not be zero.
func (v Vector2) MoveWith(target, delta Vector2, slowdown float32) Vector2 {
	return Vector2{
		X: scalar.MoveWith(v.X, target.X, delta.X, slowdown),
		Y: scalar.MoveWith(v.Y, target.Y, delta.Y, slowdown),
	}
}

// String formats v as "(x, y)".
func (v Vector2) String() string {
	return "(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ")"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
