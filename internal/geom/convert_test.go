package geom

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestVectorOf(t *testing.T) {
	assert.Equal(t, NewVector2(3, 4), VectorOf(3, 4))
	assert.Equal(t, NewVector2(-1, 2), VectorOf[int8](-1, 2))
	assert.Equal(t, NewVector2(0.5, 1.5), VectorOf(0.5, 1.5))
}

func TestRectOf(t *testing.T) {
	assert.Equal(t, NewRect2(-2, -2, 3, 3), RectOf(1, 1, -3, -3))
	assert.Equal(t, NewRect2(1, 2, 3, 4), RectOf[uint16](1, 2, 3, 4))
	assert.Equal(t, NewRect2(0, 0, 2.5, 1), RectOf(0.0, 0.0, 2.5, 1.0))
}

func TestVector2_Vec2(t *testing.T) {
	v := NewVector2(1.5, -2)
	assert.Equal(t, f32.Vec2{1.5, -2}, v.Vec2())
	assert.Equal(t, v, FromVec2(v.Vec2()))
}

func TestVector2_Fixed(t *testing.T) {
	type tc struct {
		v        Vector2
		expected fixed.Point26_6
	}

	tests := map[string]tc{
		"integral":       {v: NewVector2(1, 2), expected: fixed.P(1, 2)},
		"fractional":     {v: NewVector2(1.5, -0.25), expected: fixed.Point26_6{X: 96, Y: -16}},
		"rounds to 1/64": {v: NewVector2(0.01, 0.02), expected: fixed.Point26_6{X: 1, Y: 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.v.Fixed(); got != tt.expected {
				t.Errorf("%v.Fixed() = %v, want %v", tt.v, got, tt.expected)
			}
		})
	}
}

func TestRect2_Fixed(t *testing.T) {
	got := NewRect2(1, 2, 3, 4).Fixed()
	want := fixed.R(1, 2, 4, 6)
	if got != want {
		t.Errorf("Fixed() = %v, want %v", got, want)
	}
}

func TestVector2_R2(t *testing.T) {
	v := NewVector2(3, -4)
	assert.Equal(t, r2.Vec{X: 3, Y: -4}, v.R2())
	assert.Equal(t, v, FromR2(v.R2()))
}

func TestVector2_LengthMatchesR2Norm(t *testing.T) {
	for _, v := range []Vector2{
		NewVector2(1, 1),
		NewVector2(0.2, 0.3),
		NewVector2(-12.5, 7),
		NewVector2(1000, 0.001),
		NewVector2(1e-3, 2e-3),
	} {
		want := r2.Norm(v.R2())
		assert.InEpsilon(t, want, v.Length(), 1e-6, "%v.Length()", v)
	}
}

func TestRect2_Box(t *testing.T) {
	r := NewRect2(1, 2, 3, 4)
	want := r2.Box{Min: r2.Vec{X: 1, Y: 2}, Max: r2.Vec{X: 4, Y: 6}}
	assert.Equal(t, want, r.Box())
	assert.Equal(t, r, FromBox(r.Box()))

	swapped := r2.Box{Min: r2.Vec{X: 4, Y: 6}, Max: r2.Vec{X: 1, Y: 2}}
	assert.Equal(t, r, FromBox(swapped))
}

func TestRect2_Image(t *testing.T) {
	type tc struct {
		rect     Rect2
		expected image.Rectangle
	}

	tests := map[string]tc{
		"integral":          {rect: NewRect2(1, 2, 3, 4), expected: image.Rect(1, 2, 4, 6)},
		"fractional covers": {rect: NewRect2(0.5, 1.2, 2, 2), expected: image.Rect(0, 1, 3, 4)},
		"negative origin":   {rect: NewRect2(-1.5, -0.5, 1, 1), expected: image.Rect(-2, -1, 0, 1)},
		"empty":             {rect: Rect2{}, expected: image.Rectangle{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Image(); got != tt.expected {
				t.Errorf("%v.Image() = %v, want %v", tt.rect, got, tt.expected)
			}
		})
	}
}

func TestFromImage(t *testing.T) {
	assert.Equal(t, NewRect2(1, 2, 4, 5), FromImage(image.Rect(1, 2, 5, 7)))
	assert.Equal(t, NewRect2(1, 2, 4, 5), FromImage(image.Rect(5, 7, 1, 2)))
}
