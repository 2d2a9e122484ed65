package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRect2(t *testing.T) {
	type tc struct {
		x, y, w, h float32
		expected   Rect2
	}

	tests := map[string]tc{
		"positive extents": {
			x: 5, y: 10, w: 20, h: 15,
			expected: Rect2{X: 5, Y: 10, Width: 20, Height: 15},
		},
		"both extents negative": {
			x: 1, y: 1, w: -3, h: -3,
			expected: Rect2{X: -2, Y: -2, Width: 3, Height: 3},
		},
		"negative width only": {
			x: 0, y: 0, w: -4, h: 2,
			expected: Rect2{X: -4, Y: 0, Width: 4, Height: 2},
		},
		"negative height only": {
			x: 0, y: 0, w: 5, h: -2,
			expected: Rect2{X: 0, Y: -2, Width: 5, Height: 2},
		},
		"zero size": {
			x: 3, y: 3, w: 0, h: 0,
			expected: Rect2{X: 3, Y: 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NewRect2(tt.x, tt.y, tt.w, tt.h)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("NewRect2(%v, %v, %v, %v) mismatch (-want +got):\n%s", tt.x, tt.y, tt.w, tt.h, diff)
			}
		})
	}
}

func TestRect2_Accessors(t *testing.T) {
	r := NewRect2(5, 10, 20, 15)
	if got := r.Right(); got != 25 {
		t.Errorf("Right() = %v, want 25", got)
	}
	if got := r.Bottom(); got != 25 {
		t.Errorf("Bottom() = %v, want 25", got)
	}
	if got := r.Position(); got != NewVector2(5, 10) {
		t.Errorf("Position() = %v, want (5, 10)", got)
	}
	if got := r.Size(); got != NewVector2(20, 15) {
		t.Errorf("Size() = %v, want (20, 15)", got)
	}
	if got := r.String(); got != "[5 10 20 15]" {
		t.Errorf("String() = %q, want %q", got, "[5 10 20 15]")
	}
}

func TestRect2_HasPoint(t *testing.T) {
	r := NewRect2(1, 1, -3, -3)

	type tc struct {
		p        Vector2
		expected bool
	}

	tests := map[string]tc{
		"top-left corner":     {p: NewVector2(r.X, r.Y), expected: true},
		"bottom-right corner": {p: NewVector2(r.X+r.Width, r.Y+r.Height), expected: true},
		"center":              {p: NewVector2(-0.5, -0.5), expected: true},
		"on left edge":        {p: NewVector2(-2, 0), expected: true},
		"left of rect":        {p: NewVector2(-2.1, 0), expected: false},
		"below rect":          {p: NewVector2(0, 1.1), expected: false},
		"far away":            {p: NewVector2(50, 50), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.HasPoint(tt.p); got != tt.expected {
				t.Errorf("%v.HasPoint(%v) = %v, want %v", r, tt.p, got, tt.expected)
			}
		})
	}
}

func TestRect2_HasIntersection(t *testing.T) {
	r := NewRect2(1, 1, -3, -3)

	type tc struct {
		area     Rect2
		expected bool
	}

	tests := map[string]tc{
		"zero-area rect at own origin": {area: NewRect2(r.X, r.Y, 0, 0), expected: true},
		"itself":                       {area: r, expected: true},
		"overlapping":                  {area: NewRect2(0, 0, 5, 5), expected: true},
		"touching right edge":          {area: NewRect2(1, -2, 2, 2), expected: true},
		"touching corner":              {area: NewRect2(1, 1, 1, 1), expected: true},
		"contained":                    {area: NewRect2(-1, -1, 1, 1), expected: true},
		"disjoint":                     {area: NewRect2(5, 5, 1, 1), expected: false},
		"just past bottom":             {area: NewRect2(-2, 1.5, 3, 3), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.HasIntersection(tt.area); got != tt.expected {
				t.Errorf("%v.HasIntersection(%v) = %v, want %v", r, tt.area, got, tt.expected)
			}
			if got := tt.area.HasIntersection(r); got != tt.expected {
				t.Errorf("%v.HasIntersection(%v) (reversed) = %v, want %v", tt.area, r, got, tt.expected)
			}
		})
	}
}

func TestRect2_Intersection(t *testing.T) {
	type tc struct {
		a, b     Rect2
		expected Rect2
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect2(0, 0, 20, 20),
			b:        NewRect2(10, 10, 20, 20),
			expected: NewRect2(10, 10, 10, 10),
		},
		"same rect": {
			a:        NewRect2(10, 10, 20, 20),
			b:        NewRect2(10, 10, 20, 20),
			expected: NewRect2(10, 10, 20, 20),
		},
		"one inside other": {
			a:        NewRect2(0, 0, 100, 100),
			b:        NewRect2(20, 20, 30, 30),
			expected: NewRect2(20, 20, 30, 30),
		},
		"touching edges give a zero-width overlap": {
			a:        NewRect2(0, 0, 10, 10),
			b:        NewRect2(10, 0, 10, 10),
			expected: NewRect2(10, 0, 0, 10),
		},
		"disjoint": {
			a:        NewRect2(0, 0, 10, 10),
			b:        NewRect2(50, 50, 10, 10),
			expected: Rect2{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.a.Intersection(tt.b)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Intersection() mismatch (-want +got):\n%s", diff)
			}
			got2 := tt.b.Intersection(tt.a)
			if diff := cmp.Diff(tt.expected, got2); diff != "" {
				t.Errorf("Intersection() (reversed) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRect2_IntersectionStaysIntersecting(t *testing.T) {
	r := NewRect2(0, 0, 10, 10)
	for _, a := range []Rect2{
		NewRect2(5, 5, 10, 10),
		NewRect2(-5, -5, 6, 6),
		NewRect2(10, 10, 4, 4),
		NewRect2(2, 2, 1, 1),
		NewRect2(-3, 4, 20, 1),
	} {
		if !r.HasIntersection(a) {
			t.Fatalf("%v.HasIntersection(%v) = false, want true", r, a)
		}
		if in := r.Intersection(a); !r.HasIntersection(in) {
			t.Errorf("%v.HasIntersection(%v) = false after Intersection(%v)", r, in, a)
		}
	}
}

func TestRect2_Merger(t *testing.T) {
	type tc struct {
		a, b     Rect2
		expected Rect2
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect2(0, 0, 20, 20),
			b:        NewRect2(10, 10, 20, 20),
			expected: NewRect2(0, 0, 30, 30),
		},
		"disjoint rects": {
			a:        NewRect2(0, 0, 10, 10),
			b:        NewRect2(20, 20, 10, 10),
			expected: NewRect2(0, 0, 30, 30),
		},
		"one inside other": {
			a:        NewRect2(0, 0, 100, 100),
			b:        NewRect2(20, 20, 30, 30),
			expected: NewRect2(0, 0, 100, 100),
		},
		"zero-area rect still counts": {
			a:        NewRect2(10, 10, 20, 20),
			b:        Rect2{},
			expected: NewRect2(0, 0, 30, 30),
		},
		"negative coordinates": {
			a:        NewRect2(-10, -5, 5, 5),
			b:        NewRect2(0, 0, 5, 5),
			expected: NewRect2(-10, -5, 15, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.a.Merger(tt.b)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Merger() mismatch (-want +got):\n%s", diff)
			}
			got2 := tt.b.Merger(tt.a)
			if diff := cmp.Diff(tt.expected, got2); diff != "" {
				t.Errorf("Merger() (reversed) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
