package geom

import "github.com/grindlemire/cake/internal/scalar"

// Edge operations resize one side of a rectangle in place and return the
// strip that was added or removed. They need exclusive access to the
// receiver and are not safe for concurrent use on the same Rect2.

// AddLeft moves the left edge out by amount and returns the added strip.
func (r *Rect2) AddLeft(amount float32) Rect2 {
	r.X -= amount
	r.Width += amount
	delta := NewRect2(r.X, r.Y, amount, r.Height)
	r.normalize()
	return delta
}

// AddRight moves the right edge out by amount and returns the added strip.
func (r *Rect2) AddRight(amount float32) Rect2 {
	right := r.Right()
	r.Width += amount
	r.normalize()
	return NewRect2(right, r.Y, amount, r.Height)
}

// AddTop moves the top edge out by amount and returns the added strip.
func (r *Rect2) AddTop(amount float32) Rect2 {
	r.Y -= amount
	r.Height += amount
	delta := NewRect2(r.X, r.Y, r.Width, amount)
	r.normalize()
	return delta
}

// AddBottom moves the bottom edge out by amount and returns the added strip.
func (r *Rect2) AddBottom(amount float32) Rect2 {
	bottom := r.Bottom()
	r.Height += amount
	r.normalize()
	return NewRect2(r.X, bottom, r.Width, amount)
}

// SubLeft moves the left edge in by amount, stopping at the right edge, and
// returns the removed strip. The strip is always amount wide, even when the
// rectangle had less width than that left to give.
func (r *Rect2) SubLeft(amount float32) Rect2 {
	x := r.X
	r.X = scalar.Min(r.X+amount, r.Right())
	r.Width = scalar.Max(r.Width-amount, 0)
	return NewRect2(x, r.Y, amount, r.Height)
}

// SubRight moves the right edge in by amount, stopping at the left edge, and
// returns the removed strip, which starts at the new right edge and is
// always amount wide.
func (r *Rect2) SubRight(amount float32) Rect2 {
	r.Width = scalar.Max(r.Width-amount, 0)
	return NewRect2(r.Right(), r.Y, amount, r.Height)
}

// SubTop moves the top edge in by amount, stopping at the bottom edge, and
// returns the removed strip, which is always amount tall.
func (r *Rect2) SubTop(amount float32) Rect2 {
	y := r.Y
	r.Y = scalar.Min(r.Y+amount, r.Bottom())
	r.Height = scalar.Max(r.Height-amount, 0)
	return NewRect2(r.X, y, r.Width, amount)
}

// SubBottom moves the bottom edge in by amount, stopping at the top edge,
// and returns the removed strip, which starts at the new bottom edge and is
// always amount tall.
func (r *Rect2) SubBottom(amount float32) Rect2 {
	r.Height = scalar.Max(r.Height-amount, 0)
	return NewRect2(r.X, r.Bottom(), r.Width, amount)
}

// AddLeftRight grows both horizontal sides by amount.
func (r *Rect2) AddLeftRight(amount float32) {
	r.AddLeft(amount)
	r.AddRight(amount)
}

// AddTopBottom grows both vertical sides by amount.
func (r *Rect2) AddTopBottom(amount float32) {
	r.AddTop(amount)
	r.AddBottom(amount)
}

// AddAll grows every side by amount.
func (r *Rect2) AddAll(amount float32) {
	r.AddLeftRight(amount)
	r.AddTopBottom(amount)
}

// SubLeftRight shrinks both horizontal sides by amount.
func (r *Rect2) SubLeftRight(amount float32) {
	r.SubLeft(amount)
	r.SubRight(amount)
}

// SubTopBottom shrinks both vertical sides by amount.
func (r *Rect2) SubTopBottom(amount float32) {
	r.SubTop(amount)
	r.SubBottom(amount)
}

// SubAll shrinks every side by amount.
func (r *Rect2) SubAll(amount float32) {
	r.SubLeftRight(amount)
	r.SubTopBottom(amount)
}

// LeftStrip returns the strip of width amount along the left side of r.
// r itself is not modified.
func (r Rect2) LeftStrip(amount float32) Rect2 {
	return r.SubLeft(amount)
}

// RightStrip returns the strip of width amount along the right side of r.
// r itself is not modified.
func (r Rect2) RightStrip(amount float32) Rect2 {
	return r.SubRight(amount)
}

// TopStrip returns the strip of height amount along the top of r.
// r itself is not modified.
func (r Rect2) TopStrip(amount float32) Rect2 {
	return r.SubTop(amount)
}

// BottomStrip returns the strip of height amount along the bottom of r.
// r itself is not modified.
func (r Rect2) BottomStrip(amount float32) Rect2 {
	return r.SubBottom(amount)
}

// normalize restores non-negative extents after a negative grow amount.
func (r *Rect2) normalize() {
	*r = NewRect2(r.X, r.Y, r.Width, r.Height)
}
