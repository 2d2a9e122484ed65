// Package cake provides a small float32 math kernel and 2D geometry types.
//
// Users import this single package for the complete public API: scalar
// helpers (rounding, Newton square root, series exp/ln/pow, wrapping,
// interpolation and easing, move-toward), Vector2, Rect2 with its edge
// operations, the Anchor enumeration, and conversions to and from
// image, x/image and gonum geometry types.
//
// Nothing in this package allocates or returns errors. Functions outside
// their documented domain produce implementation-defined float results.
package cake
