// Package geom provides the float32 2D value types built on the scalar
// kernel: Vector2 for points and displacements, Rect2 for axis-aligned
// rectangles, and the Anchor enumeration used by layout code.
//
// Rect2 keeps its width and height non-negative. Its edge operations grow
// or shrink one side in place and return the strip that was added or
// removed as a separate rectangle. Types are re-exported through the root
// cake package for public consumption.
package geom
