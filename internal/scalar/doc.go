// Package scalar implements the float32 numeric kernel used by the geometry
// types: min/max/sign/abs/clamp, truncation-based floor/ceil/round, a Newton
// square root, series-based exp/ln/pow, wrapping and stepping, interpolation
// and easing curves, and move-toward helpers.
//
// Every function is pure and allocation-free. Inputs outside a function's
// documented domain produce implementation-defined float results rather than
// errors; callers validate preconditions themselves.
package scalar
