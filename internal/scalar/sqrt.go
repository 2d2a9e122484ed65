package scalar

import "math"

// Sqrt returns the square root of n using Newton-Raphson iteration seeded
// with n/2, or with n itself for the smallest subnormals where n/2 rounds to
// zero. Iteration stops when two successive iterates are identical.
//
// After the first step every iterate sits at or above the root and the
// sequence descends, so a step that fails to descend means float32 rounding
// has bottomed out; that also ends the loop. This bounds the iteration for
// every non-negative finite input.
//
// Sqrt(0) is 0. Infinities and NaN are returned unchanged and negative
// inputs return NaN.
func Sqrt(n float32) float32 {
	switch {
	case n == 0 || n != n || n > math.MaxFloat32:
		return n
	case n < 0:
		return float32(math.NaN())
	}

	result := n / 2
	if result == 0 {
		result = n
	}
	var prev float32
	for step := 0; result != prev; step++ {
		next := (n/result + result) / 2
		if step > 0 && next >= result {
			break
		}
		prev, result = result, next
	}
	return result
}
