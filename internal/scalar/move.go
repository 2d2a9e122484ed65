package scalar

// Move steps a toward b by delta. When b is within |delta| of a the result
// is exactly b, so repeated calls settle on the target instead of
// overshooting it.
func Move(a, b, delta float32) float32 {
	if Abs(b-a) > Abs(delta) {
		return a + Sign(b-a)*delta
	}
	return b
}

// MoveWith eases a toward b. Each call covers 1/slowdown of the remaining
// distance, scaled by delta (typically a frame time). Larger slowdown values
// approach more gently. slowdown must not be zero.
func MoveWith(a, b, delta, slowdown float32) float32 {
	target := (a*(slowdown-1) + b) / slowdown
	return a + (target-a)*delta
}
