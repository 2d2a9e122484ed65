package scalar

// Min returns the smaller of a and b. Ties return a.
func Min(a, b float32) float32 {
	if a <= b {
		return a
	}
	return b
}

// Max returns the larger of a and b. Ties return b.
func Max(a, b float32) float32 {
	if a <= b {
		return b
	}
	return a
}

// Sign returns -1 for n <= 0 and 1 otherwise.
// Zero is treated as negative: Sign(0) == -1.
func Sign(n float32) float32 {
	if n <= 0 {
		return -1
	}
	return 1
}

// Abs returns the absolute value of n.
func Abs(n float32) float32 {
	if n <= 0 {
		return -n
	}
	return n
}

// Clamp returns a when n <= a, b when n >= b, and n otherwise.
func Clamp(n, a, b float32) float32 {
	switch {
	case n <= a:
		return a
	case n >= b:
		return b
	default:
		return n
	}
}

// Wrap folds n into [a, b] by repeatedly adding or subtracting the range
// width. The cost grows with the distance of n from the range.
//
// A degenerate range (b <= a) returns a. If a step is lost to float32
// rounding, n is too far out for stepping to make progress and the result
// is Clamp(n, a, b).
func Wrap(n, a, b float32) float32 {
	if n >= a && n <= b {
		return n
	}
	delta := b - a
	if delta <= 0 {
		return a
	}
	result := n
	for result < a {
		next := result + delta
		if next == result {
			return Clamp(n, a, b)
		}
		result = next
	}
	for result > b {
		next := result - delta
		if next == result {
			return Clamp(n, a, b)
		}
		result = next
	}
	return result
}

// Stepify snaps n to the nearest multiple of step.
func Stepify(n, step float32) float32 {
	return step * Round(n/step)
}
