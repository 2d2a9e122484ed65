package scalar

// Lerp interpolates linearly from a to b by weight w.
func Lerp(a, b, w float32) float32 {
	return a + (b-a)*w
}

// Smoothstep interpolates from a to b along the cubic 3w² - 2w³.
func Smoothstep(a, b, w float32) float32 {
	v := w * w * (3 - 2*w)
	return Lerp(a, b, v)
}

// Smootherstep interpolates from a to b along the quintic 6w⁵ - 15w⁴ + 10w³,
// which also has zero second derivative at both ends.
func Smootherstep(a, b, w float32) float32 {
	v := w * w * w * (w*(w*6-15) + 10)
	return Lerp(a, b, v)
}

// EaseInCubic accelerates from zero velocity: w³.
func EaseInCubic(w float32) float32 {
	return Pow(w, 3)
}

// EaseOutCubic decelerates to zero velocity: 1 - (1-w)³.
func EaseOutCubic(w float32) float32 {
	return 1 - Pow(1-w, 3)
}

// EaseInOutCubic accelerates until the halfway point, then decelerates.
func EaseInOutCubic(w float32) float32 {
	if w < 0.5 {
		return 4 * Pow(w, 3)
	}
	return 1 - Pow(-2*w+2, 3)/2
}
