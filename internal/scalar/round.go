package scalar

// exactInt is the float32 magnitude above which every value is integral.
const exactInt = 1 << 23

// Trunc drops the fractional part of n, rounding toward zero.
func Trunc(n float32) float32 {
	if n >= exactInt || n <= -exactInt || n != n {
		return n
	}
	return float32(int32(n))
}

// Floor returns the greatest integral value <= n.
func Floor(n float32) float32 {
	floored := Trunc(n)
	if n <= 0 && floored != n {
		return floored - 1
	}
	return floored
}

// Ceil returns the least integral value >= n.
func Ceil(n float32) float32 {
	ceiled := Trunc(n)
	if n <= 0 || ceiled == n {
		return ceiled
	}
	return ceiled + 1
}

// Round returns the nearest integral value, with halves rounded away from
// zero: Round(1.5) == 2 and Round(-1.5) == -2.
func Round(n float32) float32 {
	if n <= 0 {
		return Trunc(n - 0.5)
	}
	return Trunc(n + 0.5)
}
