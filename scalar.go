// scalar.go re-exports the scalar kernel from internal/scalar.
package cake

import "github.com/grindlemire/cake/internal/scalar"

// Min returns the smaller of a and b.
func Min(a, b float32) float32 { return scalar.Min(a, b) }

// Max returns the larger of a and b.
func Max(a, b float32) float32 { return scalar.Max(a, b) }

// Sign returns -1 for n <= 0 and 1 otherwise.
func Sign(n float32) float32 { return scalar.Sign(n) }

// Abs returns the absolute value of n.
func Abs(n float32) float32 { return scalar.Abs(n) }

// Clamp limits n to [a, b].
func Clamp(n, a, b float32) float32 { return scalar.Clamp(n, a, b) }

// Wrap folds n into [a, b] by stepping whole range widths.
func Wrap(n, a, b float32) float32 { return scalar.Wrap(n, a, b) }

// Stepify snaps n to the nearest multiple of step.
func Stepify(n, step float32) float32 { return scalar.Stepify(n, step) }

// Trunc rounds n toward zero.
func Trunc(n float32) float32 { return scalar.Trunc(n) }

// Floor rounds n down.
func Floor(n float32) float32 { return scalar.Floor(n) }

// Ceil rounds n up.
func Ceil(n float32) float32 { return scalar.Ceil(n) }

// Round rounds n to the nearest integer, halves away from zero.
func Round(n float32) float32 { return scalar.Round(n) }

// Sqrt returns the square root of n by Newton iteration.
func Sqrt(n float32) float32 { return scalar.Sqrt(n) }

// Exp returns e**x from a ten-term series.
func Exp(x float32) float32 { return scalar.Exp(x) }

// Ln returns the natural logarithm of x > 0.
func Ln(x float32) float32 { return scalar.Ln(x) }

// Pow returns x**n.
func Pow(x, n float32) float32 { return scalar.Pow(x, n) }

// Lerp interpolates linearly from a to b by w.
func Lerp(a, b, w float32) float32 { return scalar.Lerp(a, b, w) }

// Smoothstep interpolates from a to b along a cubic curve.
func Smoothstep(a, b, w float32) float32 { return scalar.Smoothstep(a, b, w) }

// Smootherstep interpolates from a to b along a quintic curve.
func Smootherstep(a, b, w float32) float32 { return scalar.Smootherstep(a, b, w) }

// EaseInCubic returns w³.
func EaseInCubic(w float32) float32 { return scalar.EaseInCubic(w) }

// EaseOutCubic returns 1 - (1-w)³.
func EaseOutCubic(w float32) float32 { return scalar.EaseOutCubic(w) }

// EaseInOutCubic eases in for the first half of w and out for the second.
func EaseInOutCubic(w float32) float32 { return scalar.EaseInOutCubic(w) }

// Move steps a toward b by delta without overshooting.
func Move(a, b, delta float32) float32 { return scalar.Move(a, b, delta) }

// MoveWith eases a toward b; slowdown must not be zero.
func MoveWith(a, b, delta, slowdown float32) float32 {
	return scalar.MoveWith(a, b, delta, slowdown)
}
