package scalar

import "math"

const (
	// expTerms is the number of Maclaurin terms summed by Exp.
	expTerms = 10
	// lnTerms is the number of odd-power terms summed by Ln.
	lnTerms = 9
)

// Exp returns e**x from the first ten terms of its Maclaurin series,
// sum(x^i / i!) for i in [0, 9]. Precision is fixed by the term count and
// degrades as |x| grows.
func Exp(x float32) float32 {
	result := float32(1)
	term := float32(1)
	for i := 1; i < expTerms; i++ {
		term *= x / float32(i)
		result += term
	}
	return result
}

// Ln returns the natural logarithm of x from the series
// 2 * sum(u^(2i-1) / (2i-1)) for i in [1, 9], where u = (x-1)/(x+1).
//
// x must be positive. The series converges fastest near 1 and loses
// precision as x moves away from it.
func Ln(x float32) float32 {
	u := (x - 1) / (x + 1)
	u2 := u * u
	power := u
	var sum float32
	for i := 1; i <= lnTerms; i++ {
		sum += power / float32(2*i-1)
		power *= u2
	}
	return 2 * sum
}

// Pow returns x**n. The exponent is split into its truncated integer part,
// applied by repeated multiplication, and a fractional residual, applied as
// Exp(residual * Ln(x)):
//
//	Pow(x, n) = x^trunc(n) * e^((n - trunc(n)) * ln(x))
//
// Pow(x, 0) is 1 for every x, including 0. A non-zero residual inherits the
// domain of Ln and requires x > 0. The multiplication loop runs once per
// unit of the integer part.
func Pow(x, n float32) float32 {
	if n != n {
		return n
	}
	whole := Trunc(n)
	result := intPow(x, Abs(whole))
	if whole < 0 {
		result = 1 / result
	}
	if residual := n - whole; residual != 0 {
		result *= Exp(residual * Ln(x))
	}
	return result
}

// intPow multiplies x into 1 count times. Once the product saturates at
// 0, an infinity or NaN, or its magnitude stops changing under rounding,
// further multiplications can only flip its sign, so the loop ends early and
// the sign is settled from the remaining count.
func intPow(x, count float32) float32 {
	steps := uint64(1 << 62)
	if count < 1<<62 {
		steps = uint64(count)
	}
	switch x {
	case 1:
		return 1
	case -1:
		if steps&1 == 1 {
			return -1
		}
		return 1
	}
	result := float32(1)
	for i := uint64(0); i < steps; i++ {
		next := result * x
		if next == 0 || next != next || Abs(next) > math.MaxFloat32 || Abs(next) == Abs(result) {
			result = next
			if x < 0 && (steps-i-1)&1 == 1 {
				result = -result
			}
			break
		}
		result = next
	}
	return result
}
