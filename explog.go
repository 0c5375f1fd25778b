package fastmath

import "math"

const (
	// Exp saturation points. 88 is just below ln(MaxFloat32); -87 is just
	// above ln of the smallest normal float32.
	expOverflow  float32 = 88
	expUnderflow float32 = -87
)

// Exp returns an approximation of eˣ with a maximum relative error below 1%
// over [-10, 10]. The exponent is split as x = n·ln2 + r with
// r ∈ [-ln2/2, ln2/2]; eʳ comes from a 5th-order Taylor polynomial and 2ⁿ is
// assembled directly in the IEEE-754 exponent field. Inputs beyond the
// representable range saturate at Huge and 0.
func Exp(x float32) float32 {
	if x != x {
		return x
	}

	if x > expOverflow {
		return Huge
	}

	if x < expUnderflow {
		return 0
	}

	fx := x * invLn2

	var n int32
	if fx >= 0 {
		n = int32(fx + 0.5)
	} else {
		n = int32(fx - 0.5)
	}

	r := (fx - float32(n)) * ln2
	r2 := r * r
	poly := 1 + r + 0.5*r2 + r2*r*(1.0/6+r*(1.0/24+r*(1.0/120)))

	// 2^n via the biased exponent field; n is confined to [-126, 127] by
	// the saturation checks above.
	return poly * math.Float32frombits(uint32(n+127)<<23)
}

// Log returns an approximation of ln(x) with a maximum relative error below
// 2% over [0.01, 100]. The IEEE-754 exponent is peeled off so the mantissa
// lands in [1, 2), then the odd series for log((1+t)/(1-t)) with
// t = (m-1)/(m+1) covers the remaining interval. Non-positive inputs return
// the -Huge sentinel; Log(1) is exactly 0.
func Log(x float32) float32 {
	if x != x {
		return x
	}

	if x <= 0 {
		return -Huge
	}

	if x == 1 {
		return 0
	}

	if x > math.MaxFloat32 {
		return Huge
	}

	bits := math.Float32bits(x)
	exponent := int32(bits>>23&0xFF) - 127

	// Rewrite the exponent field with the bias so the mantissa reads as a
	// value in [1, 2).
	m := math.Float32frombits(bits&0x007FFFFF | 0x3F800000)

	t := (m - 1) / (m + 1)
	t2 := t * t
	series := t * (2 + t2*(2.0/3+t2*(2.0/5+t2*(2.0/7+t2*(2.0/9)))))

	return float32(exponent)*ln2 + series
}

// Log10 returns Log(x)/ln(10).
func Log10(x float32) float32 {
	return Log(x) * invLn10
}

// Log2 returns Log(x)/ln(2).
func Log2(x float32) float32 {
	return Log(x) * invLn2
}

// maxBinaryExp bounds the binary-exponentiation fast path in Pow.
const maxBinaryExp float32 = 32

// Pow returns an approximation of base^exponent. Common exponents
// (0, 1, 2, 3, 4, 0.5, -1, -2) resolve to closed forms, integer exponents up
// to |32| use binary exponentiation (exact for exactly representable
// products), and the general positive-base case falls back to
// Exp(exponent·Log(base)). A zero base with a negative exponent returns the
// Huge sentinel; a negative base with a fractional exponent has no real
// result and returns 0.
func Pow(base, exponent float32) float32 {
	if exponent == 0 {
		return 1
	}

	if exponent == 1 {
		return base
	}

	if base == 0 {
		if exponent > 0 {
			return 0
		}

		return Huge
	}

	if base == 1 {
		return 1
	}

	switch exponent {
	case 2:
		return base * base
	case 3:
		return base * base * base
	case 4:
		b2 := base * base
		return b2 * b2
	case 0.5:
		return Sqrt(base)
	case -1:
		return 1 / base
	case -2:
		return 1 / (base * base)
	}

	if Abs(exponent) <= maxBinaryExp {
		if n := int32(exponent); exponent == float32(n) {
			return powInt(base, n)
		}
	}

	if base < 0 {
		// Fractional exponent of a negative base has no real result.
		return 0
	}

	return Exp(exponent * Log(base))
}

// powInt computes base^n by binary exponentiation, restoring the sign for a
// negative base with an odd exponent and inverting for negative n.
func powInt(base float32, n int32) float32 {
	negResult := false
	if base < 0 {
		negResult = n&1 != 0
		base = -base
	}

	e := n
	if e < 0 {
		e = -e
	}

	result := float32(1)
	for e > 0 {
		if e&1 != 0 {
			result *= base
		}

		base *= base
		e >>= 1
	}

	if n < 0 {
		result = 1 / result
	}

	if negResult {
		return -result
	}

	return result
}
