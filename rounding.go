package fastmath

import "math"

// intDirectLimit bounds the int32-cast paths. Every float32 with
// |x| ≥ 2²³ is already integral, so such values (and NaN/±Inf, which fail
// the negated range check) pass through unchanged. This also keeps the cast
// clear of int32 overflow.
const intDirectLimit float32 = 1 << 23

// fmodSafeLimit is the empirically tuned magnitude up to which the
// truncate-and-subtract fast path of Fmod keeps full float32 precision.
// Larger operands (or quotients) delegate to the exact remainder.
const fmodSafeLimit float32 = 25

// Fmod returns the floating-point remainder of dividend/divisor with the
// sign of the dividend. A zero divisor returns 0. Operands or quotients
// beyond fmodSafeLimit use the exact float64 remainder; NaN and ±Inf
// operands take the same route and come back as NaN.
func Fmod(dividend, divisor float32) float32 {
	if divisor == 0 {
		return 0
	}

	absDividend := Abs(dividend)
	absDivisor := Abs(divisor)

	if absDividend < absDivisor {
		return dividend
	}

	if !(absDividend <= fmodSafeLimit && absDivisor <= fmodSafeLimit) {
		return float32(math.Mod(float64(dividend), float64(divisor)))
	}

	quotient := dividend / divisor
	if Abs(quotient) > fmodSafeLimit {
		return float32(math.Mod(float64(dividend), float64(divisor)))
	}

	return dividend - float32(int32(quotient))*divisor
}

// Ceil returns the smallest integer value greater than or equal to x.
func Ceil(x float32) float32 {
	if !(x > -intDirectLimit && x < intDirectLimit) {
		return x
	}

	n := float32(int32(x))
	if x > n {
		return n + 1
	}

	return n
}

// Floor returns the largest integer value less than or equal to x.
func Floor(x float32) float32 {
	if !(x > -intDirectLimit && x < intDirectLimit) {
		return x
	}

	n := float32(int32(x))
	if x < n {
		return n - 1
	}

	return n
}

// Round returns the nearest integer value, rounding halves away from zero:
// Round(2.5) = 3 and Round(-2.5) = -3. This is deliberately not banker's
// rounding.
func Round(x float32) float32 {
	if x >= 0 {
		return Floor(x + 0.5)
	}

	return Ceil(x - 0.5)
}
