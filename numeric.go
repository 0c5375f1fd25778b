package fastmath

import "math"

// Abs returns the absolute value of x without branching, by clearing the
// IEEE-754 sign bit.
func Abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float32) float32 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
