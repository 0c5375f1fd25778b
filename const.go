package fastmath

import "math"

// Pi is the float32 rounding of the mathematical constant.
const Pi float32 = math.Pi

// Huge is the overflow/domain-violation sentinel. Exp saturates at Huge,
// Log of a non-positive input returns -Huge, and Pow(0, negative) returns
// Huge. The value is chosen to be clearly outside any in-contract result
// while staying finite.
const Huge float32 = 1e38

const (
	twoPi     = 2 * Pi
	halfPi    = Pi / 2
	quarterPi = Pi / 4

	ln2     float32 = 0.69314718055994531
	invLn2  float32 = 1.44269504088896341
	invLn10 float32 = 0.43429448190325176

	// nearZeroEps is the shared "effectively zero" threshold used by the
	// trigonometric special cases (tan singularity guard, asin shortcut,
	// atan2 axis detection).
	nearZeroEps float32 = 1e-7
)
