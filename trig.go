package fastmath

import "math"

// Parabolic sine approximation: sin(θ) ≈ Bθ - sign(θ)Cθ² on [-π, π], with a
// weighted correction pass P(y|y| - y) + y. P = 0.225 minimizes the maximum
// absolute error (0.218 would minimize the relative error instead).
const (
	sinB = 4 / Pi
	sinC = 4 / (Pi * Pi)
	sinP float32 = 0.225
)

// reduceDirectLimit bounds the single-step reduction. Beyond it the rounding
// of the float32 product 2πk alone approaches a hundredth of a radian, so
// the exact float64 remainder takes over.
const reduceDirectLimit float32 = 1 << 16

// reduceAngle wraps theta into [-π, π] in constant time: one round-to-nearest
// multiple of 2π for ordinary magnitudes, an exact reduction for extreme
// ones. The exact branch recovers the angle from its float64 sine and cosine,
// which reduce with full precision at any magnitude; a plain float64
// remainder by 2π would drift by the quotient times the rounding of the
// constant. The negated range check routes NaN and ±Inf into the exact path,
// which returns NaN.
func reduceAngle(theta float32) float32 {
	if theta >= -Pi && theta <= Pi {
		return theta
	}

	if !(theta > -reduceDirectLimit && theta < reduceDirectLimit) {
		t := float64(theta)
		return float32(math.Atan2(math.Sin(t), math.Cos(t)))
	}

	q := theta * (1 / twoPi)
	if q >= 0 {
		q += 0.5
	} else {
		q -= 0.5
	}

	return theta - twoPi*float32(int32(q))
}

// sinPoly evaluates the corrected parabola on an already reduced angle.
func sinPoly(theta float32) float32 {
	var y float32
	if theta < 0 {
		y = sinB*theta + sinC*theta*theta
	} else {
		y = sinB*theta - sinC*theta*theta
	}

	if y < 0 {
		return y + sinP*(-y*y-y)
	}

	return y + sinP*(y*y-y)
}

// Sin returns an approximation of sin(theta) with a maximum absolute error
// below 0.01 and an average absolute error below 0.001 over [-2π, 2π].
func Sin(theta float32) float32 {
	return sinPoly(reduceAngle(theta))
}

// Cos returns an approximation of cos(theta) with the same error bounds as
// [Sin], via the quarter-turn phase shift cos(θ) = sin(θ + π/2).
func Cos(theta float32) float32 {
	t := reduceAngle(theta) + halfPi
	if t > Pi {
		t -= twoPi
	}

	return sinPoly(t)
}

// Tan returns Sin(theta)/Cos(theta). Near the cos singularities
// (|cos| < 1e-7) it saturates at ±1e7, signed by the sign of cos.
func Tan(theta float32) float32 {
	s := Sin(theta)
	c := Cos(theta)

	if Abs(c) < nearZeroEps {
		if c >= 0 {
			return 1e7
		}

		return -1e7
	}

	return s / c
}

// Asin returns an approximation of asin(x) by refining the linear guess
// y₀ = xπ/2 with three Newton-Raphson steps against the package's own
// Sin/Cos. Inputs outside [-1, 1] clamp to ±π/2.
func Asin(x float32) float32 {
	if x >= 1 {
		return halfPi
	}

	if x <= -1 {
		return -halfPi
	}

	if Abs(x) < nearZeroEps {
		return 0
	}

	y := x * halfPi
	for range 3 {
		c := Cos(y)
		if Abs(c) < nearZeroEps {
			break
		}

		y -= (Sin(y) - x) / c
	}

	return y
}

// Acos returns π/2 - Asin(x).
func Acos(x float32) float32 {
	return halfPi - Asin(x)
}

// atanK weights the rational atan approximation
// atan(a) ≈ a(π/4 + 0.273(1-a)) for a in [0, 1].
const atanK float32 = 0.273

// Atan2 returns the quadrant-aware arc tangent of y/x in [-π, π].
// Both arguments near zero yield 0; x alone near zero yields ±π/2 by the
// sign of y.
func Atan2(y, x float32) float32 {
	if Abs(x) < nearZeroEps && Abs(y) < nearZeroEps {
		return 0
	}

	if Abs(x) < nearZeroEps {
		if y >= 0 {
			return halfPi
		}

		return -halfPi
	}

	absX := Abs(x)
	absY := Abs(y)

	var angle float32
	if absX >= absY {
		a := absY / absX
		angle = a * (quarterPi + atanK*(1-a))
	} else {
		a := absX / absY
		angle = halfPi - a*(quarterPi+atanK*(1-a))
	}

	if x < 0 {
		if y >= 0 {
			return Pi - angle
		}

		return -Pi + angle
	}

	if y < 0 {
		return -angle
	}

	return angle
}
