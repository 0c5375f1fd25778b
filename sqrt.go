package fastmath

import "math"

// sqrtMagic seeds the initial guess: halving the biased exponent via a bit
// shift and re-centering with an empirically tuned constant. This is the
// sqrt analogue of the classic inverse-sqrt trick; the constant is tuned,
// not derivable, and must not be changed.
const sqrtMagic uint32 = 0x1FBD1DF5

// Sqrt returns an approximation of √x with a maximum absolute error below
// 0.1 over [0.001, 1000]: a bit-level initial guess refined by exactly two
// Newton-Raphson iterations. Non-positive inputs return 0.
func Sqrt(x float32) float32 {
	if x != x || x > math.MaxFloat32 {
		return x
	}

	if x <= 0 {
		return 0
	}

	g := math.Float32frombits(sqrtMagic + math.Float32bits(x)>>1)

	g = 0.5 * (g + x/g)
	g = 0.5 * (g + x/g)

	return g
}
