package fastmath

// Each hyperbolic function splits at |x| = 0.5: a short Taylor series near
// zero, where the exp/log closed forms would cancel, and the closed form
// elsewhere. Odd functions compute on |x| and restore the sign; even ones
// drop it.
const hypTaylorCutoff float32 = 0.5

// tanhSaturation is the magnitude beyond which tanh is indistinguishable
// from ±1 at float32 precision.
const tanhSaturation float32 = 5

// Sinh returns an approximation of sinh(x) = (eˣ - e⁻ˣ)/2.
func Sinh(x float32) float32 {
	if Abs(x) < hypTaylorCutoff {
		x2 := x * x
		return x * (1 + x2*(1.0/6+x2*(1.0/120+x2/5040)))
	}

	negative := x < 0
	if negative {
		x = -x
	}

	expX := Exp(x)
	result := 0.5 * (expX - 1/expX)

	if negative {
		return -result
	}

	return result
}

// Cosh returns an approximation of cosh(x) = (eˣ + e⁻ˣ)/2.
func Cosh(x float32) float32 {
	if Abs(x) < hypTaylorCutoff {
		x2 := x * x
		return 1 + x2*(0.5+x2*(1.0/24+x2*(1.0/720+x2/40320)))
	}

	x = Abs(x)

	expX := Exp(x)

	return 0.5 * (expX + 1/expX)
}

// Tanh returns an approximation of tanh(x), saturating at ±1 for |x| > 5.
func Tanh(x float32) float32 {
	if x > tanhSaturation {
		return 1
	}

	if x < -tanhSaturation {
		return -1
	}

	if Abs(x) < hypTaylorCutoff {
		x2 := x * x
		return x * (1 - x2*(1.0/3-x2*(2.0/15-x2*17.0/315)))
	}

	negative := x < 0
	if negative {
		x = -x
	}

	exp2x := Exp(2 * x)
	result := (exp2x - 1) / (exp2x + 1)

	if negative {
		return -result
	}

	return result
}

// Asinh returns an approximation of asinh(x) = ln(x + √(x²+1)).
func Asinh(x float32) float32 {
	if Abs(x) < hypTaylorCutoff {
		x2 := x * x
		return x * (1 - x2*(1.0/6-x2*(3.0/40-x2*15.0/336)))
	}

	negative := x < 0
	if negative {
		x = -x
	}

	result := Log(x + Sqrt(x*x+1))

	if negative {
		return -result
	}

	return result
}

// acoshTaylorLimit bounds the series expansion of Acosh around x = 1, where
// the closed form loses all its precision to cancellation in √(x²-1).
const acoshTaylorLimit float32 = 1.5

// Acosh returns an approximation of acosh(x) = ln(x + √(x²-1)) for x ≥ 1.
// Inputs below 1 are out of domain and return 0.
func Acosh(x float32) float32 {
	if x < 1 {
		return 0
	}

	if x < acoshTaylorLimit {
		t := x - 1
		return Sqrt(2*t) * (1 - t*(1.0/12-t*(3.0/160-t*5.0/896)))
	}

	return Log(x + Sqrt(x*x-1))
}

// Atanh returns an approximation of atanh(x) = ln((1+x)/(1-x))/2 for
// |x| < 1. Inputs with |x| ≥ 1 are out of domain and return 0.
func Atanh(x float32) float32 {
	if Abs(x) >= 1 {
		return 0
	}

	if Abs(x) < hypTaylorCutoff {
		x2 := x * x
		return x * (1 + x2*(1.0/3+x2*(2.0/15+x2*17.0/315)))
	}

	negative := x < 0
	if negative {
		x = -x
	}

	result := 0.5 * Log((1+x)/(1-x))

	if negative {
		return -result
	}

	return result
}
