package fastmath

import (
	"math"
	"testing"
)

// sweepRelError returns the maximum and mean relative errors of fast against
// ref over [min, max], skipping samples whose reference value is zero.
func sweepRelError(t *testing.T, fast func(float32) float32, ref func(float64) float64, min, max float64, samples int) (maxRel, avgRel float64) {
	t.Helper()

	var (
		sumRel float64
		n      int
	)

	for i := 0; i < samples; i++ {
		x := float32(min + (max-min)*float64(i)/float64(samples))

		want := ref(float64(x))
		if want == 0 {
			continue
		}

		relErr := math.Abs(float64(fast(x))-want) / math.Abs(want)
		if relErr > maxRel {
			maxRel = relErr
		}

		sumRel += relErr
		n++
	}

	return maxRel, sumRel / float64(n)
}

func TestExpPrecision(t *testing.T) {
	maxRel, avgRel := sweepRelError(t, Exp, math.Exp, -10, 10, 10000)

	if maxRel >= 0.01 {
		t.Fatalf("Exp max rel error = %v, want < 0.01", maxRel)
	}

	if avgRel >= 0.001 {
		t.Fatalf("Exp avg rel error = %v, want < 0.001", avgRel)
	}
}

func TestExpEdgeCases(t *testing.T) {
	if got := Exp(0); got != 1 {
		t.Fatalf("Exp(0) = %v, want exactly 1", got)
	}

	if got := Exp(89); got != Huge {
		t.Fatalf("Exp(89) = %v, want overflow sentinel %v", got, Huge)
	}

	if got := Exp(-88); got != 0 {
		t.Fatalf("Exp(-88) = %v, want 0", got)
	}

	if got := Exp(float32(math.Inf(1))); got != Huge {
		t.Fatalf("Exp(+Inf) = %v, want overflow sentinel", got)
	}

	if got := Exp(float32(math.Inf(-1))); got != 0 {
		t.Fatalf("Exp(-Inf) = %v, want 0", got)
	}

	if got := Exp(float32(math.NaN())); got == got {
		t.Fatalf("Exp(NaN) = %v, want NaN", got)
	}
}

func TestLogPrecision(t *testing.T) {
	maxRel, avgRel := sweepRelError(t, Log, math.Log, 0.01, 100, 10000)

	if maxRel >= 0.02 {
		t.Fatalf("Log max rel error = %v, want < 0.02", maxRel)
	}

	if avgRel >= 0.001 {
		t.Fatalf("Log avg rel error = %v, want < 0.001", avgRel)
	}
}

func TestLogEdgeCases(t *testing.T) {
	if got := Log(1); got != 0 {
		t.Fatalf("Log(1) = %v, want exactly 0", got)
	}

	if got := Log(0); got != -Huge {
		t.Fatalf("Log(0) = %v, want domain sentinel %v", got, -Huge)
	}

	if got := Log(-5); got != -Huge {
		t.Fatalf("Log(-5) = %v, want domain sentinel %v", got, -Huge)
	}

	if got := Log(float32(math.Inf(1))); got != Huge {
		t.Fatalf("Log(+Inf) = %v, want %v", got, Huge)
	}

	if got := Log(float32(math.NaN())); got == got {
		t.Fatalf("Log(NaN) = %v, want NaN", got)
	}
}

func TestLogScaled(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float32) float32
		x    float32
		want float64
	}{
		{name: "log10_of_100", fn: Log10, x: 100, want: 2},
		{name: "log10_of_1000", fn: Log10, x: 1000, want: 3},
		{name: "log2_of_8", fn: Log2, x: 8, want: 3},
		{name: "log2_of_1024", fn: Log2, x: 1024, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.x)
			if math.Abs(float64(got)-tt.want) > 0.01 {
				t.Fatalf("got %v, want %v +- 0.01", got, tt.want)
			}
		})
	}
}

func TestPowSpecialCases(t *testing.T) {
	tests := []struct {
		name           string
		base, exponent float32
		want           float32
		exact          bool
		tol            float64
	}{
		{name: "any_to_zero", base: 5, exponent: 0, want: 1, exact: true},
		{name: "any_to_one", base: 5, exponent: 1, want: 5, exact: true},
		{name: "zero_to_positive", base: 0, exponent: 3, want: 0, exact: true},
		{name: "zero_to_negative", base: 0, exponent: -1, want: Huge, exact: true},
		{name: "one_to_any", base: 1, exponent: 7.3, want: 1, exact: true},
		{name: "square", base: 3, exponent: 2, want: 9, exact: true},
		{name: "cube", base: 2, exponent: 3, want: 8, exact: true},
		{name: "fourth", base: 2, exponent: 4, want: 16, exact: true},
		{name: "inverse", base: 2, exponent: -1, want: 0.5, exact: true},
		{name: "inverse_square", base: 2, exponent: -2, want: 0.25, exact: true},
		{name: "sqrt_path", base: 4, exponent: 0.5, want: 2, tol: 1e-4},
		{name: "binary_exp", base: 2, exponent: 10, want: 1024, exact: true},
		{name: "binary_exp_negative", base: 2, exponent: -3, want: 0.125, exact: true},
		{name: "negative_base_odd", base: -2, exponent: 3, want: -8, exact: true},
		{name: "negative_base_even", base: -2, exponent: 2, want: 4, exact: true},
		{name: "negative_base_fractional", base: -2, exponent: 0.5, want: 0, exact: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pow(tt.base, tt.exponent)

			if tt.exact {
				if got != tt.want {
					t.Fatalf("Pow(%v, %v) = %v, want exactly %v", tt.base, tt.exponent, got, tt.want)
				}
				return
			}

			if math.Abs(float64(got-tt.want)) > tt.tol {
				t.Fatalf("Pow(%v, %v) = %v, want %v +- %v", tt.base, tt.exponent, got, tt.want, tt.tol)
			}
		})
	}
}

func TestPowGeneralPath(t *testing.T) {
	// Beyond the |n| <= 32 fast path and for fractional exponents, Pow
	// goes through Exp(exponent * Log(base)).
	tests := []struct {
		base, exponent float32
	}{
		{2, 33},
		{2, 0.25},
		{1.5, 2.5},
		{10, -1.5},
		{0.3, 3.3},
	}

	for _, tt := range tests {
		got := float64(Pow(tt.base, tt.exponent))
		want := math.Pow(float64(tt.base), float64(tt.exponent))

		relErr := math.Abs(got-want) / math.Abs(want)
		if relErr > 0.01 {
			t.Errorf("Pow(%v, %v) = %v, want %v (rel error %v)", tt.base, tt.exponent, got, want, relErr)
		}
	}
}

func TestPowPrecisionGrid(t *testing.T) {
	const samples = 5000

	var (
		maxRel float64
		sumRel float64
		n      int
	)

	for i := 0; i < samples; i++ {
		base := float32(0.1 + 9.9*float64(i)/samples)
		exponent := float32(-3 + 6*float64((i*7)%samples)/samples)

		want := math.Pow(float64(base), float64(exponent))
		if want == 0 {
			continue
		}

		relErr := math.Abs(float64(Pow(base, exponent))-want) / math.Abs(want)
		if relErr > maxRel {
			maxRel = relErr
		}

		sumRel += relErr
		n++
	}

	if maxRel >= 0.05 {
		t.Fatalf("Pow max rel error = %v, want < 0.05", maxRel)
	}

	if avg := sumRel / float64(n); avg >= 0.01 {
		t.Fatalf("Pow avg rel error = %v, want < 0.01", avg)
	}
}
