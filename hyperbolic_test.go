package fastmath

import (
	"math"
	"testing"
)

func TestSinhPrecision(t *testing.T) {
	maxRel, avgRel := sweepRelError(t, Sinh, math.Sinh, -5, 5, 10000)

	if maxRel >= 0.01 {
		t.Fatalf("Sinh max rel error = %v, want < 0.01", maxRel)
	}

	if avgRel >= 0.001 {
		t.Fatalf("Sinh avg rel error = %v, want < 0.001", avgRel)
	}
}

func TestCoshPrecision(t *testing.T) {
	maxRel, avgRel := sweepRelError(t, Cosh, math.Cosh, -5, 5, 10000)

	if maxRel >= 0.01 {
		t.Fatalf("Cosh max rel error = %v, want < 0.01", maxRel)
	}

	if avgRel >= 0.001 {
		t.Fatalf("Cosh avg rel error = %v, want < 0.001", avgRel)
	}
}

func TestTanhPrecision(t *testing.T) {
	maxAbs, avgAbs := sweepError(t, Tanh, math.Tanh, -5, 5, 10000)

	if maxAbs >= 5e-5 {
		t.Fatalf("Tanh max abs error = %v, want < 5e-5", maxAbs)
	}

	if avgAbs >= 1e-6 {
		t.Fatalf("Tanh avg abs error = %v, want < 1e-6", avgAbs)
	}
}

func TestTanhSaturation(t *testing.T) {
	tests := []struct {
		x, want float32
	}{
		{6, 1},
		{-6, -1},
		{100, 1},
		{-100, -1},
		{float32(math.Inf(1)), 1},
		{float32(math.Inf(-1)), -1},
	}

	for _, tt := range tests {
		if got := Tanh(tt.x); got != tt.want {
			t.Errorf("Tanh(%v) = %v, want exactly %v", tt.x, got, tt.want)
		}
	}
}

func TestAsinhPrecision(t *testing.T) {
	maxRel, avgRel := sweepRelError(t, Asinh, math.Asinh, -10, 10, 10000)

	if maxRel >= 0.01 {
		t.Fatalf("Asinh max rel error = %v, want < 0.01", maxRel)
	}

	if avgRel >= 0.001 {
		t.Fatalf("Asinh avg rel error = %v, want < 0.001", avgRel)
	}
}

func TestAcoshPrecision(t *testing.T) {
	maxRel, avgRel := sweepRelError(t, Acosh, math.Acosh, 1.001, 10, 10000)

	if maxRel >= 0.02 {
		t.Fatalf("Acosh max rel error = %v, want < 0.02", maxRel)
	}

	if avgRel >= 0.005 {
		t.Fatalf("Acosh avg rel error = %v, want < 0.005", avgRel)
	}
}

func TestHyperbolicExactPoints(t *testing.T) {
	if got := Sinh(0); got != 0 {
		t.Fatalf("Sinh(0) = %v, want exactly 0", got)
	}

	if got := Cosh(0); got != 1 {
		t.Fatalf("Cosh(0) = %v, want exactly 1", got)
	}

	if got := Tanh(0); got != 0 {
		t.Fatalf("Tanh(0) = %v, want exactly 0", got)
	}

	if got := Asinh(0); got != 0 {
		t.Fatalf("Asinh(0) = %v, want exactly 0", got)
	}

	if got := Acosh(1); got != 0 {
		t.Fatalf("Acosh(1) = %v, want exactly 0", got)
	}

	if got := Atanh(0); got != 0 {
		t.Fatalf("Atanh(0) = %v, want exactly 0", got)
	}
}

func TestHyperbolicDomainGuards(t *testing.T) {
	// Out-of-domain inputs return zero rather than NaN.
	if got := Acosh(0.5); got != 0 {
		t.Fatalf("Acosh(0.5) = %v, want 0", got)
	}

	if got := Acosh(-2); got != 0 {
		t.Fatalf("Acosh(-2) = %v, want 0", got)
	}

	if got := Atanh(1); got != 0 {
		t.Fatalf("Atanh(1) = %v, want 0", got)
	}

	if got := Atanh(-1.5); got != 0 {
		t.Fatalf("Atanh(-1.5) = %v, want 0", got)
	}
}

func TestHyperbolicSymmetry(t *testing.T) {
	// Odd functions evaluate the positive half and restore the sign, so
	// f(-x) == -f(x) holds exactly.
	odd := map[string]func(float32) float32{
		"Sinh":  Sinh,
		"Tanh":  Tanh,
		"Asinh": Asinh,
		"Atanh": Atanh,
	}

	for _, x := range []float32{0.1, 0.5, 1, 2.5, 4} {
		for name, fn := range odd {
			if got, want := fn(-x), -fn(x); got != want {
				t.Errorf("%s(-%v) = %v, want %v", name, x, got, want)
			}
		}

		if got, want := Cosh(-x), Cosh(x); got != want {
			t.Errorf("Cosh(-%v) = %v, want %v", x, got, want)
		}
	}
}
