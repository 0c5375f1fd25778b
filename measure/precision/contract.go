package precision

import (
	"math"

	fastmath "github.com/cwbudde/algo-fastmath"
)

// Contract is the approximation contract of one library function: its
// declared input domain and the error bounds it must hold over that domain.
// Contracts are fixed at design time; a zero bound disables that check.
//
// One-argument functions set Fast/Ref/Sweep, two-argument functions set
// Fast2/Ref2/Sweep2.
type Contract struct {
	Name string

	Fast  Func
	Ref   Reference
	Sweep Config

	Fast2  Func2
	Ref2   Reference2
	Sweep2 Config2

	MaxAbs float64
	AvgAbs float64
	MaxRel float64
	AvgRel float64
}

// Measure samples the contract's function over its declared domain.
func (c Contract) Measure() (Result, error) {
	if c.Fast2 != nil {
		return Measure2(c.Fast2, c.Ref2, c.Sweep2)
	}

	return Measure(c.Fast, c.Ref, c.Sweep)
}

// Check measures the contract and reports the first violated bound, wrapped
// in ErrContractViolated. The measured statistics are returned either way.
func (c Contract) Check() (Result, error) {
	res, err := c.Measure()
	if err != nil {
		return res, err
	}

	checks := []struct {
		kind     string
		measured float64
		bound    float64
	}{
		{"max abs", res.MaxAbsError, c.MaxAbs},
		{"avg abs", res.AvgAbsError, c.AvgAbs},
		{"max rel", res.MaxRelError, c.MaxRel},
		{"avg rel", res.AvgRelError, c.AvgRel},
	}

	for _, chk := range checks {
		if err := checkBound(c.Name, chk.kind, chk.measured, chk.bound); err != nil {
			return res, err
		}
	}

	return res, nil
}

// tanSafeMargin keeps the tan sweep away from the π/2 singularities, where
// neither the approximation nor the reference is meaningfully comparable.
const tanSafeMargin = 0.1

// Builtin returns the contract table the library ships with: one contract
// per public function, with the domains and bounds the implementation was
// tuned against.
func Builtin() []Contract {
	return []Contract{
		{
			Name: "sin",
			Fast: fastmath.Sin, Ref: math.Sin,
			Sweep:  Config{Min: -2 * math.Pi, Max: 2 * math.Pi},
			MaxAbs: 0.01, AvgAbs: 0.001,
		},
		{
			Name: "cos",
			Fast: fastmath.Cos, Ref: math.Cos,
			Sweep:  Config{Min: -2 * math.Pi, Max: 2 * math.Pi},
			MaxAbs: 0.01, AvgAbs: 0.001,
		},
		{
			Name: "tan",
			Fast: fastmath.Tan, Ref: math.Tan,
			Sweep:  Config{Min: -(math.Pi/2 - tanSafeMargin), Max: math.Pi/2 - tanSafeMargin},
			MaxAbs: 0.1, AvgAbs: 0.01,
		},
		{
			Name: "asin",
			Fast: fastmath.Asin, Ref: math.Asin,
			Sweep:  Config{Min: -0.99, Max: 0.99},
			MaxAbs: 0.1, AvgAbs: 0.01,
		},
		{
			Name: "acos",
			Fast: fastmath.Acos, Ref: math.Acos,
			Sweep:  Config{Min: -0.99, Max: 0.99},
			MaxAbs: 0.1, AvgAbs: 0.01,
		},
		{
			Name:  "atan2",
			Fast2: fastmath.Atan2, Ref2: math.Atan2,
			Sweep2: Config2{AMin: -10, AMax: 10, BMin: -10, BMax: 10},
			MaxAbs: 0.01, AvgAbs: 0.005,
		},
		{
			Name: "exp",
			Fast: fastmath.Exp, Ref: math.Exp,
			Sweep:  Config{Min: -10, Max: 10},
			MaxRel: 0.01, AvgRel: 0.001,
		},
		{
			Name: "log",
			Fast: fastmath.Log, Ref: math.Log,
			Sweep:  Config{Min: 0.01, Max: 100, LogSpaced: true},
			MaxRel: 0.02, AvgRel: 0.001,
		},
		{
			Name: "log10",
			Fast: fastmath.Log10, Ref: math.Log10,
			Sweep:  Config{Min: 0.01, Max: 100, LogSpaced: true},
			MaxRel: 0.02, AvgRel: 0.001,
		},
		{
			Name: "log2",
			Fast: fastmath.Log2, Ref: math.Log2,
			Sweep:  Config{Min: 0.01, Max: 100, LogSpaced: true},
			MaxRel: 0.02, AvgRel: 0.001,
		},
		{
			Name:  "pow",
			Fast2: fastmath.Pow, Ref2: math.Pow,
			Sweep2: Config2{Samples: 5000, AMin: 0.1, AMax: 10, BMin: -3, BMax: 3},
			MaxRel: 0.05, AvgRel: 0.01,
		},
		{
			Name: "sqrt",
			Fast: fastmath.Sqrt, Ref: math.Sqrt,
			Sweep:  Config{Min: 0.001, Max: 1000},
			MaxAbs: 0.1, AvgAbs: 0.025,
		},
		{
			Name:  "fmod",
			Fast2: fastmath.Fmod, Ref2: math.Mod,
			Sweep2: Config2{Samples: 5000, AMin: -50, AMax: 50, BMin: 0.1, BMax: 10.1},
			// One float32 ulp at the 25.0 fast-path limit is 1.9e-6.
			MaxAbs: 2e-6,
		},
		{
			Name: "ceil",
			Fast: fastmath.Ceil, Ref: math.Ceil,
			Sweep:  Config{Min: -100, Max: 100},
			MaxAbs: 1e-6,
		},
		{
			Name: "floor",
			Fast: fastmath.Floor, Ref: math.Floor,
			Sweep:  Config{Min: -100, Max: 100},
			MaxAbs: 1e-6,
		},
		{
			Name: "round",
			Fast: fastmath.Round, Ref: math.Round,
			Sweep:  Config{Min: -100, Max: 100},
			MaxAbs: 1e-6,
		},
		{
			Name: "sinh",
			Fast: fastmath.Sinh, Ref: math.Sinh,
			Sweep:  Config{Min: -5, Max: 5},
			MaxRel: 0.01, AvgRel: 0.001,
		},
		{
			Name: "cosh",
			Fast: fastmath.Cosh, Ref: math.Cosh,
			Sweep:  Config{Min: -5, Max: 5},
			MaxRel: 0.01, AvgRel: 0.001,
		},
		{
			Name: "tanh",
			Fast: fastmath.Tanh, Ref: math.Tanh,
			Sweep:  Config{Min: -5, Max: 5},
			MaxAbs: 5e-5, AvgAbs: 1e-6,
		},
		{
			Name: "asinh",
			Fast: fastmath.Asinh, Ref: math.Asinh,
			Sweep:  Config{Min: -10, Max: 10},
			MaxRel: 0.01, AvgRel: 0.001,
		},
		{
			Name: "acosh",
			Fast: fastmath.Acosh, Ref: math.Acosh,
			Sweep:  Config{Min: 1.001, Max: 10},
			MaxRel: 0.02, AvgRel: 0.005,
		},
		{
			Name: "atanh",
			Fast: fastmath.Atanh, Ref: math.Atanh,
			Sweep:  Config{Min: -0.95, Max: 0.95},
			MaxRel: 0.02, AvgRel: 0.005,
		},
	}
}
