// Package precision measures the approximation error of fast math functions
// against exact double-precision references.
//
// The package samples a function's declared input domain, compares every
// sample against the reference, and accumulates absolute and relative error
// statistics. The error bounds the library commits to are declared as
// [Contract] values; Builtin returns the shipped contract table.
package precision

import (
	"errors"
	"fmt"
	"math"
)

const defaultSamples = 10000

// Errors returned by measurement functions.
var (
	ErrNilFunction      = errors.New("precision: function must not be nil")
	ErrContractViolated = errors.New("precision: contract violated")
)

// Func is a single-precision function under measurement.
type Func func(float32) float32

// Func2 is a two-argument single-precision function under measurement.
type Func2 func(a, b float32) float32

// Reference is the exact double-precision implementation compared against.
type Reference func(float64) float64

// Reference2 is the exact two-argument reference implementation.
type Reference2 func(a, b float64) float64

// Config controls how a one-argument function's domain is sampled.
type Config struct {
	Samples   int     // number of samples, default 10000
	Min       float64 // lower edge of the input domain
	Max       float64 // upper edge of the input domain
	LogSpaced bool    // sample logarithmically; requires Min > 0
}

// Config2 controls how a two-argument function's domain is sampled. The
// second argument walks the B range with a stride-7 permutation so the two
// coordinates decorrelate without a full cartesian sweep.
type Config2 struct {
	Samples    int
	AMin, AMax float64
	BMin, BMax float64
}

// Result holds accumulated error statistics for one measured function.
//
//nolint:revive
type Result struct {
	Samples     int
	MaxAbsError float64
	AvgAbsError float64
	MaxRelError float64 // relative errors skip samples whose reference is 0
	AvgRelError float64
	RMSError    float64
	WorstInput  float64 // input that produced MaxAbsError
}

// errAccum accumulates streaming error statistics sample by sample.
type errAccum struct {
	n          int
	nRel       int
	sumAbs     float64
	sumRel     float64
	sumSq      float64
	maxAbs     float64
	maxRel     float64
	worstInput float64
}

func (a *errAccum) add(input, got, want float64) {
	absErr := math.Abs(got - want)

	a.n++
	a.sumAbs += absErr
	a.sumSq += absErr * absErr

	if absErr > a.maxAbs {
		a.maxAbs = absErr
		a.worstInput = input
	}

	if want != 0 {
		relErr := absErr / math.Abs(want)

		a.nRel++
		a.sumRel += relErr

		if relErr > a.maxRel {
			a.maxRel = relErr
		}
	}
}

func (a *errAccum) result() Result {
	if a.n == 0 {
		return Result{}
	}

	res := Result{
		Samples:     a.n,
		MaxAbsError: a.maxAbs,
		AvgAbsError: a.sumAbs / float64(a.n),
		MaxRelError: a.maxRel,
		RMSError:    math.Sqrt(a.sumSq / float64(a.n)),
		WorstInput:  a.worstInput,
	}

	if a.nRel > 0 {
		res.AvgRelError = a.sumRel / float64(a.nRel)
	}

	return res
}

func normalizeConfig(cfg Config) Config {
	if cfg.Samples <= 0 {
		cfg.Samples = defaultSamples
	}

	if cfg.Min > cfg.Max {
		cfg.Min, cfg.Max = cfg.Max, cfg.Min
	}

	if cfg.LogSpaced && cfg.Min <= 0 {
		cfg.LogSpaced = false
	}

	return cfg
}

func normalizeConfig2(cfg Config2) Config2 {
	if cfg.Samples <= 0 {
		cfg.Samples = defaultSamples
	}

	if cfg.AMin > cfg.AMax {
		cfg.AMin, cfg.AMax = cfg.AMax, cfg.AMin
	}

	if cfg.BMin > cfg.BMax {
		cfg.BMin, cfg.BMax = cfg.BMax, cfg.BMin
	}

	return cfg
}

// Measure samples fast over the configured domain and reports its error
// statistics against ref.
func Measure(fast Func, ref Reference, cfg Config) (Result, error) {
	if fast == nil || ref == nil {
		return Result{}, ErrNilFunction
	}

	cfg = normalizeConfig(cfg)

	var (
		acc     errAccum
		logMin  float64
		logSpan float64
	)

	if cfg.LogSpaced {
		logMin = math.Log(cfg.Min)
		logSpan = math.Log(cfg.Max) - logMin
	}

	for i := 0; i < cfg.Samples; i++ {
		frac := float64(i) / float64(cfg.Samples)

		var x float64
		if cfg.LogSpaced {
			x = math.Exp(logMin + logSpan*frac)
		} else {
			x = cfg.Min + (cfg.Max-cfg.Min)*frac
		}

		// Quantize the input so fast and ref see the identical value.
		x32 := float32(x)

		acc.add(float64(x32), float64(fast(x32)), ref(float64(x32)))
	}

	return acc.result(), nil
}

// Measure2 samples a two-argument function over the configured domain and
// reports its error statistics against ref.
func Measure2(fast Func2, ref Reference2, cfg Config2) (Result, error) {
	if fast == nil || ref == nil {
		return Result{}, ErrNilFunction
	}

	cfg = normalizeConfig2(cfg)

	var acc errAccum

	for i := 0; i < cfg.Samples; i++ {
		fracA := float64(i) / float64(cfg.Samples)
		fracB := float64((i*7)%cfg.Samples) / float64(cfg.Samples)

		a32 := float32(cfg.AMin + (cfg.AMax-cfg.AMin)*fracA)
		b32 := float32(cfg.BMin + (cfg.BMax-cfg.BMin)*fracB)

		acc.add(float64(a32), float64(fast(a32, b32)), ref(float64(a32), float64(b32)))
	}

	return acc.result(), nil
}

// checkBound reports a violation error when bound is set (> 0) and exceeded.
func checkBound(name, kind string, measured, bound float64) error {
	if bound > 0 && measured >= bound {
		return fmt.Errorf("%w: %s %s error %.3g exceeds bound %.3g",
			ErrContractViolated, name, kind, measured, bound)
	}

	return nil
}
