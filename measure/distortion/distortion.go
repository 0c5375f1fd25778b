// Package distortion measures the spectral purity of sine oscillators built
// on fast approximations.
//
// A sine approximation's error shows up as harmonic distortion: the
// difference between the approximation and the exact sine is periodic in the
// fundamental, so it lands exactly on harmonic bins. Driving an oscillator
// with the approximation, windowing a block of its output, and reading the
// harmonic levels off the FFT therefore measures the approximation error in
// the way a control engineer experiences it.
package distortion

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultFFTSize      = 4096
	defaultSampleRate   = 48000.0
	defaultFundamental  = 1000.0
	defaultMaxHarmonics = 10

	// captureBins gathers the energy straddling each harmonic bin. The
	// periodic Hann window spreads an on-bin tone across exactly three
	// bins, so ±2 is enough.
	captureBins = 2
)

// Errors returned by Analyze.
var (
	ErrNilOscillator     = errors.New("distortion: oscillator must not be nil")
	ErrInvalidFFTSize    = errors.New("distortion: fft size must be a power of two >= 64")
	ErrInvalidSampleRate = errors.New("distortion: sample rate must be positive")
	ErrInvalidFrequency  = errors.New("distortion: fundamental frequency must be positive")
)

// Oscillator produces one sample for a phase given in radians.
type Oscillator func(phase float32) float32

// Config holds the measurement parameters. Zero fields take defaults
// (48 kHz, 4096-point FFT, 1 kHz fundamental, 10 harmonics).
type Config struct {
	SampleRate      float64
	FFTSize         int
	FundamentalFreq float64
	MaxHarmonics    int
}

// Result holds the distortion measurement.
//
//nolint:revive
type Result struct {
	FundamentalBin   int
	FundamentalFreq  float64
	FundamentalLevel float64
	THD              float64 // harmonic energy relative to the fundamental
	THD_dB           float64
	SINAD            float64   // dB, fundamental vs everything else
	Harmonics        []float64 // per-harmonic level relative to the fundamental, starting at the 2nd
}

// Analyze drives osc over one FFT block and measures its harmonic
// distortion.
func Analyze(osc Oscillator, cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)

	if osc == nil {
		return Result{}, ErrNilOscillator
	}

	if cfg.FFTSize < 64 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return Result{}, ErrInvalidFFTSize
	}

	if cfg.SampleRate <= 0 {
		return Result{}, ErrInvalidSampleRate
	}

	if cfg.FundamentalFreq <= 0 || cfg.FundamentalFreq >= cfg.SampleRate/2 {
		return Result{}, ErrInvalidFrequency
	}

	n := cfg.FFTSize

	// Snap the fundamental onto an exact bin so the periodic Hann window
	// contains all tone energy within ±1 bin and the harmonics land on
	// exact bins too.
	fundamentalBin := int(math.Round(cfg.FundamentalFreq * float64(n) / cfg.SampleRate))
	if fundamentalBin < 1 {
		fundamentalBin = 1
	}

	omega := 2 * math.Pi * float64(fundamentalBin) / float64(n)

	inData := make([]complex128, n)
	for i := range inData {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
		sample := float64(osc(float32(omega * float64(i))))
		inData[i] = complex(sample*w, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, err
	}

	out := make([]complex128, n)

	err = plan.Forward(out, inData)
	if err != nil {
		return Result{}, err
	}

	binCount := n/2 + 1
	mag := magnitudes(out[:binCount])

	fundamentalLevel := binLevel(mag, fundamentalBin)
	if fundamentalLevel <= 0 {
		return Result{FundamentalBin: fundamentalBin}, nil
	}

	harmonicAbs := 0.0
	harmonics := make([]float64, 0, cfg.MaxHarmonics)

	for k := 2; k <= cfg.MaxHarmonics+1; k++ {
		bin := k * fundamentalBin
		if bin >= binCount-captureBins {
			break
		}

		level := binLevel(mag, bin)
		harmonicAbs += level
		harmonics = append(harmonics, level/fundamentalLevel)
	}

	totalAbs := 0.0
	for i := 1; i < binCount; i++ {
		totalAbs += mag[i]
	}

	residual := totalAbs - fundamentalLevel
	if residual < 0 {
		residual = 0
	}

	thd := harmonicAbs / fundamentalLevel
	thdn := residual / fundamentalLevel

	sinad := math.Inf(1)
	if thdn > 0 {
		sinad = 20 * math.Log10(1/thdn)
	}

	return Result{
		FundamentalBin:   fundamentalBin,
		FundamentalFreq:  float64(fundamentalBin) * cfg.SampleRate / float64(n),
		FundamentalLevel: fundamentalLevel,
		THD:              thd,
		THD_dB:           ratioToDB(thd),
		SINAD:            sinad,
		Harmonics:        harmonics,
	}, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = defaultSampleRate
	}

	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}

	if cfg.FundamentalFreq == 0 {
		cfg.FundamentalFreq = defaultFundamental
	}

	if cfg.MaxHarmonics <= 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	return cfg
}

// magnitudes computes |X[k]| for the non-negative-frequency bins using the
// vectorized kernel.
func magnitudes(bins []complex128) []float64 {
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)

	return out
}

// binLevel sums the magnitude straddling a bin to collect the window
// mainlobe.
func binLevel(mag []float64, bin int) float64 {
	lo := bin - captureBins
	if lo < 0 {
		lo = 0
	}

	hi := bin + captureBins
	if hi > len(mag)-1 {
		hi = len(mag) - 1
	}

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += mag[i]
	}

	return sum
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}
