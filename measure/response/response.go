package response

import (
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-peq/dsp/eq"
)

// Errors returned by Measure.
var (
	ErrInvalidLength     = errors.New("response: length must be a power of two >= 4")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

// floor for magnitudes before the dB conversion, -300 dB
const minMagnitude = 1e-15

// Result is a measured magnitude response over the bins 0..N/2.
type Result struct {
	SampleRate  float64
	Frequencies []float64 // bin center in Hz
	MagnitudeDB []float64 // 20*log10(|H|) per bin
}

// Measure filters an n-sample unit impulse through a fresh equalizer handle
// designed from s and returns the magnitude of its spectrum.
func Measure(s eq.Spectrum, n int) (Result, error) {
	if n < 4 || bits.OnesCount(uint(n)) != 1 {
		return Result{}, errors.Wrapf(ErrInvalidLength, "got %d", n)
	}
	if !(s.SampleRate > 0) {
		return Result{}, errors.Wrapf(ErrInvalidSampleRate, "got %g", s.SampleRate)
	}

	ir, err := impulseResponse(s, n)
	if err != nil {
		return Result{}, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, errors.Wrap(err, "response: failed to create FFT plan")
	}

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	freq := make([]complex128, n)
	if err := plan.Forward(freq, in); err != nil {
		return Result{}, errors.Wrap(err, "response: forward FFT failed")
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	r := Result{
		SampleRate:  s.SampleRate,
		Frequencies: make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
	}
	binHz := s.SampleRate / float64(n)
	for k, m := range mag {
		r.Frequencies[k] = float64(k) * binHz
		r.MagnitudeDB[k] = 20 * math.Log10(math.Max(m, minMagnitude))
	}

	return r, nil
}

func impulseResponse(s eq.Spectrum, n int) ([]float64, error) {
	pool := eq.NewPool(eq.WithCapacityHint(1), eq.WithMaxHandles(1))
	h, err := pool.Acquire()
	if err != nil {
		return nil, err
	}
	defer pool.Release(h) //nolint:errcheck

	ir := make([]float64, n)
	ir[0] = 1
	if err := pool.ApplyInPlace(h, s, ir); err != nil {
		return nil, err
	}
	return ir, nil
}

// Peak returns the frequency and level of the loudest bin.
func (r Result) Peak() (freqHz, levelDB float64) {
	if len(r.MagnitudeDB) == 0 {
		return 0, math.Inf(-1)
	}
	i := floats.MaxIdx(r.MagnitudeDB)
	return r.Frequencies[i], r.MagnitudeDB[i]
}

// Trough returns the frequency and level of the quietest bin.
func (r Result) Trough() (freqHz, levelDB float64) {
	if len(r.MagnitudeDB) == 0 {
		return 0, math.Inf(1)
	}
	i := floats.MinIdx(r.MagnitudeDB)
	return r.Frequencies[i], r.MagnitudeDB[i]
}

// At returns the level of the bin nearest to freqHz.
func (r Result) At(freqHz float64) float64 {
	if len(r.MagnitudeDB) == 0 {
		return math.Inf(-1)
	}
	n := 2 * (len(r.MagnitudeDB) - 1)
	k := int(math.Round(freqHz * float64(n) / r.SampleRate))
	k = max(0, min(k, len(r.MagnitudeDB)-1))
	return r.MagnitudeDB[k]
}

// MaxDeviationDB returns the largest absolute difference in dB between the
// measured curve and the analytic response of c, over all bins.
func (r Result) MaxDeviationDB(c eq.Coefficients) float64 {
	if len(r.MagnitudeDB) == 0 {
		return 0
	}
	want := make([]float64, len(r.Frequencies))
	for k, f := range r.Frequencies {
		want[k] = c.MagnitudeDB(f, r.SampleRate)
	}
	return floats.Distance(r.MagnitudeDB, want, math.Inf(1))
}
