package eq

import (
	"math"

	"github.com/pkg/errors"
)

// Spectrum describes one peaking band. Frequencies are in Hz, gains in dB.
type Spectrum struct {
	SampleRate     float64 // Fs
	Frequency      float64 // f0, center of the band
	Bandwidth      float64 // Bf, width of the band around f0
	BandwidthGain  float64 // GB, level at which the bandwidth is measured
	ReferenceGain  float64 // G0, level outside the band
	GainAdjustment float64 // G, level at f0; equal to G0 means no change
}

// Validate reports whether s describes a realizable band. Apply never calls
// it; design is performed on whatever values are passed in.
func (s Spectrum) Validate() error {
	for _, v := range [...]float64{
		s.SampleRate, s.Frequency, s.Bandwidth,
		s.BandwidthGain, s.ReferenceGain, s.GainAdjustment,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrap(ErrInvalidSpectrum, "non-finite field")
		}
	}

	nyquist := s.SampleRate / 2

	switch {
	case s.SampleRate <= 0:
		return errors.Wrapf(ErrInvalidSpectrum, "sample rate %g", s.SampleRate)
	case s.Frequency <= 0 || s.Frequency >= nyquist:
		return errors.Wrapf(ErrInvalidSpectrum, "frequency %g outside (0, %g)", s.Frequency, nyquist)
	case s.Bandwidth <= 0 || s.Bandwidth >= nyquist:
		return errors.Wrapf(ErrInvalidSpectrum, "bandwidth %g outside (0, %g)", s.Bandwidth, nyquist)
	}

	return nil
}
