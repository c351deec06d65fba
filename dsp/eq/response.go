package eq

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response of the section at
// freqHz. A0 scales both the feedforward path and the feedback terms,
// matching the recurrence.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	a0 := complex(c.A0, 0)
	num := a0 * (complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w)
	den := 1 + a0*(complex(c.A1, 0)*ejw+complex(c.A2, 0)*ej2w)
	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians, in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}
