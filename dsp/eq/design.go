package eq

import "math"

// guards the beta denominator when G and GB coincide
const betaEpsilon = 0.001

// Coefficients are the biquad coefficients of one peaking section.
//
// The recurrence is
//
//	y[n] = (B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]) * A0
//
// Design always yields A0 = 1, but A0 stays an explicit factor.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward
	A0, A1, A2 float64 // output factor and feedback
}

// Design computes peaking-EQ coefficients for s following Orfanidis'
// bandwidth-gain formulation. No range checking is done; see
// [Spectrum.Validate].
func Design(s Spectrum) Coefficients {
	gb := math.Pow(10, s.BandwidthGain/20)
	g0 := math.Pow(10, s.ReferenceGain/20)
	g := math.Pow(10, s.GainAdjustment/20)
	gb2, g02, g2 := gb*gb, g0*g0, g*g

	fsHalf := s.SampleRate / 2

	beta := math.Tan(s.Bandwidth/2*math.Pi/fsHalf) *
		math.Sqrt(math.Abs(gb2-g02)) / math.Sqrt(math.Abs(betaEpsilon+g2-gb2))
	betaP := 1 + beta
	betaM := 1 - beta
	w0c2 := -2 * math.Cos(s.Frequency*math.Pi/fsHalf) / betaP

	return Coefficients{
		B0: (g0 + g*beta) / betaP,
		B1: g0 * w0c2,
		B2: (g0 - g*beta) / betaP,
		A0: 1,
		A1: w0c2,
		A2: betaM / betaP,
	}
}

// updateCoefficients redesigns st only when s differs from the cached
// spectrum. It reports whether a redesign happened.
func (st *state) updateCoefficients(s Spectrum) bool {
	if st.spectrum == s {
		return false
	}
	st.spectrum = s
	st.coeffs = Design(s)
	return true
}
