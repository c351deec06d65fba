// Package response measures the frequency response of a peaking band by
// filtering a unit impulse through a pooled equalizer handle and taking its
// FFT.
//
// The measured curve is what the streaming filter actually produces, so it
// can be checked against the analytic response of the designed
// coefficients:
//
//	band := eq.Spectrum{SampleRate: 48000, Frequency: 1000, Bandwidth: 200,
//	    BandwidthGain: 3, GainAdjustment: 6}
//	r, _ := response.Measure(band, 8192)
//	f, db := r.Peak()
//	dev := r.MaxDeviationDB(eq.Design(band))
package response
