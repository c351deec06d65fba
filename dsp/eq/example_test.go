package eq_test

import (
	"fmt"

	"github.com/cwbudde/algo-peq/dsp/eq"
)

func ExamplePool_Apply() {
	pool := eq.NewPool()

	h, err := pool.Acquire()
	if err != nil {
		panic(err)
	}
	defer pool.Release(h) //nolint:errcheck

	band := eq.Spectrum{
		SampleRate:     48000,
		Frequency:      1000,
		Bandwidth:      200,
		BandwidthGain:  3,
		ReferenceGain:  0,
		GainAdjustment: 6,
	}

	in := []float64{1, 0, 0, 0, 0, 0}
	out := make([]float64, len(in))

	// Two calls continue the same stream.
	if err := pool.Apply(h, band, in[:3], out[:3]); err != nil {
		panic(err)
	}
	if err := pool.Apply(h, band, in[3:], out[3:]); err != nil {
		panic(err)
	}

	for i, y := range out {
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 1.009137
	// y[1] = 0.017951
	// y[2] = 0.017162
	// y[3] = 0.016097
	// y[4] = 0.014778
	// y[5] = 0.013233
}

func ExampleDesign() {
	c := eq.Design(eq.Spectrum{
		SampleRate:     48000,
		Frequency:      1000,
		Bandwidth:      200,
		BandwidthGain:  3,
		GainAdjustment: 6,
	})

	fmt.Printf("1000 Hz: %+.2f dB\n", c.MagnitudeDB(1000, 48000))
	fmt.Printf("1100 Hz: %+.2f dB\n", c.MagnitudeDB(1100, 48000))
	fmt.Printf("2000 Hz: %+.2f dB\n", c.MagnitudeDB(2000, 48000))
	// Output:
	// 1000 Hz: +6.00 dB
	// 1100 Hz: +3.13 dB
	// 2000 Hz: +0.11 dB
}

func ExamplePool_Release() {
	pool := eq.NewPool()

	a, _ := pool.Acquire()
	b, _ := pool.Acquire()
	fmt.Println(a, b, pool.Stats())

	_ = pool.Release(a)
	c, _ := pool.Acquire()
	fmt.Println(c, pool.Stats())

	_ = pool.Release(b)
	_ = pool.Release(c)
	d, _ := pool.Acquire()
	fmt.Println(d, pool.Stats())
	// Output:
	// 0 1 {2 0 2}
	// 0 {2 0 2}
	// 0 {1 0 1}
}
