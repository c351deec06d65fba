package kernel

import "github.com/cwbudde/algo-vecmath/cpu"

func init() {
	Global.Register(OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		Apply:        applyGeneric,
		ApplyInPlace: applyInPlaceGeneric,
	})
}

func applyGeneric(c Coefficients, h History, in, out []float64) History {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a0, a1, a2 := c.A0, c.A1, c.A2
	n := len(in)
	_ = out[n-1]

	// The first two outputs look back into the carried history.
	out[0] = (b0*in[0] + b1*h.Raw[0] + b2*h.Raw[1] - a1*h.Processed[0] - a2*h.Processed[1]) * a0
	out[1] = (b0*in[1] + b1*in[0] + b2*h.Raw[0] - a1*out[0] - a2*h.Processed[0]) * a0

	for i := 2; i < n; i++ {
		out[i] = (b0*in[i] + b1*in[i-1] + b2*in[i-2] - a1*out[i-1] - a2*out[i-2]) * a0
	}

	return History{
		Raw:       [2]float64{in[n-1], in[n-2]},
		Processed: [2]float64{out[n-1], out[n-2]},
	}
}

func applyInPlaceGeneric(c Coefficients, h History, buf []float64) History {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a0, a1, a2 := c.A0, c.A1, c.A2
	x1, x2 := h.Raw[0], h.Raw[1]
	y1, y2 := h.Processed[0], h.Processed[1]

	for i, x := range buf {
		y := (b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2) * a0
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	return History{
		Raw:       [2]float64{x1, x2},
		Processed: [2]float64{y1, y2},
	}
}
