package eq

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-peq/dsp/eq/internal/kernel"
)

var (
	applyImpl        kernel.ApplyFn
	applyInPlaceImpl kernel.ApplyInPlaceFn
	kernelInitOnce   sync.Once
)

func initKernel() {
	entry := kernel.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("eq: no kernel registered (missing generic fallback?)")
	}

	if entry.Apply == nil || entry.ApplyInPlace == nil {
		panic("eq: selected kernel incomplete")
	}

	applyImpl = entry.Apply
	applyInPlaceImpl = entry.ApplyInPlace
}

// Apply filters in into out through the section behind h. If s differs from
// the spectrum h was last used with, the coefficients are redesigned first;
// the history is kept either way.
//
// in and out must have the same length of at least 2. Passing the same
// slice for both filters in place; any other overlap is not allowed.
// Nothing is modified when an error is returned.
func (p *Pool) Apply(h Handle, s Spectrum, in, out []float64) error {
	n := len(in)
	if n < 2 {
		return errors.Wrapf(ErrShortBuffer, "handle %d: %d samples", h, n)
	}
	if len(out) != n {
		return errors.Wrapf(ErrLengthMismatch, "handle %d: in %d, out %d", h, n, len(out))
	}

	st, err := p.lookup(h)
	if err != nil {
		return err
	}

	kernelInitOnce.Do(initKernel)
	st.updateCoefficients(s)

	if &in[0] == &out[0] {
		st.hist = applyInPlaceImpl(kernel.Coefficients(st.coeffs), st.hist, out)
		return nil
	}

	st.hist = applyImpl(kernel.Coefficients(st.coeffs), st.hist, in, out)
	return nil
}

// ApplyInPlace is Apply with buf used as both input and output.
func (p *Pool) ApplyInPlace(h Handle, s Spectrum, buf []float64) error {
	if len(buf) < 2 {
		return errors.Wrapf(ErrShortBuffer, "handle %d: %d samples", h, len(buf))
	}

	st, err := p.lookup(h)
	if err != nil {
		return err
	}

	kernelInitOnce.Do(initKernel)
	st.updateCoefficients(s)
	st.hist = applyInPlaceImpl(kernel.Coefficients(st.coeffs), st.hist, buf)
	return nil
}
