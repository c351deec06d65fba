// Package eq implements a single-band parametric (peaking) equalizer with
// pooled, handle-addressed filter state.
//
// A [Pool] hands out small integer [Handle] values. Each handle owns one
// second-order section whose [Coefficients] are designed from a [Spectrum]
// and whose two-sample input/output history carries over between calls to
// [Pool.Apply]. Feeding a stream through a handle in pieces produces exactly
// the samples a single call over the whole stream would.
//
// Coefficients are recomputed only when the spectrum passed to Apply differs
// from the one they were designed for. The history is kept across such a
// change; call [Pool.Reset] for a clean start.
//
// A Pool is not safe for concurrent use. Serialize access externally or give
// each goroutine its own pool.
//
// Handles are recycled in FIFO order. Once every handle has been released the
// pool drops its storage and numbering restarts at 0.
package eq
