package eq

import "github.com/pkg/errors"

var (
	// ErrInvalidHandle is returned when a handle was never acquired from the
	// pool or has already been released.
	ErrInvalidHandle = errors.New("eq: invalid handle")

	// ErrPoolExhausted is returned by Acquire when the pool has reached its
	// configured handle limit.
	ErrPoolExhausted = errors.New("eq: pool exhausted")

	// ErrShortBuffer is returned when fewer than two samples are passed to
	// Apply; the recurrence looks back two samples.
	ErrShortBuffer = errors.New("eq: buffer shorter than 2 samples")

	// ErrLengthMismatch is returned when the output buffer length differs
	// from the input buffer length.
	ErrLengthMismatch = errors.New("eq: input and output lengths differ")

	// ErrInvalidSpectrum is returned by Spectrum.Validate.
	ErrInvalidSpectrum = errors.New("eq: invalid spectrum")
)
