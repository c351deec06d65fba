// Package store provides a growable container addressed by stable
// insertion-order positions.
//
// Positions never move: an element appended at position i stays at i until
// the whole store is released. This is what lets a pool hand out the
// position as a long-lived handle.
package store

import "github.com/pkg/errors"

// ErrFull is returned by Append when the store was created with a hard
// limit and that limit has been reached.
var ErrFull = errors.New("store: capacity limit reached")

// Store is an append-only indexed container.
type Store[T any] struct {
	items []T
	limit int
}

// New returns an empty Store with room for capacityHint elements.
// A positive limit caps the number of elements Append accepts; zero or a
// negative value means unlimited.
func New[T any](capacityHint, limit int) *Store[T] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	if limit > 0 && capacityHint > limit {
		capacityHint = limit
	}
	return &Store[T]{
		items: make([]T, 0, capacityHint),
		limit: max(limit, 0),
	}
}

// Append adds v at the end and returns its position.
func (s *Store[T]) Append(v T) (int, error) {
	if s.limit > 0 && len(s.items) >= s.limit {
		return -1, errors.Wrapf(ErrFull, "limit %d", s.limit)
	}
	s.items = append(s.items, v)
	return len(s.items) - 1, nil
}

// Get returns the element at position i. The boolean is false when i is
// out of range.
func (s *Store[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Len returns the number of elements appended so far.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Cap returns the capacity of the backing slice.
func (s *Store[T]) Cap() int {
	return cap(s.items)
}

// Limit returns the hard element limit, or 0 when unlimited.
func (s *Store[T]) Limit() int {
	return s.limit
}

// Release drops the backing memory. The store is empty afterwards and
// position numbering restarts at 0.
func (s *Store[T]) Release() {
	clear(s.items)
	s.items = nil
}
