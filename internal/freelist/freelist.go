// Package freelist provides a typed FIFO queue for recycled objects.
//
// It wraps github.com/eapache/queue, which stores elements as interface
// values, so the type assertion lives in exactly one place.
package freelist

import "github.com/eapache/queue"

// Queue is a first-in first-out list of recycled values.
type Queue[T any] struct {
	q *queue.Queue
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{q: queue.New()}
}

// PushBack appends v to the back of the queue.
func (f *Queue[T]) PushBack(v T) {
	f.q.Add(v)
}

// PopFront removes and returns the value at the front of the queue.
// The boolean is false when the queue is empty.
func (f *Queue[T]) PopFront() (T, bool) {
	if f.q.Length() == 0 {
		var zero T
		return zero, false
	}
	return f.q.Remove().(T), true
}

// Empty reports whether the queue holds no values.
func (f *Queue[T]) Empty() bool {
	return f.q.Length() == 0
}

// Len returns the number of queued values.
func (f *Queue[T]) Len() int {
	return f.q.Length()
}
