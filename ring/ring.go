// File: ring/ring.go
// Author: niwciu <niwciu@gmail.com>
// License: Apache-2.0

// Package ring provides type-parametrized fixed-capacity FIFO rings: Ring[T]
// for single-goroutine use and SPSC[T] for one-producer/one-consumer
// hand-off. Both are bounded and allocation-free after construction.
package ring

import "github.com/niwciu/QUEUE-LIB/api"

// Ring is a fixed-capacity FIFO over elements of type T, the type-safe
// counterpart of queue.Queue. Not safe for concurrent use; see SPSC for the
// cross-goroutine variant.
type Ring[T any] struct {
	data  []T
	head  int
	tail  int
	count int
}

// NewRing allocates a ring owning its own storage of the given capacity.
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, api.ErrInvalidArgument
	}
	return &Ring[T]{data: make([]T, capacity)}, nil
}

// NewRingFrom borrows buf as backing storage; the capacity is len(buf). The
// ring assumes exclusive use of buf for its whole lifetime.
func NewRingFrom[T any](buf []T) (*Ring[T], error) {
	if len(buf) == 0 {
		return nil, api.ErrInvalidArgument
	}
	return &Ring[T]{data: buf}, nil
}

// Push appends v; returns api.ErrFull when occupancy equals capacity.
func (r *Ring[T]) Push(v T) error {
	if r.count == len(r.data) {
		return api.ErrFull
	}
	r.data[r.tail] = v
	r.tail = (r.tail + 1) % len(r.data)
	r.count++
	return nil
}

// Pop removes and returns the oldest element; returns api.ErrEmpty when the
// ring holds nothing. The vacated slot is reset to the zero value so the
// ring never pins references held by popped elements.
func (r *Ring[T]) Pop() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, api.ErrEmpty
	}
	v := r.data[r.head]
	r.data[r.head] = zero
	r.head = (r.head + 1) % len(r.data)
	r.count--
	return v, nil
}

// Reset discards all buffered elements and clears the storage.
func (r *Ring[T]) Reset() {
	clear(r.data)
	r.head, r.tail, r.count = 0, 0, 0
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool { return r.count == 0 }

// IsFull reports whether occupancy has reached capacity.
func (r *Ring[T]) IsFull() bool { return r.count == len(r.data) }

// Len returns the current occupancy.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.data) }
