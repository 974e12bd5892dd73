// File: internal/concurrency/ring.go
// Package concurrency implements the lock-free ring buffer core.
// Author: niwciu <niwciu@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer with atomic head/tail counters,
// padded to keep producer and consumer state on separate cache lines.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// RingBuffer is a lock-free ring buffer safe for exactly one producer and
// one consumer. Head and tail increase monotonically; the mask maps them
// onto the power-of-two slot array.
type RingBuffer[T any] struct {
	data []T
	mask uint64
	_    cpu.CacheLinePad
	head atomic.Uint64
	_    cpu.CacheLinePad
	tail atomic.Uint64
	_    cpu.CacheLinePad
}

// NewRingBuffer allocates a ring buffer holding at least capacity elements,
// rounded up to the next power of two (minimum 1).
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &RingBuffer[T]{
		data: make([]T, size),
		mask: uint64(size - 1),
	}
}

// Enqueue adds item; returns false if full.
func (r *RingBuffer[T]) Enqueue(item T) bool {
	head := r.head.Load()
	tail := r.tail.Load()
	if tail-head >= uint64(len(r.data)) {
		return false
	}
	r.data[tail&r.mask] = item
	r.tail.Store(tail + 1)
	return true
}

// Dequeue removes and returns the oldest item; ok is false if empty.
func (r *RingBuffer[T]) Dequeue() (T, bool) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head >= tail {
		var zero T
		return zero, false
	}
	item := r.data[head&r.mask]
	r.head.Store(head + 1)
	return item, true
}

// Len returns the number of items currently buffered.
func (r *RingBuffer[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	return int(tail - head)
}

// Cap returns the fixed buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}
