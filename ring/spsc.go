// File: ring/spsc.go
// Author: niwciu <niwciu@gmail.com>
// License: Apache-2.0
//
// SPSC[T] is a thin wrapper over the internal concurrency ring core.
// Lock-free FIFO hand-off between exactly one producer and one consumer.

package ring

import (
	"github.com/niwciu/QUEUE-LIB/api"
	"github.com/niwciu/QUEUE-LIB/internal/concurrency"
)

// SPSC implements api.Ring[T] for one-producer/one-consumer use. Any other
// access pattern is a data race; callers needing multiple producers or
// consumers must serialize externally.
type SPSC[T any] struct {
	*concurrency.RingBuffer[T]
}

// NewSPSC creates a ring holding at least capacity elements; the effective
// capacity is rounded up to the next power of two.
func NewSPSC[T any](capacity int) *SPSC[T] {
	return &SPSC[T]{RingBuffer: concurrency.NewRingBuffer[T](capacity)}
}

// IsEmpty reports whether the ring holds no elements.
func (r *SPSC[T]) IsEmpty() bool { return r.Len() == 0 }

// IsFull reports whether occupancy has reached capacity.
func (r *SPSC[T]) IsFull() bool { return r.Len() == r.Cap() }

// Ensure compile-time compliance.
var _ api.Ring[any] = (*SPSC[any])(nil)
