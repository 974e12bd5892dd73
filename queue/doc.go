// Package queue implements a fixed-capacity, byte-oriented FIFO queue over
// caller-supplied backing storage.
//
// The queue never allocates, never blocks, and performs no I/O: every
// operation completes in time proportional to the element size and returns a
// discriminated result (nil, api.ErrFull, api.ErrEmpty or
// api.ErrInvalidArgument). Elements are opaque byte blocks of the size fixed
// at Init; the queue does not interpret them.
//
// A Queue is not safe for concurrent use. Simultaneous operations on one
// instance from multiple goroutines must be serialized by the caller (a
// mutex, or confinement to a single producer and single consumer with
// happens-before ordering between operations). For a lock-free cross-
// goroutine variant see the ring package's SPSC type.
//
// Re-initializing a live Queue is permitted and silently discards any
// buffered elements; callers that need drain-before-reset semantics must pop
// first.
//
// Author: niwciu <niwciu@gmail.com>
// License: Apache-2.0
package queue
