// Package api
// Author: niwciu <niwciu@gmail.com>
//
// Contracts for the fixed-capacity FIFO containers.

package api

// Ring is the contract shared by the concurrent ring variants.
// Implementations are bounded: Enqueue on a full ring fails instead of
// growing or blocking.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}
