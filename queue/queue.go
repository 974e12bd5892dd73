// File: queue/queue.go
// Author: niwciu <niwciu@gmail.com>
// License: Apache-2.0

package queue

import "github.com/niwciu/QUEUE-LIB/api"

// Queue is a fixed-capacity FIFO over borrowed byte storage.
//
// The zero value is unusable; call Init (or New) first. The queue borrows
// the storage slice for its whole lifetime and never reallocates it. head is
// the slot of the next element to pop, tail the next free slot, count the
// current occupancy:
//
//	0 <= count <= capacity
//	head, tail in [0, capacity)
//
// Slots outside the live window hold stale bytes and are never read.
type Queue struct {
	storage   []byte
	elemSize  int
	capacity  int
	head      int
	tail      int
	count     int
	zeroOnPop bool
}

// New allocates a Queue and initializes it over storage. Equivalent to
// declaring a Queue and calling Init.
func New(storage []byte, elemSize, capacity int, opts ...Option) (*Queue, error) {
	q := &Queue{}
	if err := q.Init(storage, elemSize, capacity, opts...); err != nil {
		return nil, err
	}
	return q, nil
}

// Init prepares q over the given backing storage, which must hold at least
// elemSize*capacity bytes. Validation happens before any field is touched,
// so a failed Init leaves prior state intact. Re-initializing a live queue
// fully resets it and silently discards buffered elements.
func (q *Queue) Init(storage []byte, elemSize, capacity int, opts ...Option) error {
	if q == nil || storage == nil || elemSize <= 0 || capacity <= 0 {
		return api.ErrInvalidArgument
	}
	if len(storage) < elemSize*capacity {
		return api.ErrInvalidArgument
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	q.storage = storage
	q.elemSize = elemSize
	q.capacity = capacity
	q.head = 0
	q.tail = 0
	q.count = 0
	q.zeroOnPop = cfg.zeroOnPop
	return nil
}

// Push copies elem, which must be exactly ElemSize bytes, into the queue.
// Returns api.ErrFull when occupancy equals capacity; the storage and
// indices are then left untouched.
func (q *Queue) Push(elem []byte) error {
	if q == nil || q.storage == nil || elem == nil || len(elem) != q.elemSize {
		return api.ErrInvalidArgument
	}
	if q.count == q.capacity {
		return api.ErrFull
	}

	copy(q.slot(q.tail), elem)
	q.tail = (q.tail + 1) % q.capacity
	q.count++
	return nil
}

// Pop copies the oldest element into out, which must be exactly ElemSize
// bytes. Returns api.ErrEmpty when the queue holds nothing; out is then left
// untouched. The vacated slot keeps its bytes unless the queue was
// initialized with WithZeroOnPop.
func (q *Queue) Pop(out []byte) error {
	if q == nil || q.storage == nil || out == nil || len(out) != q.elemSize {
		return api.ErrInvalidArgument
	}
	if q.count == 0 {
		return api.ErrEmpty
	}

	s := q.slot(q.head)
	copy(out, s)
	if q.zeroOnPop {
		clear(s)
	}
	q.head = (q.head + 1) % q.capacity
	q.count--
	return nil
}

// IsEmpty reports whether the queue holds no elements. A nil or
// uninitialized queue is vacuously empty.
func (q *Queue) IsEmpty() bool {
	return q == nil || q.count == 0
}

// IsFull reports whether occupancy has reached capacity. A nil or
// uninitialized queue is never full.
func (q *Queue) IsFull() bool {
	return q != nil && q.capacity > 0 && q.count == q.capacity
}

// Len returns the current number of buffered elements.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.count
}

// Cap returns the fixed element capacity.
func (q *Queue) Cap() int {
	if q == nil {
		return 0
	}
	return q.capacity
}

// ElemSize returns the fixed per-element byte size.
func (q *Queue) ElemSize() int {
	if q == nil {
		return 0
	}
	return q.elemSize
}

// slot returns the storage window of logical slot i. The sub-slice bounds
// every copy to exactly one element.
func (q *Queue) slot(i int) []byte {
	off := i * q.elemSize
	return q.storage[off : off+q.elemSize]
}
