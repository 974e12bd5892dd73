// File: pool/slab.go
// Author: niwciu <niwciu@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/niwciu/QUEUE-LIB/api"
)

// StoragePool hands out byte regions of elemSize*capacity bytes, backed by
// a preallocated free list. When the free list is drained, Acquire falls
// back to a fresh allocation and the miss is counted; Release of a fallback
// region refills the list if there is room.
type StoragePool struct {
	regionSize int
	free       chan []byte
	acquired   atomic.Int64
	released   atomic.Int64
	misses     atomic.Int64
}

// Ensure compile-time compliance.
var _ api.StoragePool = (*StoragePool)(nil)

// NewStoragePool preallocates regions byte slices, each large enough to back
// one queue of capacity elements of elemSize bytes.
func NewStoragePool(elemSize, capacity, regions int) (*StoragePool, error) {
	if elemSize <= 0 || capacity <= 0 || regions <= 0 {
		return nil, api.ErrInvalidArgument
	}
	size := elemSize * capacity
	p := &StoragePool{
		regionSize: size,
		free:       make(chan []byte, regions),
	}
	for i := 0; i < regions; i++ {
		p.free <- make([]byte, size)
	}
	return p, nil
}

// Acquire returns a region of RegionSize bytes. Never blocks: a drained
// pool allocates a fresh region instead.
func (p *StoragePool) Acquire() []byte {
	p.acquired.Add(1)
	select {
	case buf := <-p.free:
		return buf
	default:
		p.misses.Add(1)
		return make([]byte, p.regionSize)
	}
}

// Release returns a region to the pool. Undersized slices are rejected;
// regions beyond the free-list capacity are dropped for the GC to reclaim.
func (p *StoragePool) Release(buf []byte) {
	if cap(buf) < p.regionSize {
		return
	}
	p.released.Add(1)
	select {
	case p.free <- buf[:p.regionSize]:
	default:
	}
}

// RegionSize returns the byte size of every region this pool hands out.
func (p *StoragePool) RegionSize() int { return p.regionSize }

// Stats returns acquire/release accounting.
func (p *StoragePool) Stats() api.StoragePoolStats {
	acquired := p.acquired.Load()
	released := p.released.Load()
	return api.StoragePoolStats{
		TotalAcquired: acquired,
		TotalReleased: released,
		InUse:         acquired - released,
		Misses:        p.misses.Load(),
	}
}
