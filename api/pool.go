// File: api/pool.go
// Author: niwciu <niwciu@gmail.com>
//
// Abstract pooling API for queue backing storage.

package api

// StoragePool hands out fixed-size byte regions suitable as queue backing
// storage, so callers can avoid per-queue allocation at steady state.
type StoragePool interface {
	// Acquire returns a region of the pool's configured size.
	Acquire() []byte

	// Release returns a region to the pool; it must not be used afterwards.
	Release(buf []byte)

	// Stats exposes accounting counters for observability.
	Stats() StoragePoolStats
}

// StoragePoolStats aggregates region accounting.
type StoragePoolStats struct {
	TotalAcquired int64
	TotalReleased int64
	InUse         int64
	Misses        int64 // acquires served by a fresh allocation
}
