// Package pool
// Author: niwciu <niwciu@gmail.com>
//
// Backing-storage pooling for QUEUE-LIB queues. StoragePool preallocates
// fixed-size byte regions sized for one queue (elemSize x capacity) so that
// creating and recycling queues costs no allocation at steady state.
// See slab.go for implementation details.
package pool
