// File: api/errors.go
// Author: niwciu <niwciu@gmail.com>
// License: Apache-2.0
//
// Common error values and status codes for QUEUE-LIB containers.

package api

import "errors"

// Sentinel errors returned by fallible container operations. A nil error
// means the operation succeeded.
var (
	ErrFull            = errors.New("queue is full")
	ErrEmpty           = errors.New("queue is empty")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Status is the discriminated result code of a container operation.
type Status int

const (
	StatusOK Status = iota
	StatusFull
	StatusEmpty
	StatusInvalidArgument
)

// StatusOf maps an operation error to its status code. Errors not produced
// by this library map to StatusInvalidArgument.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrFull):
		return StatusFull
	case errors.Is(err, ErrEmpty):
		return StatusEmpty
	default:
		return StatusInvalidArgument
	}
}

// String returns the status name for logs and diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFull:
		return "full"
	case StatusEmpty:
		return "empty"
	case StatusInvalidArgument:
		return "invalid-argument"
	default:
		return "unknown"
	}
}
