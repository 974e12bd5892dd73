// Package concurrency holds the lock-free single-producer/single-consumer
// ring core used by the public ring package. It is internal so the
// SPSC-only contract cannot leak into arbitrary call sites.
//
// Author: niwciu <niwciu@gmail.com>
// License: Apache-2.0
package concurrency
