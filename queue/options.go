// File: queue/options.go
// Author: niwciu <niwciu@gmail.com>
// License: Apache-2.0

package queue

type config struct {
	zeroOnPop bool
}

// Option configures a Queue at Init time.
type Option func(*config)

// WithZeroOnPop clears each vacated slot after a successful Pop. Off by
// default; enable it when buffered elements carry sensitive bytes that must
// not linger in the backing storage.
func WithZeroOnPop() Option {
	return func(c *config) { c.zeroOnPop = true }
}
