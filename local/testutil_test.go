// FILE: local/testutil_test.go
package local

import "sync/atomic"

// atomicCounter is a tiny counting helper for the concurrency stress tests;
// it exists only so TryConsume successes can be tallied from many
// goroutines without a data race on a plain int.
type atomicCounter struct {
	n atomic.Int64
}

func (c *atomicCounter) inc() { c.n.Add(1) }

func (c *atomicCounter) load() int64 { return c.n.Load() }
