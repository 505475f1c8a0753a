package joque

import "sync/atomic"

// cursorOpCounter is the monotonic operation-ID counter. It lives apart
// from the cursor word itself since, unlike left/right, it is shared by
// every operation on both ends.
type cursorOpCounter struct {
	v atomic.Uint32
}

// next draws a fresh, nonzero operation tag: Add returns the
// incremented value, so the first tag is 1. See [Deque.nextOpID].
func (c *cursorOpCounter) next() uint32 {
	return c.v.Add(1)
}

// dequeCounters tracks optional, low-overhead runtime statistics for a
// Deque, enabled via [WithMetrics]. All fields are thread-safe atomics;
// a Deque constructed without WithMetrics(true) leaves counters nil and
// pays no cost for them on the hot path.
type dequeCounters struct {
	pushes     atomic.Uint64
	pops       atomic.Uint64
	raceLosses atomic.Uint64
}

// DequeMetrics is a point-in-time snapshot of a Deque's counters.
type DequeMetrics struct {
	Pushes     uint64
	Pops       uint64
	RaceLosses uint64
}

// Metrics returns a snapshot of this Deque's counters. The zero value is
// returned if metrics were not enabled via [WithMetrics].
func (d *Deque[T]) Metrics() DequeMetrics {
	if d.counters == nil {
		return DequeMetrics{}
	}
	return DequeMetrics{
		Pushes:     d.counters.pushes.Load(),
		Pops:       d.counters.pops.Load(),
		RaceLosses: d.counters.raceLosses.Load(),
	}
}
