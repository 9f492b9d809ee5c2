// Package testutil provides deterministic clocks and ID sequences for
// store and CLI tests.
package testutil

import (
	"sync"
	"time"
)

// FixedClock is a thread-safe manual clock for tests. It returns a fixed
// instant until advanced, so session timestamps are byte-stable across
// runs and golden comparisons.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock pinned to the given instant.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now returns the current instant. Pass this method as the clock function,
// e.g. store.WithClock(clock.Now).
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward and returns the new instant. Used to
// give successive sessions distinct, ordered timestamps.
func (c *FixedClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set pins the clock to a new instant.
func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
