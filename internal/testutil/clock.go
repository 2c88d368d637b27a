package testutil

import (
	"sync"
	"time"
)

// Epoch is the wall time a DeterministicClock reports on its first read.
var Epoch = time.Date(2013, time.January, 1, 0, 0, 0, 0, time.UTC)

// DeterministicClock provides a thread-safe fake wall clock for tests.
//
// Every call to Now advances the clock by a fixed step, so the elapsed time
// between a run's start and stop marks is known in advance. A zero step freezes
// the clock at Epoch, which makes report output byte-stable for golden files.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu    sync.Mutex
	step  time.Duration
	reads int64
}

// NewDeterministicClock creates a clock that advances by step on each read.
//
// The first call to Now() returns Epoch.
func NewDeterministicClock(step time.Duration) *DeterministicClock {
	return &DeterministicClock{step: step}
}

// Now returns the current fake time and advances the clock.
//
// Monotonic: never returns a time earlier than a previous call.
func (c *DeterministicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := Epoch.Add(time.Duration(c.reads) * c.step)
	c.reads++
	return now
}

// Reads returns how many times Now has been called.
func (c *DeterministicClock) Reads() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// Reset rewinds the clock to Epoch.
//
// Used for test reuse. After Reset(), the next call to Now() returns Epoch.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads = 0
}
