// Package biztime keeps every stored and serialised timestamp in UTC and
// gives tests a seam for the current time.
package biztime

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Monotonic hands out microsecond-precision UTC timestamps that never repeat or go backwards, even
// when the wall clock has not advanced between calls (or stepped back).
type Monotonic struct {
	mu    sync.Mutex
	clock Clock
	last  time.Time
}

func NewMonotonic(clock Clock) *Monotonic {
	if clock == nil {
		clock = NowUTC
	}
	return &Monotonic{clock: clock}
}

// Now returns a time strictly after every previous result.
func (m *Monotonic) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock().UTC().Truncate(time.Microsecond)
	if !now.After(m.last) {
		now = m.last.Add(time.Microsecond)
	}
	m.last = now
	return now
}

// After returns a time strictly after prev, preferring the wall clock
// truncated to microseconds.
func After(prev time.Time, clock Clock) time.Time {
	if clock == nil {
		clock = NowUTC
	}
	now := clock().UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
