package app

import (
	"sync"
	"time"
)

// nameClock hands out millisecond timestamps that strictly increase for the
// lifetime of the clock, even when the wall clock stalls or steps back.
type nameClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func newNameClock(now func() time.Time) *nameClock {
	return &nameClock{now: now}
}

// next returns a time whose UnixMilli is greater than every earlier result.
func (c *nameClock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return time.UnixMilli(ms)
}
