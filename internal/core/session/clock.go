package session

import (
	"sync"
	"time"
)

// Clock holds the wall-clock time shown on the till header. A worker
// updates it once a second; everything else only reads it.
type Clock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now()}
}

func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}
