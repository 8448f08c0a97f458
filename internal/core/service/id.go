package service

import (
	"sync"
	"time"
)

// IDAllocator hands out reservation ids derived from the creation instant in
// milliseconds. Ids are strictly increasing and never reused, even when two
// reservations are created within the same millisecond.
type IDAllocator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDAllocator(now func() time.Time) *IDAllocator {
	if now == nil {
		now = time.Now
	}
	return &IDAllocator{now: now}
}

// Next returns the next id.
func (a *IDAllocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.now().UnixMilli()
	if id <= a.last {
		id = a.last + 1
	}
	a.last = id
	return id
}

// Observe makes sure later ids are greater than an id already in use.
func (a *IDAllocator) Observe(id int64) {
	a.mu.Lock()
	if id > a.last {
		a.last = id
	}
	a.mu.Unlock()
}
