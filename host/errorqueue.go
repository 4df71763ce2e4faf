package host

import (
	"sync"
	"time"
)

// BoundedErrorQueue retains failure records under two independent eviction
// bounds: a rolling age window and a maximum count. It carries its own lock
// so failure recording is never serialized behind registration traffic.
type BoundedErrorQueue struct {
	mu      sync.Mutex
	maxAge  time.Duration // 0 = no age bound
	maxSize int
	records []QueryError
	now     func() time.Time
}

// NewBoundedErrorQueue creates a queue with the given bounds.
// maxAge of 0 disables the age bound; maxSize must be positive.
func NewBoundedErrorQueue(maxAge time.Duration, maxSize int) *BoundedErrorQueue {
	return &BoundedErrorQueue{
		maxAge:  maxAge,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Append adds a record, evicting the oldest entries past either bound.
func (q *BoundedErrorQueue) Append(qerr QueryError) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.records = append(q.records, qerr)
	q.evict(q.now())
}

// Snapshot returns the retained records oldest-first, applying the age bound
// before copying so no expired record is observable.
func (q *BoundedErrorQueue) Snapshot() []QueryError {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.evict(q.now())

	out := make([]QueryError, len(q.records))
	copy(out, q.records)
	return out
}

// Len returns the retained record count after an eviction check
func (q *BoundedErrorQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.evict(q.now())
	return len(q.records)
}

// evict drops records past the count bound, then records past the age bound.
// Caller must hold q.mu.
func (q *BoundedErrorQueue) evict(now time.Time) {
	if q.maxSize > 0 && len(q.records) > q.maxSize {
		drop := len(q.records) - q.maxSize
		q.records = append(q.records[:0], q.records[drop:]...)
	}

	if q.maxAge <= 0 {
		return
	}
	cutoff := now.Add(-q.maxAge)
	first := 0
	for first < len(q.records) && q.records[first].Timestamp.Before(cutoff) {
		first++
	}
	if first > 0 {
		q.records = append(q.records[:0], q.records[first:]...)
	}
}
