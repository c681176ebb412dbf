package formz

import (
	"sync"
	"time"
)

// Failure records one committed validation failure.
type Failure struct {
	// Message is the failure message as stored in the field's error state.
	Message string

	// At is the time the failure was committed.
	At time.Time
}

// messageRing is a thread-safe ring buffer of recent validation failures.
type messageRing struct {
	mu       sync.RWMutex
	failures []Failure
	size     int
	head     int
	count    int
}

// newMessageRing creates a failure ring buffer with the given capacity.
// If size is 0, the ring buffer is disabled.
func newMessageRing(size int) *messageRing {
	if size <= 0 {
		return nil
	}
	return &messageRing{
		failures: make([]Failure, size),
		size:     size,
	}
}

// push records a failure in the ring buffer.
func (r *messageRing) push(f Failure) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failures[r.head] = f
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// clear removes all failures from the ring buffer.
func (r *messageRing) clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.failures {
		r.failures[i] = Failure{}
	}
	r.head = 0
	r.count = 0
}

// all returns all recorded failures, oldest first.
func (r *messageRing) all() []Failure {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}

	result := make([]Failure, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.failures[(start+i)%r.size]
	}
	return result
}
