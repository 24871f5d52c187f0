package playback

import (
	"sync"
	"time"
)

// Timer is an armed delay that can be disarmed before it fires.
type Timer interface {
	Stop() bool
}

// Scheduler provides the two waits a playback cycle goes through: a delay that
// sets the playback rate, followed by a request for the host's next frame.
type Scheduler interface {
	AfterDelay(d time.Duration, fn func()) Timer
	RequestFrame(fn func())
}

// FrameQueue is a Scheduler for hosts that run their own frame loop. Delays use
// real timers; their callbacks only enqueue work, and the host runs queued
// work on its own thread by calling Drain once per frame.
type FrameQueue struct {
	mu      sync.Mutex
	pending []func()

	// Notify, when set, is called after work is queued so a host without a
	// steady frame loop can schedule a Drain.
	Notify func()
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue { return &FrameQueue{} }

// AfterDelay runs fn on a timer goroutine after d. fn must only hand work
// back through RequestFrame.
func (q *FrameQueue) AfterDelay(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// RequestFrame queues fn for the next Drain. Safe for concurrent use.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	notify := q.Notify
	q.mu.Unlock()
	if notify != nil {
		notify()
	}
}

// Pending reports how many callbacks are waiting for the next frame.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs the callbacks queued before the call. Work queued while draining
// waits for the next frame.
func (q *FrameQueue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
