package anim

import (
	"sync"
	"time"
)

// FrameInterval is the frame period of a 60 Hz display.
const FrameInterval = time.Second / 60

// FrameID identifies a requested frame so it can be cancelled.
type FrameID uint64

// FrameScheduler hands out per-frame callbacks.
type FrameScheduler interface {
	// RequestFrame schedules fn to run once on the next frame.
	RequestFrame(fn func(now time.Time)) FrameID
	// CancelFrame removes a pending frame. Cancelling an unknown or
	// already-run frame is a no-op.
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn func(now time.Time)
}

// FrameQueue is a FrameScheduler driven by an external loop.
// Frames requested while a flush is running are deferred to the next flush,
// which matches requestAnimationFrame.
type FrameQueue struct {
	mu      sync.Mutex
	nextID  FrameID
	pending []pendingFrame
	// inFlight holds the ids of the batch being flushed that have not run
	// yet, so a callback can still cancel a later frame of the same batch.
	inFlight map[FrameID]struct{}
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{inFlight: make(map[FrameID]struct{})}
}

// RequestFrame implements FrameScheduler.
func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame implements FrameScheduler.
func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.inFlight, id)
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Flush runs every frame queued before the call with the given time and
// returns how many ran. Callbacks run without the lock held, so they may
// request or cancel frames.
func (q *FrameQueue) Flush(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	for _, f := range batch {
		q.inFlight[f.id] = struct{}{}
	}
	q.mu.Unlock()

	ran := 0
	for _, f := range batch {
		q.mu.Lock()
		_, ok := q.inFlight[f.id]
		delete(q.inFlight, f.id)
		q.mu.Unlock()

		if !ok {
			continue
		}
		f.fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of queued frames.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
