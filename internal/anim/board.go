package anim

import "time"

// Board groups the counters of one section behind a shared visibility latch.
type Board struct {
	counters []*Counter
	latch    *Latch
}

// NewBoard creates one idle counter per target. onUpdate, when non-nil,
// receives the index of the counter and its new value.
func NewBoard(sched FrameScheduler, duration time.Duration, targets []float64, onUpdate func(index int, value int64)) *Board {
	b := &Board{counters: make([]*Counter, len(targets))}
	for i, end := range targets {
		var opts []CounterOption
		if onUpdate != nil {
			opts = append(opts, WithOnUpdate(func(v int64) { onUpdate(i, v) }))
		}
		b.counters[i] = NewCounter(end, duration, sched, opts...)
	}
	b.latch = NewLatch(func() {
		for _, c := range b.counters {
			c.Start()
		}
	})
	return b
}

// SetVisible forwards a visibility change to the latch. It reports whether
// the counters were started by this call.
func (b *Board) SetVisible(visible bool) bool {
	return b.latch.Observe(visible)
}

// Started reports whether the board has been seen.
func (b *Board) Started() bool { return b.latch.Fired() }

// Teardown cancels every counter.
func (b *Board) Teardown() {
	for _, c := range b.counters {
		c.Cancel()
	}
}

// Len returns the number of counters.
func (b *Board) Len() int { return len(b.counters) }

// Value returns the displayed value of counter i.
func (b *Board) Value(i int) int64 { return b.counters[i].Value() }

// Settled reports whether every counter reached its target.
func (b *Board) Settled() bool {
	for _, c := range b.counters {
		if !c.Done() {
			return false
		}
	}
	return true
}
