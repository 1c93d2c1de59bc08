package anim

import "sync/atomic"

// Latch fires a callback the first time it observes visibility and never again.
type Latch struct {
	fired atomic.Bool
	fn    func()
}

// NewLatch returns a latch that calls fn once.
func NewLatch(fn func()) *Latch {
	return &Latch{fn: fn}
}

// Observe records a visibility change and reports whether this call fired the latch.
func (l *Latch) Observe(visible bool) bool {
	if !visible || !l.fired.CompareAndSwap(false, true) {
		return false
	}
	if l.fn != nil {
		l.fn()
	}
	return true
}

// Fired reports whether the latch has already fired.
func (l *Latch) Fired() bool { return l.fired.Load() }
