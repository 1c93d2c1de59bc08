package anim

import (
	"math"
	"time"
)

// DefaultDuration is how long a counter takes to reach its target.
const DefaultDuration = 2 * time.Second

type counterState int

const (
	counterIdle counterState = iota
	counterRunning
	counterDone
	counterCancelled
)

// Counter animates an integer from 0 up to floor(end) over a duration.
//
// The displayed value is floor(progress * end) where progress is the elapsed
// time since the first frame divided by the duration, capped at 1. It never
// decreases and never exceeds floor(end). Negative and NaN targets display 0;
// targets beyond the int64 range, including +Inf, settle on math.MaxInt64.
// A Counter must only be used from the goroutine that flushes its scheduler.
type Counter struct {
	end      float64
	target   int64
	duration time.Duration
	sched    FrameScheduler
	onUpdate func(value int64)

	state   counterState
	value   int64
	start   time.Time
	clocked bool
	frame   FrameID
	queued  bool
}

// maxInt64Float is 2^63, the first float64 above math.MaxInt64.
const maxInt64Float = float64(math.MaxInt64)

// Floor converts x to int64 rounding down. NaN and negative values give 0 and
// values at or above 2^63 saturate at math.MaxInt64.
func Floor(x float64) int64 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= maxInt64Float:
		return math.MaxInt64
	default:
		return int64(math.Floor(x))
	}
}

// CounterOption configures a Counter.
type CounterOption func(*Counter)

// WithOnUpdate registers a callback invoked with every new displayed value.
func WithOnUpdate(fn func(value int64)) CounterOption {
	return func(c *Counter) {
		c.onUpdate = fn
	}
}

// NewCounter returns an idle counter. Call Start to begin animating.
func NewCounter(end float64, duration time.Duration, sched FrameScheduler, opts ...CounterOption) *Counter {
	if math.IsNaN(end) || end < 0 {
		end = 0
	}
	end = min(end, maxInt64Float)
	c := &Counter{
		end:      end,
		target:   Floor(end),
		duration: duration,
		sched:    sched,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start schedules the first frame. It reports false when the counter was
// already started, finished or cancelled.
func (c *Counter) Start() bool {
	if c.state != counterIdle {
		return false
	}
	c.state = counterRunning
	c.schedule()
	return true
}

// Cancel stops the animation. No frame is scheduled and no update is
// delivered after Cancel returns. Cancelling twice is harmless.
func (c *Counter) Cancel() {
	if c.state == counterCancelled || c.state == counterDone {
		return
	}
	if c.queued {
		c.sched.CancelFrame(c.frame)
		c.queued = false
	}
	c.state = counterCancelled
}

// Value returns the currently displayed value.
func (c *Counter) Value() int64 { return c.value }

// Target returns floor(end), the value the counter settles on.
func (c *Counter) Target() int64 { return c.target }

// Running reports whether frames are still being scheduled.
func (c *Counter) Running() bool { return c.state == counterRunning }

// Done reports whether the counter reached its target.
func (c *Counter) Done() bool { return c.state == counterDone }

// Cancelled reports whether Cancel stopped the counter.
func (c *Counter) Cancelled() bool { return c.state == counterCancelled }

func (c *Counter) schedule() {
	c.frame = c.sched.RequestFrame(c.tick)
	c.queued = true
}

func (c *Counter) tick(now time.Time) {
	c.queued = false
	if c.state != counterRunning {
		return
	}
	first := !c.clocked
	if first {
		c.start = now
		c.clocked = true
	}

	progress := 1.0
	if c.duration > 0 {
		progress = math.Min(float64(now.Sub(c.start))/float64(c.duration), 1)
	}
	if progress < 0 {
		progress = 0
	}

	next := Floor(progress * c.end)
	next = min(max(next, c.value), c.target)

	if first || next != c.value {
		c.value = next
		if c.onUpdate != nil {
			c.onUpdate(next)
		}
	}
	// onUpdate may have cancelled the counter.
	if c.state != counterRunning {
		return
	}

	if progress < 1 {
		c.schedule()
		return
	}
	c.state = counterDone
}
