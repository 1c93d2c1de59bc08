// Package anim implements the animated statistics counter.
//
// Counters advance on per-frame callbacks obtained from a FrameScheduler, the
// same way a browser counter advances on requestAnimationFrame. The scheduler
// is owned by a host loop (the terminal preview, or a test) that flushes
// queued frames with the current time. Everything runs on that loop; no
// goroutines are started by this package.
//
// A Latch models the one-shot visibility trigger: the counter starts the first
// time its section becomes visible and never re-arms.
package anim
