// Package loop drives frames from a fixed-interval timer for hosts that have
// no vsync callback of their own.
package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrStopped is returned by Run when Stop ended the loop.
var ErrStopped = errors.New("loop stopped")

// Loop calls a frame function once per tick until stopped or cancelled.
type Loop struct {
	interval time.Duration
	stopped  atomic.Bool
	frames   atomic.Uint64
	done     chan struct{}
}

// New returns a loop ticking fps times per second. Non-positive fps falls
// back to 60; rates above one tick per nanosecond are capped there.
func New(fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		interval: max(time.Second/time.Duration(fps), time.Nanosecond),
		done:     make(chan struct{}),
	}
}

// Interval is the time between frames.
func (l *Loop) Interval() time.Duration { return l.interval }

// Run blocks, calling frame on every tick. Each frame runs to completion
// before the next is considered. It returns ErrStopped after Stop, or the
// context error on cancellation.
func (l *Loop) Run(ctx context.Context, frame func()) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		if l.stopped.Load() {
			return ErrStopped
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return ErrStopped
		case <-ticker.C:
			if l.stopped.Load() {
				return ErrStopped
			}
			frame()
			l.frames.Add(1)
		}
	}
}

// Stop ends Run after the frame in progress, if any. It is safe to call more
// than once and from any goroutine.
func (l *Loop) Stop() {
	if l.stopped.CompareAndSwap(false, true) {
		close(l.done)
	}
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool { return l.stopped.Load() }

// Frames returns how many frames have completed.
func (l *Loop) Frames() uint64 { return l.frames.Load() }
