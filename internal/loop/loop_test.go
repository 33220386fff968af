package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewInterval(t *testing.T) {
	if got := New(50).Interval(); got != 20*time.Millisecond {
		t.Errorf("interval at 50fps = %v", got)
	}
	if got := New(0).Interval(); got != time.Second/60 {
		t.Errorf("fallback interval = %v", got)
	}
}

func TestNewHugeRateKeepsPositiveInterval(t *testing.T) {
	l := New(2_000_000_000)
	if got := l.Interval(); got != time.Nanosecond {
		t.Fatalf("interval at 2e9fps = %v, want 1ns", got)
	}

	calls := 0
	err := l.Run(context.Background(), func() {
		calls++
		if calls == 3 {
			l.Stop()
		}
	})
	if !errors.Is(err, ErrStopped) {
		t.Errorf("Run returned %v, want ErrStopped", err)
	}
}

func TestStopFromFrame(t *testing.T) {
	l := New(1000)
	calls := 0
	err := l.Run(context.Background(), func() {
		calls++
		if calls == 5 {
			l.Stop()
		}
	})
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("Run returned %v, want ErrStopped", err)
	}
	if calls != 5 {
		t.Errorf("frame called %d times after stop, want 5", calls)
	}
	if l.Frames() != 5 {
		t.Errorf("Frames() = %d", l.Frames())
	}
	if !l.Stopped() {
		t.Error("Stopped() should report true")
	}
}

func TestStopFromOtherGoroutine(t *testing.T) {
	l := New(500)
	errc := make(chan error, 1)
	go func() { errc <- l.Run(context.Background(), func() {}) }()

	time.Sleep(20 * time.Millisecond)
	l.Stop()
	l.Stop()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrStopped) {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestContextCancel(t *testing.T) {
	l := New(500)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := l.Run(ctx, func() {})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run returned %v, want deadline exceeded", err)
	}
	if l.Stopped() {
		t.Error("cancellation should not mark the loop stopped")
	}
}

func TestStoppedBeforeRun(t *testing.T) {
	l := New(60)
	l.Stop()
	called := false
	if err := l.Run(context.Background(), func() { called = true }); !errors.Is(err, ErrStopped) {
		t.Errorf("Run returned %v", err)
	}
	if called {
		t.Error("frame ran on a stopped loop")
	}
}
