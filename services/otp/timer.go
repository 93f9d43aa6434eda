// Package otp implements the resend-cooldown countdown that gates the
// "resend code" action on the verification step.
package otp

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultTicks is the cooldown length in one-second ticks.
const DefaultTicks = 60

// TimerState is the lifecycle phase of a countdown.
type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerExpired TimerState = "expired"
)

// Timer is a single countdown governing resend availability. Only Start
// and natural expiry change its state; in-flight verification calls never
// touch it.
type Timer struct {
	mu        sync.Mutex
	state     TimerState
	remaining int
	ticks     int
	cancel    context.CancelFunc
}

// NewTimer returns an idle countdown of the given length.
func NewTimer(ticks int) *Timer {
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	return &Timer{state: TimerIdle, ticks: ticks}
}

// Start moves the countdown to Running with the full tick count and
// disables resend. Starting while already Running cancels and restarts the
// countdown, which is what resend does.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = TimerRunning
	t.remaining = t.ticks
}

// Tick decrements the remaining count. Reaching zero moves the countdown to
// Expired, which re-enables resend and clears the displayed remaining time.
// Ticks outside Running are ignored.
func (t *Timer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TimerRunning {
		return
	}
	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = TimerExpired
	}
}

// Stop abandons the countdown, e.g. when the verification step completes.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.state = TimerIdle
	t.remaining = 0
}

// State returns the current lifecycle phase.
func (t *Timer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Remaining returns the ticks left in the countdown.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// ResendEnabled reports whether the resend action is currently allowed.
func (t *Timer) ResendEnabled() bool {
	return t.State() != TimerRunning
}

// RemainingLabel renders the countdown for the renderer. It is empty once
// the countdown expires.
func (t *Timer) RemainingLabel() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TimerRunning {
		return ""
	}
	return fmt.Sprintf("Resend code in %ds", t.remaining)
}

// Run starts the countdown and drives it with one tick per second until it
// expires or ctx is cancelled. A previous run, if any, is cancelled first.
func (t *Timer) Run(ctx context.Context) {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.state = TimerRunning
	t.remaining = t.ticks
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				t.Tick()
				if t.State() == TimerExpired {
					return
				}
			}
		}
	}()
}
