package wizard

import (
	"sync"

	"lillia/services/otp"
)

// TimerRegistry holds the per-session resend countdowns. Timers live in
// memory only; the persisted ResendAvailableAt deadline covers engine
// restarts.
type TimerRegistry struct {
	mu     sync.Mutex
	ticks  int
	timers map[string]*otp.Timer
}

// NewTimerRegistry returns a registry creating countdowns of the given
// length.
func NewTimerRegistry(ticks int) *TimerRegistry {
	return &TimerRegistry{ticks: ticks, timers: make(map[string]*otp.Timer)}
}

// Get returns the session's countdown, creating an idle one if needed.
func (r *TimerRegistry) Get(sessionID string) *otp.Timer {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.timers[sessionID]
	if !ok {
		t = otp.NewTimer(r.ticks)
		r.timers[sessionID] = t
	}
	return t
}

// Stop halts and removes the session's countdown.
func (r *TimerRegistry) Stop(sessionID string) {
	r.mu.Lock()
	t, ok := r.timers[sessionID]
	delete(r.timers, sessionID)
	r.mu.Unlock()
	if ok {
		t.Stop()
	}
}
