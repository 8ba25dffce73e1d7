package core

import "time"

// TimerMode selects what a Timer does after reaching its duration.
type TimerMode int

const (
	TimerOnce      TimerMode = iota // Stops at the duration and stays finished
	TimerRepeating                  // Wraps around and keeps counting
)

// Timer is an elapsed-time countdown advanced explicitly by the simulation.
//
// The zero value is a finished Once timer with no duration, so a timer that
// was never configured never blocks anything.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode
	times    int // times the duration was reached during the last Tick
}

// NewTimer creates a timer that finishes after d.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) {
	t.times = 0
	if dt <= 0 || t.duration <= 0 {
		return
	}

	switch t.mode {
	case TimerRepeating:
		t.elapsed += dt
		for t.elapsed >= t.duration {
			t.elapsed -= t.duration
			t.times++
		}
	default:
		if t.elapsed >= t.duration {
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.times = 1
		}
	}
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.times = 0
}

// Finished reports whether a Once timer has reached its duration.
// Repeating timers report whether they wrapped during the last Tick.
func (t Timer) Finished() bool {
	if t.duration <= 0 {
		return true
	}
	if t.mode == TimerRepeating {
		return t.times > 0
	}
	return t.elapsed >= t.duration
}

// TimesFinished returns how many times the duration was reached during the last Tick.
func (t Timer) TimesFinished() int {
	return t.times
}

// Elapsed returns the time accumulated since the last reset (or wrap).
func (t Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Fraction returns elapsed/duration in [0, 1]. An unconfigured timer reports 1.
func (t Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return ClampF(float64(t.elapsed)/float64(t.duration), 0, 1)
}
