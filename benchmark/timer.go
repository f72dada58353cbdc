package benchmark

import "time"

// Timer measures wall-clock time since StartTimer.
type Timer struct{ start time.Time }

// StartTimer starts a Timer.
func StartTimer() Timer { return Timer{start: time.Now()} }

// Elapsed returns the time since the Timer was started.
func (t Timer) Elapsed() time.Duration { return time.Since(t.start) }
