package cpu

import "time"

// TickInterval is the period of the delay and sound timers.
const TickInterval = 16666667 * time.Nanosecond

// Timer remembers when the machine timers last decayed. It is owned by the
// host and handed to every Step call.
type Timer struct {
	last time.Time
	now  func() time.Time
}

// NewTimer returns a timer backed by the wall clock, starting now.
func NewTimer() *Timer {
	return NewTimerWithClock(time.Now)
}

// NewTimerWithClock returns a timer that reads the time from now.
func NewTimerWithClock(now func() time.Time) *Timer {
	return &Timer{
		last: now(),
		now:  now,
	}
}

// Elapsed returns the time since the last tick.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.last)
}

func (t *Timer) tick(emu *EMU) {
	if t.Elapsed() < TickInterval {
		return
	}
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
	if emu.soundTimer > 0 {
		emu.soundTimer--
	}
	t.last = t.now()
}
