package game

import "time"

// Clock supplies wall-clock time to timers
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the real wall clock
var SystemClock Clock = systemClock{}

// Cooldown is a polled elapsed-time timer, restarted on phase entry
type Cooldown struct {
	clock   Clock
	started time.Time
}

// NewCooldown creates a timer started now
func NewCooldown(clock Clock) *Cooldown {
	return &Cooldown{clock: clock, started: clock.Now()}
}

// Restart resets the elapsed time to zero
func (c *Cooldown) Restart() {
	c.started = c.clock.Now()
}

// Elapsed returns the seconds since the last restart
func (c *Cooldown) Elapsed() float64 {
	return c.clock.Now().Sub(c.started).Seconds()
}
