package softrender

import "time"

// Clock paces a loop to a target rate. Tick blocks for whatever is left of
// the frame budget and returns the frame's delta time.
type Clock struct {
	budget time.Duration
	last   time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock returns a clock capped at fps ticks per second. A non-positive
// fps never sleeps.
func NewClock(fps int) *Clock {
	c := &Clock{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if fps > 0 {
		c.budget = time.Second / time.Duration(fps)
	}
	c.last = c.now()
	return c
}

// Tick returns the time since the previous Tick. Under budget it sleeps
// the remainder and returns the budget; over budget it returns the
// measured delta without sleeping.
func (c *Clock) Tick() time.Duration {
	elapsed := c.now().Sub(c.last)
	if elapsed < c.budget {
		c.sleep(c.budget - elapsed)
		elapsed = c.budget
	}
	c.last = c.now()
	return elapsed
}

func (c *Clock) Budget() time.Duration {
	return c.budget
}

// Timer fires once per period without ever blocking.
type Timer struct {
	period time.Duration
	last   time.Time
	now    func() time.Time
}

func NewTimer(fps int) *Timer {
	t := &Timer{now: time.Now}
	if fps > 0 {
		t.period = time.Second / time.Duration(fps)
	}
	t.last = t.now()
	return t
}

// Tick reports whether a full period has passed since the last fired
// period. A late timer advances one period per call, never past now, so
// missed periods are caught up on the following calls.
func (t *Timer) Tick() bool {
	now := t.now()
	if now.Sub(t.last) < t.period {
		return false
	}
	next := t.last.Add(t.period)
	if next.After(now) {
		next = now
	}
	t.last = next
	return true
}
