package bogger

// expireEpsilon absorbs float drift from summing frame deltas.
const expireEpsilon = 1e-6

// Countdown is the session timer. A countdown created with a non-positive
// duration is untimed and never expires.
type Countdown struct {
	remaining float64
	timed     bool
	expired   bool
}

// NewCountdown starts a countdown of ms milliseconds.
func NewCountdown(ms float64) *Countdown {
	return &Countdown{remaining: ms, timed: ms > 0}
}

// Tick subtracts deltaMs and reports true exactly once, on expiry.
func (c *Countdown) Tick(deltaMs float64) bool {
	if !c.timed || c.expired {
		return false
	}
	c.remaining -= deltaMs
	if c.remaining <= expireEpsilon {
		c.remaining = 0
		c.expired = true
		return true
	}
	return false
}

// Add extends a running countdown.
func (c *Countdown) Add(ms float64) {
	if c.timed && !c.expired {
		c.remaining += ms
	}
}

// Remaining returns the milliseconds left.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}

// Timed reports whether the countdown can expire.
func (c *Countdown) Timed() bool {
	return c.timed
}

// Expired reports whether the countdown reached zero.
func (c *Countdown) Expired() bool {
	return c.expired
}
