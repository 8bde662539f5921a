package core

import "time"

// Interval fires once per period when polled from the host loop. It runs on
// whatever clock the caller passes in, so tests can drive it directly.
type Interval struct {
	period time.Duration
	next   time.Time
}

// NewInterval constructs an Interval. Non-positive periods fall back to one
// second.
func NewInterval(period time.Duration) *Interval {
	if period <= 0 {
		period = time.Second
	}
	return &Interval{period: period}
}

// Period returns the firing period.
func (iv *Interval) Period() time.Duration { return iv.period }

// Reset schedules the next firing one period after now.
func (iv *Interval) Reset(now time.Time) {
	iv.next = now.Add(iv.period)
}

// Due reports whether the interval fired since the last call. The first call
// only arms the interval. A poll that arrives several periods late fires once
// and re-arms relative to now.
func (iv *Interval) Due(now time.Time) bool {
	if iv.next.IsZero() {
		iv.Reset(now)
		return false
	}
	if now.Before(iv.next) {
		return false
	}
	iv.next = iv.next.Add(iv.period)
	if !iv.next.After(now) {
		iv.Reset(now)
	}
	return true
}
