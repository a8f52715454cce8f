package anim

import "time"

// Ticker fires a callback once per period of accumulated time, the way a
// host repeating timer would. The callback returns false to disarm it.
type Ticker struct {
	period  time.Duration
	elapsed time.Duration
	armed   bool
	fn      func() bool
}

// NewTicker returns a disarmed ticker calling fn every period.
func NewTicker(period time.Duration, fn func() bool) *Ticker {
	return &Ticker{period: period, fn: fn}
}

// Start arms the ticker. The first firing happens one full period later.
func (t *Ticker) Start() {
	t.armed = true
	t.elapsed = 0
}

// Stop disarms the ticker and drops any accumulated time.
func (t *Ticker) Stop() {
	t.armed = false
	t.elapsed = 0
}

func (t *Ticker) Armed() bool { return t.armed }

func (t *Ticker) Period() time.Duration { return t.period }

// Advance adds dt to the accumulated time and fires the callback for every
// full period that fits. It returns the number of firings.
func (t *Ticker) Advance(dt time.Duration) int {
	if !t.armed || t.period <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := 0
	for t.armed && t.elapsed >= t.period {
		t.elapsed -= t.period
		fired++
		if !t.fn() {
			t.Stop()
		}
	}
	return fired
}
