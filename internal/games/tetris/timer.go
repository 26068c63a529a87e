package tetris

import "time"

// interval is a countdown driven by reported elapsed time. A repeating
// interval re-arms itself when it fires; a one-shot interval stays inactive
// until activated again.
type interval struct {
	duration time.Duration
	elapsed  time.Duration
	active   bool
	repeat   bool
}

// activate (re)starts the countdown from zero. Intervals with a non-positive
// duration never become active.
func (iv *interval) activate() {
	iv.elapsed = 0
	iv.active = iv.duration > 0
}

func (iv *interval) deactivate() {
	iv.elapsed = 0
	iv.active = false
}

// advance adds dt and reports whether the interval fired. Time beyond the
// threshold is dropped when a repeating interval re-arms, so an interval
// fires at most once per call.
func (iv *interval) advance(dt time.Duration) bool {
	if !iv.active || dt <= 0 {
		return false
	}
	iv.elapsed += dt
	if iv.elapsed < iv.duration {
		return false
	}
	iv.deactivate()
	if iv.repeat {
		iv.activate()
	}
	return true
}
