package core

import "time"

// Playback paces automaton generations in the viewer at a fixed rate,
// independent of the frame rate.
type Playback struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPlayback returns a Playback emitting rate generations per second. The
// first call to Due always fires so a fresh map shows its first step at once.
func NewPlayback(rate int) *Playback {
	p := &Playback{}
	p.SetRate(rate)
	p.accumulator = p.step
	return p
}

// SetRate changes the number of generations per second. Non-positive rates
// fall back to 10.
func (p *Playback) SetRate(rate int) {
	if rate <= 0 {
		rate = 10
	}
	p.step = time.Second / time.Duration(rate)
}

// Rate reports the current generations per second.
func (p *Playback) Rate() int { return int(time.Second / p.step) }

// Due reports whether a generation should be shown at time now. At most one
// generation is released per call; a long stall does not cause a burst.
func (p *Playback) Due(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	p.accumulator += delta
	if p.accumulator < p.step {
		return false
	}
	p.accumulator -= p.step
	if p.accumulator > p.step {
		p.accumulator = p.step
	}
	return true
}

// Restart rearms the playback so the next Due fires immediately.
func (p *Playback) Restart() {
	p.last = time.Time{}
	p.accumulator = p.step
}
