package toppa

import (
	"math"
	"strconv"
	"time"
)

// Clock measures both the pre-game countdown and the match timer from a
// single start timestamp. The match budget lives on the Engine because
// merges extend it; Clock only reads it.
type Clock struct {
	Beat  time.Duration // Length of one countdown step
	Beats int           // Number of numbered steps before START
	start time.Duration
}

// BeginCountdown starts the countdown at now.
func (c *Clock) BeginCountdown(now time.Duration) {
	c.start = now
}

// BeginMatch restarts the clock for the match proper.
func (c *Clock) BeginMatch(now time.Duration) {
	c.start = now
}

// Elapsed returns the time since the last Begin call.
func (c *Clock) Elapsed(now time.Duration) time.Duration {
	return now - c.start
}

// beat returns the whole countdown step now falls into.
func (c *Clock) beat(now time.Duration) int {
	if c.Beat <= 0 {
		return c.Beats + 1
	}
	return int(c.Elapsed(now) / c.Beat)
}

// CountdownLabel returns "3", "2", "1" and then "START".
func (c *Clock) CountdownLabel(now time.Duration) string {
	if b := c.beat(now); b < c.Beats {
		return strconv.Itoa(c.Beats - b)
	}
	return "START"
}

// CountdownDone reports whether the START step has elapsed.
func (c *Clock) CountdownDone(now time.Duration) bool {
	return c.beat(now) > c.Beats
}

// Running reports whether the match still has time left under limit.
func (c *Clock) Running(now time.Duration, limit time.Duration) bool {
	return c.Elapsed(now) < limit
}

// Remaining returns whole seconds left, rounded up and never negative.
func (c *Clock) Remaining(now time.Duration, limit time.Duration) int {
	left := (limit - c.Elapsed(now)).Seconds()
	return max(int(math.Ceil(left)), 0)
}
