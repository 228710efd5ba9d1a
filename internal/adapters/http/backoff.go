package http

import (
	"math/rand"
	"time"
)

// Default backoff configuration values for transient fetch errors.
const (
	DefaultBackoffInitial = 1 * time.Second
	DefaultBackoffMax     = 10 * time.Second
)

// backoff implements exponential backoff with jitter.
type backoff struct {
	initial time.Duration
	max     time.Duration
	current time.Duration
	sleep   func(time.Duration)
}

// newBackoff creates a new backoff with the given initial and max durations.
func newBackoff(initial, max time.Duration, sleep func(time.Duration)) *backoff {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &backoff{
		initial: initial,
		max:     max,
		current: initial,
		sleep:   sleep,
	}
}

// Sleep sleeps for the current backoff duration and increases it.
func (b *backoff) Sleep() {
	// Add jitter: ±20%
	jitter := float64(b.current) * 0.2 * (rand.Float64()*2 - 1)
	b.sleep(time.Duration(float64(b.current) + jitter))

	// Increase for next time
	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
}

// Reset resets the backoff to the initial duration.
func (b *backoff) Reset() {
	b.current = b.initial
}
