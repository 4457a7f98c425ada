package webhook

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffStrategy defines the interface for calculating retry delays.
// Implementations should be safe for concurrent use.
type BackoffStrategy interface {
	// NextInterval returns the delay after the given failed attempt.
	// Attempt starts at 1.
	NextInterval(attempt int) time.Duration
}

// DefaultBackoffStep is the linear step LicenseSpring deliveries wait per attempt.
const DefaultBackoffStep = 100 * time.Millisecond

// LinearBackoff waits Interval * attempt, optionally capped at MaxInterval.
type LinearBackoff struct {
	Interval time.Duration
	// MaxInterval caps the delay; zero means no cap.
	MaxInterval time.Duration
}

// NextInterval returns Interval * attempt.
func (l LinearBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	interval := l.Interval
	if interval <= 0 {
		interval = DefaultBackoffStep
	}

	delay := interval * time.Duration(attempt)
	if l.MaxInterval > 0 && delay > l.MaxInterval {
		delay = l.MaxInterval
	}
	return delay
}

// ExponentialBackoff implements exponential backoff with jitter.
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

// NextInterval calculates min(InitialInterval * Multiplier^(attempt-1) * (1 ± JitterFactor), MaxInterval).
func (e ExponentialBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := e.InitialInterval
	if initial == 0 {
		initial = DefaultBackoffStep
	}

	maxInterval := e.MaxInterval
	if maxInterval == 0 {
		maxInterval = 30 * time.Second
	}

	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt-1))

	// Zero jitter keeps the schedule deterministic
	if e.JitterFactor > 0 {
		randomJitter := (rand.Float64()*2 - 1) * e.JitterFactor
		interval = interval * (1 + randomJitter)
	}

	if interval > float64(maxInterval) {
		interval = float64(maxInterval)
	}

	return time.Duration(interval)
}

// FixedBackoff implements a constant delay between retries.
type FixedBackoff struct {
	Interval time.Duration
}

// NextInterval always returns the same interval regardless of attempt number.
func (f FixedBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return f.Interval
}

// DefaultBackoffStrategy returns the linear schedule used for order
// deliveries: 100ms, 200ms, 300ms and so on.
func DefaultBackoffStrategy() BackoffStrategy {
	return LinearBackoff{Interval: DefaultBackoffStep}
}
