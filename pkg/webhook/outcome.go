package webhook

import (
	"context"
	"time"
)

// Outcome is the result of a delivery.
// StatusCode is zero when no response was received.
type Outcome struct {
	Success    bool
	StatusCode int
	Error      string
}

// TransportFailure reports whether the attempt failed before any response
// was received.
func (o Outcome) TransportFailure() bool {
	return !o.Success && o.StatusCode == 0
}

// Attempt describes a single delivery attempt made by Deliver.
type Attempt struct {
	Number   int
	Outcome  Outcome
	Duration time.Duration
	// Wait is the delay before the next attempt, zero when none follows.
	Wait time.Duration
}

// AttemptHook is called after each delivery attempt with the context
// passed to Deliver.
type AttemptHook func(ctx context.Context, attempt Attempt)
