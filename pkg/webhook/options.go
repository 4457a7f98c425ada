package webhook

import (
	"net/http"
	"time"
)

// DefaultMaxAttempts is the number of attempts Deliver makes before giving up.
const DefaultMaxAttempts = 10

type clientOptions struct {
	httpClient  *http.Client
	timeout     time.Duration
	maxAttempts int
	backoff     BackoffStrategy
	userAgent   string
	onAttempt   AttemptHook
}

func defaultClientOptions() *clientOptions {
	return &clientOptions{
		timeout:     10 * time.Second,
		maxAttempts: DefaultMaxAttempts,
		backoff:     DefaultBackoffStrategy(),
		userAgent:   "lsrelay-webhook/1.0",
	}
}

// Option configures a Client.
type Option func(*clientOptions)

// WithHTTPClient sets a custom HTTP client.
// Useful for custom transports, proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the per-attempt request timeout.
// Default is 10 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxAttempts sets the total number of attempts, the first one included.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(o *clientOptions) {
		if n >= 1 {
			o.maxAttempts = n
		}
	}
}

// WithBackoff sets the backoff strategy for retries.
func WithBackoff(strategy BackoffStrategy) Option {
	return func(o *clientOptions) {
		if strategy != nil {
			o.backoff = strategy
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithAttemptHook sets a callback invoked after every attempt made by Deliver.
func WithAttemptHook(hook AttemptHook) Option {
	return func(o *clientOptions) {
		o.onAttempt = hook
	}
}
