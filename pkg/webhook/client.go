package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseBody limits how much of an error response is kept.
const maxResponseBody = 64 * 1024

// Client posts signed requests to a single webhook host.
// It is safe for concurrent use.
type Client struct {
	host string
	http *http.Client
	opts *clientOptions
}

// NewClient creates a client for the given scheme and host, for example
// "https://api.licensespring.com".
func NewClient(host string, opts ...Option) (*Client, error) {
	if err := validateHost(host); err != nil {
		return nil, err
	}

	options := defaultClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	client := options.httpClient
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &Client{
		host: strings.TrimRight(host, "/"),
		http: client,
		opts: options,
	}, nil
}

// MaxAttempts returns the attempt budget used by Deliver.
func (c *Client) MaxAttempts() int {
	return c.opts.maxAttempts
}

// Post makes exactly one POST request to host + endpoint.
// Only 201 Created is a success. For any other status the raw response
// body is returned as the outcome error.
func (c *Client) Post(ctx context.Context, endpoint string, body []byte, headers map[string]string) Outcome {
	reqCtx, cancel := context.WithTimeout(ctx, c.opts.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.host+endpoint, bytes.NewReader(body))
	if err != nil {
		return Outcome{Error: fmt.Sprintf("failed to create request: %v", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.opts.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))

	if resp.StatusCode != http.StatusCreated {
		return Outcome{StatusCode: resp.StatusCode, Error: string(respBody)}
	}
	return Outcome{Success: true, StatusCode: resp.StatusCode}
}

// Deliver calls Post until it succeeds or the attempt budget is spent and
// returns the last outcome. After failed attempt N it waits for the backoff
// interval of N. A cancelled context stops the retries and the last outcome
// is returned.
func (c *Client) Deliver(ctx context.Context, endpoint string, body []byte, headers map[string]string) Outcome {
	var outcome Outcome

	for attempt := 1; attempt <= c.opts.maxAttempts; attempt++ {
		start := time.Now()
		outcome = c.Post(ctx, endpoint, body, headers)

		var wait time.Duration
		if !outcome.Success && attempt < c.opts.maxAttempts {
			wait = c.opts.backoff.NextInterval(attempt)
		}

		if c.opts.onAttempt != nil {
			c.opts.onAttempt(ctx, Attempt{
				Number:   attempt,
				Outcome:  outcome,
				Duration: time.Since(start),
				Wait:     wait,
			})
		}

		if outcome.Success || attempt == c.opts.maxAttempts {
			return outcome
		}

		select {
		case <-ctx.Done():
			return outcome
		case <-time.After(wait):
		}
	}

	return outcome
}

// validateHost fails fast on hosts that can never be reached.
func validateHost(host string) error {
	if host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidHost)
	}

	u, err := url.Parse(host)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHost, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidHost)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidHost)
	}

	return nil
}
