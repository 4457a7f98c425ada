// Package webhook delivers signed JSON requests to the LicenseSpring
// webhook API with bounded retries.
//
// This is a low-level package: it knows how to sign a request, send it once
// and repeat it with a backoff, but it knows nothing about orders. The relay
// package builds on top of it.
//
// # Basic Usage
//
//	client, err := webhook.NewClient("https://api.licensespring.com")
//	if err != nil {
//	    return err
//	}
//
//	date := webhook.DateHeader(time.Now())
//	headers := map[string]string{
//	    "Date":          date,
//	    "Authorization": webhook.AuthorizationHeader(apiKey, webhook.Sign(secret, date)),
//	    "Content-Type":  "application/json",
//	}
//
//	outcome := client.Deliver(ctx, "/api/v3/webhook/order", body, headers)
//	if !outcome.Success {
//	    // outcome.Error holds the transport error or the response body
//	}
//
// # Request Signing
//
// LicenseSpring authenticates requests with an HMAC-SHA256 signature over
// the Date header:
//
//	signature = base64(HMAC-SHA256(secret, "licenseSpring\ndate: " + date))
//
// The signature and the API key travel in the Authorization header:
//
//	algorithm="hmac-sha256",headers="date",signature="<sig>",apiKey="<key>"
//
// Signing is deterministic, so the same secret and date always produce the
// same signature.
//
// # Delivery
//
// Client.Post makes exactly one attempt. Only HTTP 201 Created counts as
// success. Any other status fails the attempt and the raw response body
// becomes the outcome error, so callers can decode structured error
// payloads. Transport failures carry the transport error text and a zero
// status code.
//
// Client.Deliver repeats Post until it succeeds or the attempt budget is
// spent (10 by default) and returns the last outcome. Every status is
// retried.
//
// # Backoff Strategies
//
// LinearBackoff (default):
//   - Interval * attempt, 100ms steps by default
//   - The wait after attempt N is N * 100ms
//
// ExponentialBackoff:
//   - InitialInterval * (Multiplier ^ (attempt-1)) * (1 ± JitterFactor)
//
// FixedBackoff:
//   - Constant delay between retries
//
// The wait blocks the calling goroutine only and ends early when the
// context is cancelled.
package webhook
