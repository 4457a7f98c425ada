// Package ratelimiter throttles order submissions per client with a token
// bucket, so a misbehaving checkout page cannot fan a single buyer out into
// a stream of LicenseSpring deliveries.
//
// A Bucket consumes tokens from a Store; MemoryStore keeps bucket state in
// process. Middleware applies a Bucket to an HTTP route and sets the
// X-RateLimit-* headers.
package ratelimiter
