package binder

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"slices"
)

// DefaultMaxBodySize is the default body limit (1 MB).
const DefaultMaxBodySize int64 = 1 << 20

// RawBodySetter is implemented by request types that keep the raw body.
type RawBodySetter interface {
	SetRawBody(body []byte)
}

// RawOption configures RawBody.
type RawOption func(*rawConfig)

type rawConfig struct {
	maxSize    int64
	mediaTypes []string
}

// WithMaxSize sets the body limit. Non-positive values keep the default.
func WithMaxSize(n int64) RawOption {
	return func(c *rawConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithMediaTypes replaces the accepted media types.
func WithMediaTypes(types ...string) RawOption {
	return func(c *rawConfig) {
		if len(types) > 0 {
			c.mediaTypes = types
		}
	}
}

// RawBody returns a binder that stores the request body in v, which must be
// a *[]byte or a RawBodySetter.
func RawBody(opts ...RawOption) func(r *http.Request, v any) error {
	cfg := rawConfig{
		maxSize:    DefaultMaxBodySize,
		mediaTypes: []string{"application/json", "text/plain"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			mediaType, _, err := mime.ParseMediaType(ct)
			if err != nil || !slices.Contains(cfg.mediaTypes, mediaType) {
				return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, ct)
			}
		}

		if r.ContentLength > cfg.maxSize {
			return fmt.Errorf("%w: max %d bytes", ErrPayloadTooLarge, cfg.maxSize)
		}

		var body []byte
		if r.Body != nil {
			var err error
			body, err = io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToReadBody, err)
			}
		}
		if int64(len(body)) > cfg.maxSize {
			return fmt.Errorf("%w: max %d bytes", ErrPayloadTooLarge, cfg.maxSize)
		}

		switch target := v.(type) {
		case *[]byte:
			*target = body
		case RawBodySetter:
			target.SetRawBody(body)
		default:
			return fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
		}
		return nil
	}
}
