package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Option configures the middleware built by New.
type Option func(*options)

type options struct {
	headers  []string
	generate func() string
}

// WithSourceHeaders sets the request headers consulted, in order, for an
// existing id. PayPal webhooks carry one in PayPal-Transmission-Id.
func WithSourceHeaders(headers ...string) Option {
	return func(o *options) {
		if len(headers) > 0 {
			o.headers = headers
		}
	}
}

// WithGenerator replaces the UUID generator.
func WithGenerator(gen func() string) Option {
	return func(o *options) {
		if gen != nil {
			o.generate = gen
		}
	}
}

// New builds a request id middleware.
func New(opts ...Option) func(http.Handler) http.Handler {
	o := &options{
		headers:  []string{Header},
		generate: uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := o.incoming(r)
			if id == "" {
				id = o.generate()
			}
			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func (o *options) incoming(r *http.Request) string {
	for _, h := range o.headers {
		if id := r.Header.Get(h); isValid(id) {
			return id
		}
	}
	return ""
}

func isValid(id string) bool {
	return id != "" && len(id) <= maxIDLength && validID.MatchString(id)
}
