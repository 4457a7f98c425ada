package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/lsrelay/pkg/logger"
	"github.com/dmitrymomot/lsrelay/pkg/lsorder"
	"github.com/dmitrymomot/lsrelay/pkg/paypal"
	"github.com/dmitrymomot/lsrelay/pkg/webhook"
)

// Relay forwards PayPal orders to the LicenseSpring order webhook.
// It holds only read-only state and is safe for concurrent use.
type Relay struct {
	cfg       Config
	client    *webhook.Client
	formatter Formatter
	log       *slog.Logger
	now       func() time.Time

	httpClient    *http.Client
	backoff       webhook.BackoffStrategy
	translateOpts []lsorder.Option
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Relay) {
		if l != nil {
			r.log = l
		}
	}
}

// WithHTTPClient sets the HTTP client used for deliveries.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Relay) {
		r.httpClient = c
	}
}

// WithBackoff replaces the linear Config.BackoffStep schedule.
func WithBackoff(strategy webhook.BackoffStrategy) Option {
	return func(r *Relay) {
		r.backoff = strategy
	}
}

// WithClock sets the time source used for the Date header.
func WithClock(now func() time.Time) Option {
	return func(r *Relay) {
		if now != nil {
			r.now = now
		}
	}
}

// WithReferenceGenerator sets the generator for orders without a reference_id.
func WithReferenceGenerator(gen lsorder.ReferenceGenerator) Option {
	return func(r *Relay) {
		r.translateOpts = append(r.translateOpts, lsorder.WithReferenceGenerator(gen))
	}
}

// New validates cfg and builds a Relay.
func New(cfg Config, opts ...Option) (*Relay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	r := &Relay{
		cfg:       cfg,
		formatter: cfg.formatter(),
		log:       logger.Discard(),
		now:       time.Now,
		backoff:   webhook.LinearBackoff{Interval: cfg.BackoffStep},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("relay"))

	client, err := webhook.NewClient(cfg.APIHost,
		webhook.WithHTTPClient(r.httpClient),
		webhook.WithTimeout(cfg.RequestTimeout),
		webhook.WithMaxAttempts(cfg.MaxAttempts),
		webhook.WithBackoff(r.backoff),
		webhook.WithAttemptHook(r.logAttempt),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	r.client = client

	return r, nil
}

// CreateOrder relays a raw PayPal order payload and reports the result.
func (r *Relay) CreateOrder(ctx context.Context, payload []byte) Result {
	src, err := paypal.Parse(payload)
	if err != nil {
		r.log.WarnContext(ctx, "paypal payload rejected", logger.Error(err))
		return r.formatter.Format(webhook.Outcome{}, err.Error())
	}

	order := lsorder.Translate(src, r.translateOpts...)
	log := r.log.With(logger.OrderID(order.ID))

	body, err := json.Marshal(order)
	if err != nil {
		log.ErrorContext(ctx, "failed to encode order", logger.Error(err))
		return r.formatter.Format(webhook.Outcome{Error: err.Error()})
	}

	outcome := r.client.Deliver(ctx, r.cfg.OrderEndpoint, body, r.headers())
	result := r.formatter.Format(outcome)

	if outcome.Success {
		log.InfoContext(ctx, "order delivered", slog.Int("products", len(order.Items)))
	} else {
		log.ErrorContext(ctx, "order delivery failed",
			logger.StatusCode(outcome.StatusCode),
			slog.String("reason", outcome.Error),
			slog.String("message", result.Message),
		)
	}

	return result
}

// headers signs the current time; a fresh Date is taken per order, not per attempt.
func (r *Relay) headers() map[string]string {
	date := webhook.DateHeader(r.now())
	return map[string]string{
		"Date":          date,
		"Authorization": webhook.AuthorizationHeader(r.cfg.APIKey, webhook.Sign(r.cfg.SecretKey, date)),
		"Content-Type":  "application/json",
	}
}

func (r *Relay) logAttempt(ctx context.Context, a webhook.Attempt) {
	if a.Outcome.Success {
		r.log.DebugContext(ctx, "delivery attempt succeeded",
			logger.Attempt(a.Number),
			logger.Duration(a.Duration),
		)
		return
	}

	r.log.WarnContext(ctx, "delivery attempt failed",
		logger.Attempt(a.Number),
		logger.Endpoint(fmt.Sprintf("%s%s", r.cfg.APIHost, r.cfg.OrderEndpoint)),
		logger.StatusCode(a.Outcome.StatusCode),
		logger.Duration(a.Duration),
		slog.Duration("retry_in", a.Wait),
	)
}
