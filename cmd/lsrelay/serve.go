package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/lsrelay/handler"
	"github.com/dmitrymomot/lsrelay/pkg/binder"
	"github.com/dmitrymomot/lsrelay/pkg/config"
	"github.com/dmitrymomot/lsrelay/pkg/httpserver"
	"github.com/dmitrymomot/lsrelay/pkg/logger"
	"github.com/dmitrymomot/lsrelay/pkg/ratelimiter"
	"github.com/dmitrymomot/lsrelay/pkg/redis"
	"github.com/dmitrymomot/lsrelay/pkg/relay"
	"github.com/dmitrymomot/lsrelay/pkg/requestid"
)

// ordersPath receives the order payload the checkout page posts after
// PayPal captures the payment.
const ordersPath = "/webhooks/paypal/orders"

const rateLimitedMessage = "Too many activation requests. Please try again in a moment."

type orderRequest struct {
	payload []byte
}

func (o *orderRequest) SetRawBody(body []byte) { o.payload = body }

func serve(ctx context.Context, relayCfg relay.Config, log *slog.Logger) error {
	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	var limitCfg ratelimiter.Config
	if err := config.Load(&limitCfg); err != nil {
		return err
	}

	rel, err := relay.New(relayCfg, relay.WithLogger(log))
	if err != nil {
		return err
	}

	var redisCfg redis.Config
	if err := config.Load(&redisCfg); err != nil {
		return err
	}

	var (
		store  ratelimiter.Store
		checks []httpserver.Check
	)
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		store = ratelimiter.NewRedisStore(client)
		checks = append(checks, redis.Healthcheck(client))
		log.Info("rate limits shared through redis")
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		store = mem
	}

	limiter, err := ratelimiter.NewBucket(store, limitCfg)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(srvCfg,
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
		httpserver.WithStopHook(func(l *slog.Logger, addr string) {
			l.Info("http server stopped", slog.String("addr", addr))
		}),
	)

	return srv.Run(ctx, newRouter(rel, relayCfg, limiter, srvCfg.MaxBodyBytes, log, checks...))
}

// newRouter wires the order webhook and the probes. The order endpoint
// answers 200 with the relay Result whenever the relay ran; its success
// flag carries the outcome. A nil limiter disables rate limiting.
func newRouter(rel *relay.Relay, relayCfg relay.Config, limiter *ratelimiter.Bucket, maxBody int64, log *slog.Logger, checks ...httpserver.Check) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.New(requestid.WithSourceHeaders(requestid.Header, "PayPal-Transmission-Id")))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.LivenessHandler())
	checks = append([]httpserver.Check{func(context.Context) error { return relayCfg.Validate() }}, checks...)
	r.Get("/health/ready", httpserver.ReadinessHandler(log, checks...))

	orders := r.With()
	if limiter != nil {
		orders = r.With(ratelimiter.Middleware(limiter,
			ratelimiter.WithLogger(log),
			ratelimiter.WithDeniedHandler(http.HandlerFunc(rateLimited)),
		))
	}

	orders.Post(ordersPath, handler.Wrap(
		func(ctx handler.Context, req orderRequest) handler.Response {
			return handler.JSON(rel.CreateOrder(ctx, req.payload))
		},
		handler.WithBinders[orderRequest](binder.RawBody(binder.WithMaxSize(maxBody))),
		handler.WithErrorHandler[orderRequest](handler.NewErrorHandler(log)),
	))

	return r
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	resp := handler.JSON(relay.Result{Success: false, Message: rateLimitedMessage},
		handler.WithJSONStatus(http.StatusTooManyRequests))
	_ = resp.Render(w, r)
}
