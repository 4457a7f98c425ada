// Package httpserver runs the relay's HTTP host.
//
// Server wraps net/http with graceful shutdown: Run blocks until the context
// is cancelled or SIGINT/SIGTERM arrives, then gives in-flight deliveries up
// to the shutdown timeout to finish. Configuration comes from Config (env
// tags, loaded with pkg/config) or from functional options.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler serve the probe endpoints.
//
// Listen failures are wrapped with ErrStart and drain failures with
// ErrShutdown; use errors.Is to tell them apart.
package httpserver
