// Package logger builds *slog.Logger instances for the relay.
//
// New applies functional options (format, level, static attributes and
// context extractors) and wraps the resulting handler with
// LogHandlerDecorator, which copies request-scoped values such as the
// request id from the context into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "lsrelay"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "order delivered", logger.OrderID(id), logger.Attempt(3))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
