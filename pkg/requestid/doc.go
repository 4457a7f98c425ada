// Package requestid tags every inbound request with a correlation id.
//
// The middleware reuses a well-formed id from the first configured header
// that carries one (X-Request-ID by default) and otherwise generates a UUID.
// The id is stored in the request context, echoed in the X-Request-ID
// response header and added to log records through LoggerExtractor.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
