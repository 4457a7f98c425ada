package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/lsrelay/pkg/binder"
	"github.com/dmitrymomot/lsrelay/pkg/logger"
	"github.com/dmitrymomot/lsrelay/pkg/requestid"
)

// classify maps an error to a status code and machine key. Binder errors
// get their natural 4xx status.
func classify(err error) (int, string) {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, httpErr.Key
	case errors.Is(err, binder.ErrPayloadTooLarge):
		return ErrRequestEntityTooLarge.Code, ErrRequestEntityTooLarge.Key
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType.Code, ErrUnsupportedMediaType.Key
	case errors.Is(err, binder.ErrFailedToReadBody):
		return ErrBadRequest.Code, ErrBadRequest.Key
	default:
		return ErrInternalServerError.Code, ErrInternalServerError.Key
	}
}

// NewErrorHandler returns an ErrorHandler that logs the error and writes an
// ErrorBody. Client errors log at warn, server errors at error. Internal
// error text is never written to the response.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("http"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, key := classify(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			logger.StatusCode(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		body := ErrorBody{Error: ErrorDetail{
			Code:      key,
			Message:   http.StatusText(status),
			RequestID: requestid.FromContext(r.Context()),
		}}
		if renderErr := JSON(body, WithJSONStatus(status)).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
