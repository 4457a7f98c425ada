package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("request body too large")
	ErrFailedToReadBody     = errors.New("failed to read request body")
	ErrInvalidTarget        = errors.New("binder target must be *[]byte or implement RawBodySetter")
)
