package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")
	ErrInvalidURL         = errors.New("failed to parse redis connection string")
	ErrNotReady           = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed  = errors.New("redis healthcheck failed")
)
