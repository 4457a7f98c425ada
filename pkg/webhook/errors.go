package webhook

import "errors"

// ErrInvalidHost is returned by NewClient. Delivery failures are never
// returned as errors; they are reported through Outcome.
var ErrInvalidHost = errors.New("invalid webhook host")

// ErrInvalidAuthorization is returned by ParseAuthorization for headers it
// cannot split into the signing parameters.
var ErrInvalidAuthorization = errors.New("invalid authorization header")
