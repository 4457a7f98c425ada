package paypal

import "errors"

// Validation error kinds. The messages are shown to buyers as is.
var (
	ErrMalformedPayload     = errors.New("PayPal response has invalid JSON format.")
	ErrMissingPurchaseUnits = errors.New("PayPal response missing 'purchase_units' object.")
	ErrEmptyPurchaseUnits   = errors.New("PayPal response missing 'purchase_units' data.")
	ErrMissingItems         = errors.New("PayPal response missing 'items' object.")
)

// ValidationError reports why a payload was rejected before translation.
// Kind is one of the Err* sentinels; Cause carries the decoder error, if any.
type ValidationError struct {
	Kind  error
	Cause error
}

func (e *ValidationError) Error() string {
	return e.Kind.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newValidationError(kind, cause error) *ValidationError {
	return &ValidationError{Kind: kind, Cause: cause}
}
