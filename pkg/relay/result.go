package relay

import (
	"encoding/json"

	"github.com/dmitrymomot/lsrelay/pkg/webhook"
)

// Result is the only value returned to callers.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Formatter turns delivery outcomes into buyer-facing results.
type Formatter struct {
	SuccessMessage string
	FailureMessage string
}

// DefaultFormatter uses the stock LicenseSpring messages.
func DefaultFormatter() Formatter {
	return Formatter{SuccessMessage: DefaultSuccessMessage, FailureMessage: DefaultFailureMessage}
}

// Format is DefaultFormatter().Format.
func Format(outcome webhook.Outcome, override ...string) Result {
	return DefaultFormatter().Format(outcome, override...)
}

// remoteErrors is the error document returned by LicenseSpring on rejection.
type remoteErrors struct {
	Errors []struct {
		Message json.RawMessage `json:"message"`
		Value   json.RawMessage `json:"value"`
	} `json:"errors"`
}

// Format builds a Result. A supplied override always becomes the message,
// even when empty.
// Otherwise successful outcomes get the success message, and failures get
// the first remote error as "<message>: <value>" when the outcome error is
// a LicenseSpring error document, or the generic failure message.
func (f Formatter) Format(outcome webhook.Outcome, override ...string) Result {
	if len(override) > 0 {
		return Result{Success: outcome.Success, Message: override[0]}
	}

	if outcome.Success {
		return Result{Success: true, Message: f.SuccessMessage}
	}

	if msg, ok := remoteErrorMessage(outcome); ok {
		return Result{Success: false, Message: msg}
	}
	return Result{Success: false, Message: f.FailureMessage}
}

func remoteErrorMessage(outcome webhook.Outcome) (string, bool) {
	// Transport failures carry raw error text, never a remote document
	if outcome.TransportFailure() || outcome.Error == "" {
		return "", false
	}

	var doc remoteErrors
	if err := json.Unmarshal([]byte(outcome.Error), &doc); err != nil {
		return "", false
	}
	if len(doc.Errors) == 0 {
		return "", false
	}

	first := doc.Errors[0]
	if first.Message == nil || first.Value == nil {
		return "", false
	}
	return scalarText(first.Message) + ": " + scalarText(first.Value), true
}

// scalarText renders a JSON value for display. Strings are unquoted and
// null is empty; other values are kept verbatim.
func scalarText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
