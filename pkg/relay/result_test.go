package relay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lsrelay/pkg/relay"
	"github.com/dmitrymomot/lsrelay/pkg/webhook"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outcome  webhook.Outcome
		override []string
		want     relay.Result
	}{
		{
			name:    "success",
			outcome: webhook.Outcome{Success: true, StatusCode: 201},
			want:    relay.Result{Success: true, Message: "License keys successfuly activated."},
		},
		{
			name:     "override wins on failure",
			outcome:  webhook.Outcome{},
			override: []string{"PayPal response missing 'items' object."},
			want:     relay.Result{Success: false, Message: "PayPal response missing 'items' object."},
		},
		{
			name:     "override wins on success",
			outcome:  webhook.Outcome{Success: true, StatusCode: 201},
			override: []string{"custom"},
			want:     relay.Result{Success: true, Message: "custom"},
		},
		{
			name:     "empty override wins",
			outcome:  webhook.Outcome{StatusCode: 400, Error: `{"errors":[{"message":"Invalid","value":"X"}]}`},
			override: []string{""},
			want:     relay.Result{Success: false, Message: ""},
		},
		{
			name:    "remote error document",
			outcome: webhook.Outcome{StatusCode: 400, Error: `{"errors":[{"message":"Invalid","value":"X"}]}`},
			want:    relay.Result{Success: false, Message: "Invalid: X"},
		},
		{
			name:    "first remote error is used",
			outcome: webhook.Outcome{StatusCode: 400, Error: `{"errors":[{"message":"Duplicate order","value":"ref_paypal_1"},{"message":"Other","value":"Y"}]}`},
			want:    relay.Result{Success: false, Message: "Duplicate order: ref_paypal_1"},
		},
		{
			name:    "numeric remote value",
			outcome: webhook.Outcome{StatusCode: 400, Error: `{"errors":[{"message":"Too many licenses","value":5}]}`},
			want:    relay.Result{Success: false, Message: "Too many licenses: 5"},
		},
		{
			name:    "unparsable body",
			outcome: webhook.Outcome{StatusCode: 500, Error: "<html>Bad gateway</html>"},
			want:    relay.Result{Success: false, Message: relay.DefaultFailureMessage},
		},
		{
			name:    "empty errors array",
			outcome: webhook.Outcome{StatusCode: 400, Error: `{"errors":[]}`},
			want:    relay.Result{Success: false, Message: relay.DefaultFailureMessage},
		},
		{
			name:    "entry without value",
			outcome: webhook.Outcome{StatusCode: 400, Error: `{"errors":[{"message":"Invalid"}]}`},
			want:    relay.Result{Success: false, Message: relay.DefaultFailureMessage},
		},
		{
			name:    "different schema",
			outcome: webhook.Outcome{StatusCode: 400, Error: `{"detail":"nope"}`},
			want:    relay.Result{Success: false, Message: relay.DefaultFailureMessage},
		},
		{
			name:    "transport failure is never parsed",
			outcome: webhook.Outcome{Error: `{"errors":[{"message":"Invalid","value":"X"}]}`},
			want:    relay.Result{Success: false, Message: relay.DefaultFailureMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, relay.Format(tt.outcome, tt.override...))
		})
	}
}

func TestFormatter_CustomMessages(t *testing.T) {
	t.Parallel()

	f := relay.Formatter{SuccessMessage: "ok", FailureMessage: "failed"}
	assert.Equal(t, relay.Result{Success: true, Message: "ok"}, f.Format(webhook.Outcome{Success: true}))
	assert.Equal(t, relay.Result{Success: false, Message: "failed"}, f.Format(webhook.Outcome{StatusCode: 500}))
}
