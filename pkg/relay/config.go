package relay

import (
	"time"

	"github.com/dmitrymomot/lsrelay/pkg/validator"
	"github.com/dmitrymomot/lsrelay/pkg/webhook"
)

const (
	DefaultAPIHost       = "https://api.licensespring.com"
	DefaultOrderEndpoint = "/api/v3/webhook/order"

	// DefaultSuccessMessage keeps the historical spelling; existing frontends match on it.
	DefaultSuccessMessage = "License keys successfuly activated."
	DefaultFailureMessage = "There was a problem activating your license keys. Please contact LicenseSpring."
)

// Config holds the immutable settings of a Relay.
type Config struct {
	APIKey    string `env:"LICENSESPRING_API_KEY,required"`
	SecretKey string `env:"LICENSESPRING_SECRET_KEY,required"`

	APIHost       string `env:"LICENSESPRING_API_HOST" envDefault:"https://api.licensespring.com"`
	OrderEndpoint string `env:"LICENSESPRING_ORDER_ENDPOINT" envDefault:"/api/v3/webhook/order"`

	MaxAttempts    int           `env:"LICENSESPRING_MAX_ATTEMPTS" envDefault:"10"`
	BackoffStep    time.Duration `env:"LICENSESPRING_BACKOFF_STEP" envDefault:"100ms"`
	RequestTimeout time.Duration `env:"LICENSESPRING_REQUEST_TIMEOUT" envDefault:"10s"`

	SuccessMessage string `env:"LICENSESPRING_SUCCESS_MESSAGE" envDefault:"License keys successfuly activated."`
	FailureMessage string `env:"LICENSESPRING_FAILURE_MESSAGE" envDefault:"There was a problem activating your license keys. Please contact LicenseSpring."`
}

// DefaultConfig returns the production settings for the given credentials.
func DefaultConfig(apiKey, secretKey string) Config {
	return Config{
		APIKey:         apiKey,
		SecretKey:      secretKey,
		APIHost:        DefaultAPIHost,
		OrderEndpoint:  DefaultOrderEndpoint,
		MaxAttempts:    webhook.DefaultMaxAttempts,
		BackoffStep:    webhook.DefaultBackoffStep,
		RequestTimeout: 10 * time.Second,
		SuccessMessage: DefaultSuccessMessage,
		FailureMessage: DefaultFailureMessage,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	return validator.Apply(
		validator.RequiredString("api_key", c.APIKey),
		validator.RequiredString("secret_key", c.SecretKey),
		validator.ValidURLWithScheme("api_host", c.APIHost, []string{"http", "https"}),
		validator.HasPrefix("order_endpoint", c.OrderEndpoint, "/"),
		validator.MinNum("max_attempts", c.MaxAttempts, 1),
		validator.MinNum("backoff_step", c.BackoffStep, time.Millisecond),
		validator.MinNum("request_timeout", c.RequestTimeout, time.Millisecond),
		validator.RequiredString("success_message", c.SuccessMessage),
		validator.RequiredString("failure_message", c.FailureMessage),
	)
}

func (c Config) formatter() Formatter {
	return Formatter{SuccessMessage: c.SuccessMessage, FailureMessage: c.FailureMessage}
}
