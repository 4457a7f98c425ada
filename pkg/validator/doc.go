// Package validator provides small composable validation rules.
//
// Rule constructors evaluate their check immediately. Apply
// collects every failed rule into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.RequiredString("api_key", cfg.APIKey),
//	    validator.ValidURLWithScheme("api_host", cfg.APIHost, []string{"http", "https"}),
//	    validator.MinNum("max_attempts", cfg.MaxAttempts, 1),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("api_key") {
//	    // ...
//	}
package validator
