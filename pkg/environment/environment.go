// Package environment names the deployment environments the relay runs in.
package environment

import "strings"

type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Normalize maps env names and their short forms to an Environment.
// Unknown values fall back to Development.
func Normalize(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}
