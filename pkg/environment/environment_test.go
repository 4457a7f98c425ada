package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lsrelay/pkg/environment"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := map[string]environment.Environment{
		"production":  environment.Production,
		"prod":        environment.Production,
		" PROD ":      environment.Production,
		"staging":     environment.Staging,
		"stage":       environment.Staging,
		"development": environment.Development,
		"":            environment.Development,
		"qa":          environment.Development,
	}

	for in, want := range tests {
		assert.Equal(t, want, environment.Normalize(in), "input %q", in)
	}
}
