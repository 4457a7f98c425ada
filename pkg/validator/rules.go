package validator

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// RequiredString fails on empty or whitespace-only values.
func RequiredString(field, value string) Rule {
	return newRule(strings.TrimSpace(value) != "", field, "field is required")
}

func HasPrefix(field, value, prefix string) Rule {
	return newRule(strings.HasPrefix(value, prefix), field, fmt.Sprintf("must start with %q", prefix))
}

// ValidURLWithScheme requires an absolute URL with a host and one of schemes.
func ValidURLWithScheme(field, value string, schemes []string) Rule {
	ok := false
	if u, err := url.ParseRequestURI(strings.TrimSpace(value)); err == nil {
		ok = u.Host != "" && slices.Contains(schemes, u.Scheme)
	}
	return newRule(ok, field, "must be a valid URL with scheme: "+strings.Join(schemes, ", "))
}

func MinNum[T Numeric](field string, value, min T) Rule {
	return newRule(value >= min, field, fmt.Sprintf("must be at least %v", min))
}
