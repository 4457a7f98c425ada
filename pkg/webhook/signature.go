package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const (
	signingPrefix = "licenseSpring\ndate: "
	// DateLayout is the Date header layout expected by LicenseSpring.
	DateLayout = "Mon, 2 Jan 2006 15:04:05"
)

// Sign returns the base64 HMAC-SHA256 signature of the Date header value.
func Sign(secret, date string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(signingPrefix + date))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// VerifySignature reports whether signature matches the date header.
// Uses constant-time comparison.
func VerifySignature(secret, date, signature string) bool {
	expected := Sign(secret, date)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// DateHeader formats t as a Date header value in GMT.
func DateHeader(t time.Time) string {
	return t.UTC().Format(DateLayout) + " GMT"
}

// AuthorizationHeader builds the Authorization header value.
func AuthorizationHeader(apiKey, signature string) string {
	return strings.Join([]string{
		`algorithm="hmac-sha256"`,
		`headers="date"`,
		fmt.Sprintf(`signature="%s"`, signature),
		fmt.Sprintf(`apiKey="%s"`, apiKey),
	}, ",")
}

// Authorization holds the parameters of an Authorization header.
type Authorization struct {
	Algorithm string
	Headers   string
	Signature string
	APIKey    string
}

// ParseAuthorization splits an Authorization header built by
// AuthorizationHeader back into its parameters.
func ParseAuthorization(header string) (Authorization, error) {
	var auth Authorization
	for part := range strings.SplitSeq(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return Authorization{}, fmt.Errorf("%w: malformed authorization parameter %q", ErrInvalidAuthorization, part)
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "algorithm":
			auth.Algorithm = value
		case "headers":
			auth.Headers = value
		case "signature":
			auth.Signature = value
		case "apiKey":
			auth.APIKey = value
		}
	}

	if auth.Signature == "" || auth.APIKey == "" {
		return Authorization{}, fmt.Errorf("%w: missing signature or api key", ErrInvalidAuthorization)
	}
	return auth, nil
}
