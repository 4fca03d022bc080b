package gemini

import (
	"errors"
	"strings"

	"github.com/at-ishikawa/glossa/internal/inference"
)

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// A payload that parsed as JSON but failed schema validation will not get
	// better on a retry.
	var malformed *inference.MalformedResponseError
	if errors.As(err, &malformed) {
		return false
	}

	// Retry on network-related errors
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}
