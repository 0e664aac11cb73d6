package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from a provider. The body is kept so that
// vendor-specific rate-limit codes can be recognized even when the status
// alone is ambiguous.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Body)
}

// IsRateLimited reports whether err means the provider refused the request
// because of rate limiting, which is the only failure the answer pipeline
// retries on the fallback provider.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Status == http.StatusTooManyRequests {
		return true
	}
	body := strings.ToLower(apiErr.Body)
	return strings.Contains(body, "rate_limit_error") ||
		strings.Contains(body, "rate_limit_exceeded") ||
		strings.Contains(body, "insufficient_quota")
}
