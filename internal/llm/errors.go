package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// APIError is a provider error with enough shape to decide whether a retry
// can help. Auth failures and exhausted quotas never heal on retry; rate
// limits and server-side errors usually do.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return "llm provider error: " + e.Message + " (" + e.Type + ")"
}

// Transient reports whether retrying the same request can plausibly succeed.
func (e *APIError) Transient() bool {
	if e.Type == "insufficient_quota" {
		return false
	}
	switch {
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= 500:
		return true
	}
	return false
}

// IsTransient classifies an analysis error. Timeouts and network failures
// count as transient alongside retryable provider responses; everything else,
// bad credentials included, fails immediately.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	// The stdlib http client reports its own timeout as a plain error string.
	return strings.Contains(err.Error(), "Client.Timeout")
}
