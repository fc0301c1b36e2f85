package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable marks an operation that exhausted its retry budget.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError captures rate limit responses from the upstream API.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusError captures a non-2xx upstream response that is not a rate limit.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// StatusCodeOf extracts the upstream HTTP status from an error chain, or 0.
func StatusCodeOf(err error) int {
	if rl, ok := AsRateLimitError(err); ok {
		return rl.StatusCode
	}
	if se, ok := AsStatusError(err); ok {
		return se.StatusCode
	}
	return 0
}
