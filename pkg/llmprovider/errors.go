package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest marks failures that repeating the same request cannot fix.
	ErrInvalidRequest      = errors.New("invalid request")
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// Outcome labels for provider calls.
const (
	outcomeOK           = "ok"
	outcomeTimeout      = "timeout"
	outcomeRateLimited  = "rate_limited"
	outcomeInvalid      = "invalid_request"
	outcomeError        = "error"
	outcomeUnclassified = ""
)

// ProviderError wraps the last failure of one provider in the fallback chain.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (%d attempt(s)): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type httpStatusError interface {
	HTTPStatus() int
}

// classify tags a client error with the matching sentinel so callers can use errors.Is.
// Caller cancellation is returned untouched.
func classify(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}

	switch outcomeOf(err) {
	case outcomeTimeout:
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	case outcomeRateLimited:
		return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	case outcomeInvalid:
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return err
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrProviderTimeout):
		return outcomeTimeout
	case errors.Is(err, ErrProviderRateLimited):
		return outcomeRateLimited
	case errors.Is(err, ErrInvalidRequest):
		return outcomeInvalid
	case errors.Is(err, context.DeadlineExceeded):
		return outcomeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return outcomeTimeout
	}

	var se httpStatusError
	if errors.As(err, &se) {
		switch code := se.HTTPStatus(); {
		case code == http.StatusTooManyRequests:
			return outcomeRateLimited
		case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
			return outcomeTimeout
		case code >= 400 && code < 500:
			return outcomeInvalid
		}
	}
	return outcomeUnclassified
}

// retryable reports whether the same provider may succeed on another attempt.
func retryable(err error) bool {
	return !errors.Is(err, ErrInvalidRequest) && !errors.Is(err, context.Canceled)
}
