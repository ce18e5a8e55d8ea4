package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

type statusErr struct {
	code int
}

func (e *statusErr) Error() string   { return fmt.Sprintf("status %d", e.code) }
func (e *statusErr) HTTPStatus() int { return e.code }

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		want      error
		retryable bool
		label     string
	}{
		{"rate limited", &statusErr{code: http.StatusTooManyRequests}, ErrProviderRateLimited, true, outcomeRateLimited},
		{"unauthorized", &statusErr{code: http.StatusUnauthorized}, ErrInvalidRequest, false, outcomeInvalid},
		{"gateway timeout", &statusErr{code: http.StatusGatewayTimeout}, ErrProviderTimeout, true, outcomeTimeout},
		{"deadline", fmt.Errorf("send: %w", context.DeadlineExceeded), ErrProviderTimeout, true, outcomeTimeout},
		{"server error", &statusErr{code: http.StatusInternalServerError}, nil, true, outcomeError},
		{"plain", errors.New("boom"), nil, true, outcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if !errors.Is(got, tt.err) {
				t.Errorf("classify lost the original error: %v", got)
			}
			if tt.want != nil && !errors.Is(got, tt.want) {
				t.Errorf("expected %v in chain, got %v", tt.want, got)
			}
			if retryable(got) != tt.retryable {
				t.Errorf("retryable = %v, want %v", retryable(got), tt.retryable)
			}
			if l := outcomeLabel(got); l != tt.label {
				t.Errorf("outcomeLabel = %q, want %q", l, tt.label)
			}
		})
	}
}

func TestClassify_CancelUntouched(t *testing.T) {
	if got := classify(context.Canceled); got != context.Canceled {
		t.Errorf("expected context.Canceled unchanged, got %v", got)
	}
	if retryable(context.Canceled) {
		t.Error("cancellation must not be retried")
	}
	if classify(nil) != nil {
		t.Error("expected nil")
	}
}
