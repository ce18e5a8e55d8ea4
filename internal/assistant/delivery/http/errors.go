package http

import (
	"context"
	"errors"
	"net/http"

	"voice-intent/internal/assistant"
	"voice-intent/internal/intent"
	"voice-intent/pkg/llmprovider"
	"voice-intent/pkg/response"
)

var errInvalidRole = errors.New("history role must be one of system, user, assistant, tool, function")

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyDeviceID),
		errors.Is(err, assistant.ErrEmptyText),
		errors.Is(err, intent.ErrEmptyText):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, intent.ErrLLMNotConfigured):
		return response.NewHTTPError(http.StatusServiceUnavailable, "intent recognition is not configured")
	case errors.Is(err, llmprovider.ErrAllProvidersFailed):
		return response.NewHTTPError(http.StatusBadGateway, "language model unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return response.NewHTTPError(http.StatusGatewayTimeout, "language model timed out")
	case errors.Is(err, context.Canceled):
		return response.NewHTTPError(499, "request cancelled")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
