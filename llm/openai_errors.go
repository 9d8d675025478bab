// ABOUTME: Shared openai-go client options and translation of SDK failures into the llm error hierarchy.
// ABOUTME: SDK retries are disabled; a failure reaches the caller after exactly one attempt.

package llm

import (
	"context"
	"errors"
	"net"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// clientOptions builds the base option set shared by both adapters.
func clientOptions(apiKey, baseURL string, extra []option.RequestOption) []option.RequestOption {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return append(opts, extra...)
}

// translateError maps an openai-go error to the llm error types.
func translateError(provider string, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error()
		}
		return ErrorFromStatusCode(apiErr.StatusCode, message, provider, apiErr.Code, nil)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &RequestTimeoutError{SDKError: SDKError{Message: provider + " request timed out", Cause: err}}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &RequestTimeoutError{SDKError: SDKError{Message: provider + " request timed out", Cause: err}}
	}

	return &NetworkError{SDKError: SDKError{Message: provider + " request failed", Cause: err}}
}
