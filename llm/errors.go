// ABOUTME: Error hierarchy for the LLM client: configuration, rate limit, timeout, invalid request, and service errors.
// ABOUTME: Classify collapses any error into one of the five kinds callers turn into user-facing messages.

package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrorKind is the coarse failure category surfaced to callers.
type ErrorKind int

const (
	KindService ErrorKind = iota
	KindConfiguration
	KindRateLimited
	KindTimeout
	KindInvalidRequest
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return "service"
	}
}

// SDKError is the base error type. Every other error type embeds it either
// directly or through ProviderError.
type SDKError struct {
	Message string
	Cause   error
}

func (e *SDKError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *SDKError) Unwrap() error {
	return e.Cause
}

// Kind reports KindService for the base type. Subtypes override this.
func (e *SDKError) Kind() ErrorKind { return KindService }

// ProviderError is an error response from a provider's API.
type ProviderError struct {
	SDKError
	Provider   string
	StatusCode int
	ErrorCode  string
	Raw        json.RawMessage
}

func (e *ProviderError) Error() string { return e.SDKError.Error() }
func (e *ProviderError) Unwrap() error { return e.SDKError.Unwrap() }

// Kind reports KindService; unclassified provider failures are service errors.
func (e *ProviderError) Kind() ErrorKind { return KindService }

// As enables errors.As to match SDKError from a ProviderError.
func (e *ProviderError) As(target any) bool {
	switch t := target.(type) {
	case **SDKError:
		*t = &e.SDKError
		return true
	default:
		return false
	}
}

// providerAs is the shared As implementation for ProviderError subtypes.
func providerAs(e *ProviderError, target any) bool {
	switch t := target.(type) {
	case **ProviderError:
		*t = e
		return true
	case **SDKError:
		*t = &e.SDKError
		return true
	default:
		return false
	}
}

// InvalidRequestError represents a 400, 413, or 422 response: input too long
// or otherwise rejected.
type InvalidRequestError struct {
	ProviderError
}

func (e *InvalidRequestError) Error() string      { return e.ProviderError.Error() }
func (e *InvalidRequestError) Unwrap() error      { return e.ProviderError.Unwrap() }
func (e *InvalidRequestError) Kind() ErrorKind    { return KindInvalidRequest }
func (e *InvalidRequestError) As(target any) bool { return providerAs(&e.ProviderError, target) }

// RateLimitError represents a 429 Too Many Requests response.
type RateLimitError struct {
	ProviderError
}

func (e *RateLimitError) Error() string      { return e.ProviderError.Error() }
func (e *RateLimitError) Unwrap() error      { return e.ProviderError.Unwrap() }
func (e *RateLimitError) Kind() ErrorKind    { return KindRateLimited }
func (e *RateLimitError) As(target any) bool { return providerAs(&e.ProviderError, target) }

// AuthenticationError represents a 401 or 403 response: the credential exists
// but the provider rejected it.
type AuthenticationError struct {
	ProviderError
}

func (e *AuthenticationError) Error() string      { return e.ProviderError.Error() }
func (e *AuthenticationError) Unwrap() error      { return e.ProviderError.Unwrap() }
func (e *AuthenticationError) Kind() ErrorKind    { return KindService }
func (e *AuthenticationError) As(target any) bool { return providerAs(&e.ProviderError, target) }

// ServerError represents a 5xx response.
type ServerError struct {
	ProviderError
}

func (e *ServerError) Error() string      { return e.ProviderError.Error() }
func (e *ServerError) Unwrap() error      { return e.ProviderError.Unwrap() }
func (e *ServerError) Kind() ErrorKind    { return KindService }
func (e *ServerError) As(target any) bool { return providerAs(&e.ProviderError, target) }

// RequestTimeoutError represents a 408 response or a client-side deadline.
type RequestTimeoutError struct {
	SDKError
}

func (e *RequestTimeoutError) Error() string   { return e.SDKError.Error() }
func (e *RequestTimeoutError) Unwrap() error   { return e.SDKError.Unwrap() }
func (e *RequestTimeoutError) Kind() ErrorKind { return KindTimeout }

func (e *RequestTimeoutError) As(target any) bool {
	switch t := target.(type) {
	case **SDKError:
		*t = &e.SDKError
		return true
	default:
		return false
	}
}

// NetworkError represents a transport failure (DNS, connection refused, etc.).
type NetworkError struct {
	SDKError
}

func (e *NetworkError) Error() string   { return e.SDKError.Error() }
func (e *NetworkError) Unwrap() error   { return e.SDKError.Unwrap() }
func (e *NetworkError) Kind() ErrorKind { return KindService }

func (e *NetworkError) As(target any) bool {
	switch t := target.(type) {
	case **SDKError:
		*t = &e.SDKError
		return true
	default:
		return false
	}
}

// ConfigurationError represents a local configuration problem, usually a
// missing API key. Its message is shown to users verbatim.
type ConfigurationError struct {
	SDKError
}

func (e *ConfigurationError) Error() string   { return e.SDKError.Error() }
func (e *ConfigurationError) Unwrap() error   { return e.SDKError.Unwrap() }
func (e *ConfigurationError) Kind() ErrorKind { return KindConfiguration }

func (e *ConfigurationError) As(target any) bool {
	switch t := target.(type) {
	case **SDKError:
		*t = &e.SDKError
		return true
	default:
		return false
	}
}

// ErrorFromStatusCode maps an HTTP status code to the matching error type.
// Unknown status codes become a plain ProviderError (a service error).
func ErrorFromStatusCode(statusCode int, message, provider, errorCode string, raw json.RawMessage) error {
	base := ProviderError{
		SDKError:   SDKError{Message: message},
		Provider:   provider,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Raw:        raw,
	}

	switch {
	case statusCode == 400, statusCode == 413, statusCode == 422:
		return &InvalidRequestError{ProviderError: base}
	case statusCode == 401, statusCode == 403:
		return &AuthenticationError{ProviderError: base}
	case statusCode == 408:
		return &RequestTimeoutError{SDKError: SDKError{Message: message}}
	case statusCode == 429:
		return &RateLimitError{ProviderError: base}
	case statusCode >= 500 && statusCode <= 599:
		return &ServerError{ProviderError: base}
	default:
		return &base
	}
}

// Classify returns the kind of the first error in err's chain that reports
// one. An untyped deadline is a timeout; anything else unrecognized is a
// service error.
func Classify(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindService
}
