package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrTimeout indicates the model call exceeded its deadline.
	// Retryable by the caller.
	ErrTimeout = errors.New("model timeout")

	// ErrRateLimited indicates the provider signaled quota exhaustion.
	// Callers should back off before retrying.
	ErrRateLimited = errors.New("model rate limited")

	// ErrAuth indicates the provider rejected the configured credentials.
	// Configuration-level, not retryable.
	ErrAuth = errors.New("model auth error")

	// ErrSchemaViolation indicates the model returned data that does not
	// conform to the required shape.
	ErrSchemaViolation = errors.New("model response violates schema")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// statusCarrier is implemented by the vendor clients' APIError types.
type statusCarrier interface {
	HTTPStatus() int
}

// Classify maps a raw client error onto the typed taxonomy. Vendor clients
// surface HTTP status through their APIError types, so no response-body
// string matching happens here or anywhere downstream.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var sc statusCarrier
	if errors.As(err, &sc) {
		switch sc.HTTPStatus() {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
	}

	return err
}
