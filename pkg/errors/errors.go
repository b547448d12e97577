package errors

import "fmt"

// HTTPError is a delivery-facing error carrying the HTTP status the handler
// should respond with. UseCase errors are translated into HTTPError by each
// delivery layer's mapError.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}
