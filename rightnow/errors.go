package rightnow

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid rightnow configuration")
	// ErrUnexpectedResponse indicates a well-formed response with an unexpected shape
	ErrUnexpectedResponse = errors.New("unexpected response from rightnow API")
	// ErrNilEntity indicates an entity reference built from a nil entity
	ErrNilEntity = errors.New("nil entity reference")
)

// JSONParseError is returned when a response body is not valid JSON.
type JSONParseError struct {
	Body string
	Err  error
}

func (e *JSONParseError) Error() string {
	return fmt.Sprintf("invalid JSON response: %s", e.Body)
}

func (e *JSONParseError) Unwrap() error {
	return e.Err
}

// APIError represents an error reported by the RightNow API, either a
// structured {"error": {...}} body or a non-200 status without one.
type APIError struct {
	Message    string
	Code       int
	HasCode    bool
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.HasCode {
		return fmt.Sprintf("%s (%d)", e.Message, e.Code)
	}
	return e.Message
}

// IsNotFound checks if the error was returned with a not found status
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// MissingFieldError is returned when a successful response lacks the
// top-level key an action is expected to answer with.
type MissingFieldError struct {
	Action   string
	Key      string
	Response any
}

func (e *MissingFieldError) Error() string {
	raw, err := json.Marshal(e.Response)
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", e.Response))
	}
	return fmt.Sprintf("missing `%s` key in %s response: %s", e.Key, e.Action, raw)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrUnexpectedResponse
}
