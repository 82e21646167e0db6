// Package errors provides the standardized error taxonomy for the proposal assistant.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeExternalAPI   ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTransport     ErrorCode = "TRANSPORT_ERROR"
	ErrCodePayloadParse  ErrorCode = "PAYLOAD_PARSE_ERROR"
)

// ConfigurationError signals a missing or unusable secret. It is fatal at
// first use and never recovered in-request.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s environment variable is not set", e.Variable)
}

func NewConfigurationError(variable string) *ConfigurationError {
	return &ConfigurationError{Variable: variable}
}

// ValidationError carries per-field detail for a rejected input. Callers
// branch on it locally; it maps to a 400 at the HTTP boundary.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Details)
}

func NewValidationError(message string, details ...string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

// ExternalAPIError is a non-2xx response from the remote proposal API. The
// status code, status text, and response body are always preserved so the
// failure can be diagnosed without replaying the request.
type ExternalAPIError struct {
	Operation  string // e.g. "Failed to fetch", "Failed to create"
	StatusCode int
	StatusText string
	Body       string
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("%s: %d %s - %s", e.Operation, e.StatusCode, e.StatusText, e.Body)
}

func NewExternalAPIError(operation string, statusCode int, statusText, body string) *ExternalAPIError {
	return &ExternalAPIError{
		Operation:  operation,
		StatusCode: statusCode,
		StatusText: statusText,
		Body:       body,
	}
}

// TransportError wraps a failure to reach the remote API at all. The raw
// underlying message is surfaced as-is.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Err.Error())
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(operation string, err error) *TransportError {
	return &TransportError{Operation: operation, Err: err}
}

// ErrInvalidProposalPayload is returned when the model's text output is not
// valid JSON. The raw model text is discarded, never forwarded.
var ErrInvalidProposalPayload = errors.New("invalid proposal payload")

// CodeOf classifies an error into the taxonomy for logging and metrics.
func CodeOf(err error) ErrorCode {
	var (
		configErr    *ConfigurationError
		validErr     *ValidationError
		apiErr       *ExternalAPIError
		transportErr *TransportError
	)
	switch {
	case errors.As(err, &configErr):
		return ErrCodeConfiguration
	case errors.As(err, &validErr):
		return ErrCodeValidation
	case errors.As(err, &apiErr):
		return ErrCodeExternalAPI
	case errors.As(err, &transportErr):
		return ErrCodeTransport
	case errors.Is(err, ErrInvalidProposalPayload):
		return ErrCodePayloadParse
	default:
		return "UNKNOWN_ERROR"
	}
}
