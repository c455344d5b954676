// Package errors provides standardized error handling for backend API calls.
package errors

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeNoToken          ErrorCode = "NO_TOKEN"
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeRequestTimeout   ErrorCode = "REQUEST_TIMEOUT"
	ErrCodeServerError      ErrorCode = "SERVER_ERROR"
	ErrCodeNetworkError     ErrorCode = "NETWORK_ERROR"
	ErrCodeDecodeFailed     ErrorCode = "DECODE_FAILED"
)

// GenericMessage is the fallback surfaced when the server supplies no message.
const GenericMessage = "an unexpected error occurred"

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewNoTokenError is returned when a call is refused locally because no
// credential is stored.
func NewNoTokenError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoToken,
		Message:   "no token found",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnauthorizedError is returned on HTTP 401. The stored token has been
// cleared by the time the caller sees this.
func NewUnauthorizedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnauthorized,
		Message:   "authentication required",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError flattens a field→messages map from an HTTP 422 body into
// one joined string.
func NewValidationError(fieldErrors map[string][]string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   FlattenFieldErrors(fieldErrors),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError is returned on HTTP 404.
func NewNotFoundError(resource, id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("%s not found", resource),
		Details:   fmt.Sprintf("id: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestTimeoutError is returned when a request exceeds its deadline.
func NewRequestTimeoutError(resource string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestTimeout,
		Message:   fmt.Sprintf("request to %s timed out", resource),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewServerError wraps an HTTP 5xx or any unclassified failure. When the
// server supplies no message, the generic one is surfaced.
func NewServerError(message string, status int) *StandardError {
	if strings.TrimSpace(message) == "" {
		message = GenericMessage
	}
	return &StandardError{
		Code:      ErrCodeServerError,
		Message:   message,
		Details:   fmt.Sprintf("status: %d", status),
		Retryable: status >= 500,
		Timestamp: time.Now().UTC(),
	}
}

// NewNetworkError wraps a transport-level failure (connection refused, DNS).
func NewNetworkError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNetworkError,
		Message:   GenericMessage,
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDecodeError wraps an unreadable response body.
func NewDecodeError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecodeFailed,
		Message:   GenericMessage,
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// FlattenFieldErrors joins a field→messages map into a single comma-joined
// string, fields in stable order.
func FlattenFieldErrors(fieldErrors map[string][]string) string {
	if len(fieldErrors) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, msg := range fieldErrors[field] {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	return strings.Join(parts, ", ")
}

// Code extracts the error code from any error.
func Code(err error) ErrorCode {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Code
	}
	return "UNKNOWN_ERROR"
}

// IsNoToken reports whether the call was refused locally for lack of a token.
func IsNoToken(err error) bool {
	return Code(err) == ErrCodeNoToken
}

// IsUnauthorized reports whether the backend rejected the credential.
func IsUnauthorized(err error) bool {
	return Code(err) == ErrCodeUnauthorized
}

// IsValidation reports whether the backend rejected the payload with 422.
func IsValidation(err error) bool {
	return Code(err) == ErrCodeValidationFailed
}

// IsNotFound reports whether the resource was missing.
func IsNotFound(err error) bool {
	return Code(err) == ErrCodeNotFound
}

// Convert wraps an arbitrary error as a StandardError, passing through ones
// that already are.
func Convert(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "UNKNOWN_ERROR",
		Message:   GenericMessage,
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
