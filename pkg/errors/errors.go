package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a failure class. Codes are stable strings so
// handlers and clients can switch on them without string-matching
// messages.
type ErrorCode string

const (
	ErrCodeInternal  ErrorCode = "INTERNAL_ERROR"
	ErrCodeNotFound  ErrorCode = "NOT_FOUND"
	ErrCodeTransient ErrorCode = "TRANSIENT_ERROR"

	// Authentication
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeTooManyAttempts    ErrorCode = "TOO_MANY_ATTEMPTS"
	ErrCodeAccountDisabled    ErrorCode = "ACCOUNT_DISABLED"
	ErrCodeEmailInUse         ErrorCode = "EMAIL_IN_USE"
	ErrCodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	ErrCodeInvalidEmail       ErrorCode = "INVALID_EMAIL"
	ErrCodeAuthUnknown        ErrorCode = "AUTH_UNKNOWN"

	// Directory
	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserAlreadyExists ErrorCode = "USER_ALREADY_EXISTS"
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeMissingRequired   ErrorCode = "MISSING_REQUIRED"
)

// Error carries a code, a message safe to show the caller, optional
// structured details, and the wrapped cause.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail attaches one structured detail and returns the error for
// chaining.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// HTTPStatusCode returns the status a handler should respond with
func (e *Error) HTTPStatusCode() int {
	return MapErrorCodeToHTTPStatus(e.Code)
}

// New creates an error with a code and a caller-facing message
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. Returns nil
// when err is nil so it can wrap call results directly.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// IsCode reports whether err carries the given code anywhere in its
// chain.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// GetCode extracts the code from err, defaulting to ErrCodeInternal
// for unstructured errors.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// NotFound creates a not-found error naming the resource
func NotFound(resourceType, identifier string) *Error {
	return Newf(ErrCodeNotFound, "%s not found: %s", resourceType, identifier)
}

// ValidationFailed creates a validation error carrying the failing
// field as a detail.
func ValidationFailed(field, reason string) *Error {
	return Newf(ErrCodeValidationFailed, "validation failed: %s %s", field, reason).
		WithDetail("field", field)
}

// Transient wraps an infrastructure failure the caller may retry
func Transient(err error, message string) *Error {
	return Wrap(err, ErrCodeTransient, message)
}

// MapErrorCodeToHTTPStatus maps a code to its HTTP response status
func MapErrorCodeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodeMissingRequired,
		ErrCodeWeakPassword, ErrCodeInvalidEmail:
		return http.StatusBadRequest
	case ErrCodeInvalidCredentials, ErrCodeAuthUnknown:
		return http.StatusUnauthorized
	case ErrCodeAccountDisabled:
		return http.StatusForbidden
	case ErrCodeNotFound, ErrCodeUserNotFound:
		return http.StatusNotFound
	case ErrCodeUserAlreadyExists, ErrCodeEmailInUse:
		return http.StatusConflict
	case ErrCodeTooManyAttempts:
		return http.StatusTooManyRequests
	case ErrCodeTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
