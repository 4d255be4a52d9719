// Package errors defines the application error taxonomy shared by the use
// cases and the HTTP delivery.
package errors

import (
	"net/http"

	"folio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by taxonomy entry, so a copy carrying details still
// compares equal to its predefined sentinel.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Content editing errors
	ErrMalformedStructure = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_STRUCTURE",
		"The structured text could not be decoded",
		"",
	)

	ErrMissingField = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELD",
		"A required field is missing",
		"",
	)

	ErrUnknownField = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_FIELD",
		"The field name is not part of the portfolio document",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"The requested item does not exist",
		"",
	)

	// Admin auth errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrReauthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"REAUTHENTICATION_REQUIRED",
		"Too much time has passed since login; please log out and log in again",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"The new email is already in use by another credential",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Admin authentication is required",
		"",
	)

	// Storage errors
	ErrStorageUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
		"The storage backend failed to initialize or respond",
		"",
	)

	ErrWatchUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"WATCH_UNSUPPORTED",
		"The configured storage backend does not support push updates",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
