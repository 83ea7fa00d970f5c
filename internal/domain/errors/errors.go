package errors

import (
	"net/http"

	"recipebox/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
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

// Predefined error types
var (
	// ErrUnauthorized covers requests without a valid session.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
	)

	// ErrInvalidCredentials is deliberately identical for an unknown username
	// and a wrong password, so the response never leaks which one it was.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
	)

	// ErrUnprocessable covers signup failures: missing fields, a taken
	// username, or any persistence failure. The same generic body in all
	// three cases.
	ErrUnprocessable = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNPROCESSABLE_ENTITY",
		"Unprocessable Entity",
	)

	// ErrUsernameTaken marks a unique-constraint violation on signup. It
	// still renders as the generic 422 body.
	ErrUsernameTaken = NewBaseError(
		http.StatusUnprocessableEntity,
		"USERNAME_TAKEN",
		"Unprocessable Entity",
	)

	// ErrInvalidRecipe collapses every recipe creation failure (missing
	// fields, validation, type conversion, integrity) into one generic body.
	ErrInvalidRecipe = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_RECIPE",
		"Invalid recipe",
	)

	// ErrUserNotFound is returned when a session references a user that no
	// longer exists.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	// ErrInternalError is the fallback for unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// ValidationError is a field-level validation failure raised at entity
// construction time. Unlike the predefined errors above, its message carries
// the specific rule that was broken.
type ValidationError struct {
	message string
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.message
}
