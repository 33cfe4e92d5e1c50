package errors

import (
	"net/http"
	"strings"

	"catlog/internal/errors"
)

// Kind classifies an application error. The set is closed: every error a
// workflow returns belongs to exactly one kind, and the transport layer maps
// each kind to a response without inspecting anything else.
type Kind string

const (
	// KindValidation indicates rejected input. Carries the offending field.
	KindValidation Kind = "validation"
	// KindNotFound indicates a missing or inaccessible resource.
	KindNotFound Kind = "not_found"
	// KindUnauthorized indicates a missing or unverifiable identity.
	KindUnauthorized Kind = "unauthorized"
	// KindConfirmationRequired indicates a destructive operation attempted
	// without explicit confirmation.
	KindConfirmationRequired Kind = "confirmation_required"
	// KindDatabase indicates a storage failure. The raw cause is logged,
	// never exposed to clients.
	KindDatabase Kind = "database"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// NewValidationError creates a validation error for a single rejected field.
// The message already names the field; the field path is kept separately in
// the details so clients can bind it to a form input.
func NewValidationError(field, message string) AppError {
	return NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		message,
		field,
	)
}

// NewNotFoundError creates a not-found error for the named resource. The
// same error covers resources that never existed and resources owned by
// someone else, so responses do not leak existence.
func NewNotFoundError(resource, id string) AppError {
	return NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		strings.ToUpper(resource)+"_NOT_FOUND",
		resource+" not found",
		id,
	)
}

// NewUnauthorizedError creates an unauthorized error with the given message.
func NewUnauthorizedError(message string) AppError {
	return NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		message,
		"",
	)
}

// Predefined error types
var (
	// ErrUnauthorized is the default error for requests without a verifiable identity.
	ErrUnauthorized = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	// ErrConfirmationRequired is returned when a destructive operation is
	// attempted without the confirmation flag.
	ErrConfirmationRequired = NewBaseError(
		KindConfirmationRequired,
		http.StatusUnprocessableEntity,
		"CONFIRMATION_REQUIRED",
		"deletion requires confirmation",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error. The wrapped cause
// surfaces through Error for server-side logs; Message and Details stay
// generic so storage internals never reach a client.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying storage error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindDatabase
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
