package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned by the domain layer. The HTTP layer maps these onto
// status codes; the domain itself is transport-agnostic.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeTransient       = "TRANSIENT"
	CodeInternal        = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// AppError is the application error type. Every error that crosses the
// service boundary is one of these; storage failures are classified into a
// code before they propagate.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed or out-of-range caller input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewNotFoundError covers both genuinely absent entities and entities owned
// by another user, so existence of other users' data never leaks.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found"}
}

// NewConflictError reports a uniqueness violation such as a duplicate email.
func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// NewUnauthenticatedError reports a missing, expired or invalid session.
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

// NewTransientError reports a storage timeout or other retryable failure.
func NewTransientError(err error) *AppError {
	return &AppError{Code: CodeTransient, Message: "temporarily unavailable", Err: err}
}

// NewInternalError wraps an unexpected failure. The wrapped cause is logged
// but never surfaced to the caller.
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal server error", Err: err}
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// statusFor maps an error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	case CodeTransient:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes a standardized error response, deriving the HTTP
// status from the error's code. Internal causes are not echoed to the client.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}
	return c.Status(statusFor(appErr.Code)).JSON(ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code,
	})
}
