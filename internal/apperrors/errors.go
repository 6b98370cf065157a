package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPersistence indicates that the store rejected a read or a write.
var ErrPersistence = errors.New("persistence error")

// ErrUnauthorized indicates that no user identity is attached to the request.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries a status-like code and a message alongside the underlying cause.
// Repositories return it for transport failures; it matches ErrPersistence via errors.Is.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports every AppError with a 5xx code as a persistence failure.
func (e *AppError) Is(target error) bool {
	return target == ErrPersistence && e.Code >= 500
}

// NewValidationError wraps ErrValidation with a formatted detail message.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewNotFoundError wraps ErrNotFound with a detail message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}
