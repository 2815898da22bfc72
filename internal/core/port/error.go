package port

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInterrupted = errors.New("interrupted")
)

type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}
