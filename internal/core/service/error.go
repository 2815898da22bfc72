package service

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNoContentProvided = errors.New("No content provided")
	ErrEmptyContent      = errors.New("No content to share. Provide text as argument, use --file, or pipe content.")
	ErrInvalidExpiry     = errors.New("Invalid expiry time. Use format like: 1h, 24h, 1w, 7d")
	ErrFileNotFound      = errors.New("File not found")
	ErrNotText           = errors.New("File does not appear to be text")
	ErrLoginFailed       = errors.New("Invalid API key or connection failed")
	ErrMissingShareID    = errors.New("Share ID is required")
)

// PathError decorates a file related error with the offending path.
type PathError struct {
	Path   string
	Detail string
	Err    error
}

func (e *PathError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Err.Error(), e.Path, e.Detail)
	}

	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
