package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrBadRequest       = errors.New("Invalid request")
	ErrUnauthorized     = errors.New("Authentication failed - check your API key")
	ErrForbidden        = errors.New("Access denied - upgrade your plan for this feature")
	ErrRateLimited      = errors.New("Rate limit exceeded - please wait before trying again")
	ErrServer           = errors.New("Server error - please try again later")
	ErrUnexpectedStatus = errors.New("Unexpected response status")
	ErrNetwork          = errors.New("Network error - check your internet connection")
	ErrAPIKeyRequired   = errors.New("API key required")
	ErrInvalidShareID   = errors.New("Invalid share id")
)

// Error is returned for every failed call to the sharing service. It unwraps
// to one of the sentinel errors of this package.
type Error struct {
	StatusCode int
	Message    string
	Cause      error

	kind error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.kind, e.Cause}
	}

	return []error{e.kind}
}

type errorResponse struct {
	Error string `json:"error"`
}

const maxErrorBodySize = 64 * 1024

func newStatusError(res *http.Response) *Error {
	var payload errorResponse

	data, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
	if err == nil && len(data) > 0 {
		// Non JSON error bodies are ignored
		_ = json.Unmarshal(data, &payload)
	}

	e := &Error{
		StatusCode: res.StatusCode,
	}

	switch res.StatusCode {
	case http.StatusBadRequest:
		e.kind = ErrBadRequest
		e.Message = payload.Error
		if e.Message == "" {
			e.Message = ErrBadRequest.Error()
		}
	case http.StatusUnauthorized:
		e.kind = ErrUnauthorized
		e.Message = ErrUnauthorized.Error()
	case http.StatusForbidden:
		e.kind = ErrForbidden
		e.Message = ErrForbidden.Error()
	case http.StatusTooManyRequests:
		e.kind = ErrRateLimited
		e.Message = ErrRateLimited.Error()
	case http.StatusInternalServerError:
		e.kind = ErrServer
		e.Message = ErrServer.Error()
	default:
		e.kind = ErrUnexpectedStatus
		e.Message = payload.Error
		if e.Message == "" {
			e.Message = fmt.Sprintf("HTTP %d: %s", res.StatusCode, http.StatusText(res.StatusCode))
		}
	}

	return e
}

func newNetworkError(cause error) *Error {
	return &Error{
		Message: ErrNetwork.Error(),
		Cause:   cause,
		kind:    ErrNetwork,
	}
}

func newAPIKeyRequiredError(message string) *Error {
	return &Error{
		Message: message,
		kind:    ErrAPIKeyRequired,
	}
}
