// File: api/errors.go
// Package api defines common error types for the disposepool library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrUseAfterDispose is returned by the checked buffer accessor when
	// the handle has already been disposed. The unchecked accessor never
	// returns it.
	ErrUseAfterDispose = fmt.Errorf("operating on a disposed buffer: unsafe")

	// ErrAllocationFailure wraps failures of the underlying allocator.
	// The pool never retries or downgrades it.
	ErrAllocationFailure = fmt.Errorf("buffer allocation failed")

	// ErrInvalidArgument covers degenerate requests such as a
	// non-positive capacity on the acquire path.
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// ErrProviderClosed is returned when acquiring from a provider whose
	// sweeper has been shut down.
	ErrProviderClosed = fmt.Errorf("bytes provider is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeDisposedAccess
	ErrCodeAllocationFailure
	ErrCodeInvalidArgument
	ErrCodeClosed
	ErrCodeInternal
)

// Error represents a structured error with code and context. Every
// failure the pool produces carries one; Unwrap maps the code back onto
// the matching sentinel, so errors.Is against the sentinels above keeps
// working on the structured form.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap returns the sentinel corresponding to the error code.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeDisposedAccess:
		return ErrUseAfterDispose
	case ErrCodeAllocationFailure:
		return ErrAllocationFailure
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeClosed:
		return ErrProviderClosed
	default:
		return nil
	}
}

// NewError creates a new structured error. Context is allocated lazily
// by WithContext.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
