package models

import (
	"errors"
	"fmt"
)

// Domain-level sentinel errors for business logic

var (
	// ErrMutationInFlight indicates a second submission was attempted
	// while an earlier one has not resolved yet
	ErrMutationInFlight = errors.New("another submission is still in progress")

	// ErrUnconfirmedDelete indicates a delete was requested without the
	// caller's confirmation
	ErrUnconfirmedDelete = errors.New("delete was not confirmed")
)

// ValidationError reports input rejected locally. It never involves
// the network and is meant to be shown inline next to the field.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, detail string) *ValidationError {
	return &ValidationError{Field: field, Detail: detail}
}

// AuthenticationError reports a rejected credential exchange.
// It preserves the backend's status code and message for display.
type AuthenticationError struct {
	StatusCode int
	Message    string
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "something went wrong"
}

// NewAuthenticationError creates an AuthenticationError with the given parameters.
func NewAuthenticationError(statusCode int, message string) *AuthenticationError {
	return &AuthenticationError{StatusCode: statusCode, Message: message}
}

// RemoteWriteError reports a create/update/delete the backend rejected
// or that never reached it.
type RemoteWriteError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RemoteWriteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s failed", e.Op)
}

// NewRemoteWriteError creates a RemoteWriteError for the given operation.
func NewRemoteWriteError(op string, statusCode int, message string) *RemoteWriteError {
	return &RemoteWriteError{Op: op, StatusCode: statusCode, Message: message}
}

// RemoteReadError reports a failed collection fetch. The shell shows
// it as a dismissible warning rather than treating it as fatal.
type RemoteReadError struct {
	StatusCode int
	Message    string
}

func (e *RemoteReadError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("loading trials failed: %s", e.Message)
	}
	return "loading trials failed"
}

// NewRemoteReadError creates a RemoteReadError with the given parameters.
func NewRemoteReadError(statusCode int, message string) *RemoteReadError {
	return &RemoteReadError{StatusCode: statusCode, Message: message}
}
