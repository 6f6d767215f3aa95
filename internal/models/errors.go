package models

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a domain error for callers that present it to users.
type ErrorCode string

const (
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeInvalid  ErrorCode = "INVALID"
	ErrCodeStorage  ErrorCode = "STORAGE"
)

// Error is a domain-level error with a semantic code.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Common domain errors.
var (
	ErrTaskNotFound  = NewError(ErrCodeNotFound, "task not found")
	ErrEmptyTitle    = NewError(ErrCodeInvalid, "task title must not be empty")
	ErrEmptyNote     = NewError(ErrCodeInvalid, "activity text must not be empty")
	ErrInvalidStatus = NewError(ErrCodeInvalid, "invalid task status")
)

// IsDomainError reports whether err carries the given domain code.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
