// Package errors provides structured error types for dynhelp.
//
// Help is UI glue, so the taxonomy is shallow. Most misconfigurations degrade
// to "nothing shown" at runtime; these codes surface when tour definitions
// are loaded or validated, and in diagnostics logged by the controller.
//
// # Error Codes
//
//   - INVALID_*: malformed input (positions, margins, tour files)
//   - *_NOT_FOUND: a flow or item id that is not part of the current state
//   - DUPLICATE_ID: two flows or items share an id
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPosition, "unknown position %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidPosition) {
//	    // fall back to the default position
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a category of failure. Codes are stable strings so the
// preview server can return them in JSON error bodies.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidPosition Code = "INVALID_POSITION"
	ErrCodeInvalidMargin   Code = "INVALID_MARGIN"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeDuplicateID     Code = "DUPLICATE_ID"

	ErrCodeFlowNotFound Code = "FLOW_NOT_FOUND"
	ErrCodeItemNotFound Code = "ITEM_NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// ErrCodeUnsupported marks output formats that need a missing tool.
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error carries a Code, a message for people, and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause attached.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// find returns the outermost *Error in err's chain.
func find(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain carries code.
func Is(err error, code Code) bool {
	e, ok := find(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := find(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage strips the code prefix and cause for display. Errors that are
// not *Error are returned as-is.
func UserMessage(err error) string {
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}

// Join is errors.Join, re-exported so callers need only this package.
// Tour validation uses it to report every problem at once.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
