package barchart

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	// ErrCodeInvalidConfig marks a chart configuration which cannot be
	// rendered, e.g. a non-positive axis step.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeDraw marks a failure of the drawing capability.
	ErrCodeDraw Code = "DRAW_FAILED"
)

// ErrDivideByZero is the cause of configuration errors which would lead to
// a division by zero, like a zero axis step or an empty axis range.
var ErrDivideByZero = errors.New("division by zero")

// Error is the error type returned by chart rendering. Field names the
// offending configuration field for ErrCodeInvalidConfig.
type Error struct {
	Code    Code
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Field != "" {
		msg += " " + e.Field
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Cause }

func configError(field string, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Code:    ErrCodeInvalidConfig,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

func drawError(cause error, format string, args ...interface{}) *Error {
	return &Error{
		Code:    ErrCodeDraw,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsCode reports whether err or an error it wraps is an *Error with the
// given code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Field returns the configuration field blamed by err, or "" if err is not
// a configuration error.
func Field(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
