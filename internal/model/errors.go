package model

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every MalformedInputError via errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports input that cannot be projected at all.
// Business-rule problems are reported as diagnostics instead.
type MalformedInputError struct {
	Class  string
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *MalformedInputError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	if e.Class == "" {
		return "malformed input: " + msg
	}

	return fmt.Sprintf("malformed input: class %s: %s", e.Class, msg)
}

// Unwrap returns the underlying cause.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedInput) true.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// Malformed builds a *MalformedInputError with a formatted reason.
func Malformed(class, format string, args ...any) error {
	return &MalformedInputError{Class: class, Reason: fmt.Sprintf(format, args...)}
}
