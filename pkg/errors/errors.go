// Package errors provides the structured error types used throughout the
// binding. Every fallible native call is translated into one of these types,
// so callers can branch on the failure class with errors.As instead of
// matching message text.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NativeError is a failure reported by the native library itself: a native
// call returned a non-zero status. Message carries the native layer's own
// last-error text when it was available.
type NativeError struct {
	Op      string // wrapper operation, e.g. "DatasetCreateFromMat"
	Code    int    // raw native status
	Message string
}

func (e *NativeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lgbm: %s: native call failed (status %d): %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("lgbm: %s: native call failed (status %d)", e.Op, e.Code)
}

// MarshalZerologObject adds the structured failure to a zerolog event.
func (e *NativeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("status", e.Code).
		Str("message", e.Message).
		Str("type", "NativeError")
}

// NewNativeError creates a NativeError with a stack trace attached.
func NewNativeError(op string, code int, message string) error {
	err := &NativeError{Op: op, Code: code, Message: message}
	return errors.WithStack(err)
}

// TypeMismatchError is returned when a field read reports an element type
// that differs from the type the descriptor is bound to. The native buffer
// is never touched in this case.
type TypeMismatchError struct {
	Field    string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("lgbm: field %q: element type mismatch: expected %s, got %s", e.Field, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured failure to a zerolog event.
func (e *TypeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("field", e.Field).
		Str("expected", e.Expected).
		Str("got", e.Got).
		Str("type", "TypeMismatchError")
}

// NewTypeMismatchError creates a TypeMismatchError with a stack trace attached.
func NewTypeMismatchError(field, expected, got string) error {
	err := &TypeMismatchError{Field: field, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// RangeError is returned when a row, column, or element count cannot be
// narrowed to the native layer's 32-bit integer width. It is reported before
// any native call is attempted.
type RangeError struct {
	Op    string
	What  string // which quantity overflowed, e.g. "rows"
	Value int64
	Limit int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("lgbm: %s: %s %d exceeds native integer range (max %d)", e.Op, e.What, e.Value, e.Limit)
}

// MarshalZerologObject adds the structured failure to a zerolog event.
func (e *RangeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("what", e.What).
		Int64("value", e.Value).
		Int64("limit", e.Limit).
		Str("type", "RangeError")
}

// NewRangeError creates a RangeError with a stack trace attached.
func NewRangeError(op, what string, value, limit int64) error {
	err := &RangeError{Op: op, What: what, Value: value, Limit: limit}
	return errors.WithStack(err)
}

// EncodingError is returned when a path or parameter string cannot be
// represented as a C string (it contains an interior NUL byte).
type EncodingError struct {
	Op     string
	Value  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("lgbm: %s: cannot encode %q for the native layer: %s", e.Op, e.Value, e.Reason)
}

// MarshalZerologObject adds the structured failure to a zerolog event.
func (e *EncodingError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("value", e.Value).
		Str("reason", e.Reason).
		Str("type", "EncodingError")
}

// NewEncodingError creates an EncodingError with a stack trace attached.
func NewEncodingError(op, value, reason string) error {
	err := &EncodingError{Op: op, Value: value, Reason: reason}
	return errors.WithStack(err)
}

// StateError is returned when an operation is attempted on a wrapper whose
// native handle has already been released.
type StateError struct {
	Op     string
	Object string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("lgbm: %s: %s has been released", e.Op, e.Object)
}

// MarshalZerologObject adds the structured failure to a zerolog event.
func (e *StateError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("object", e.Object).
		Str("type", "StateError")
}

// NewStateError creates a StateError with a stack trace attached.
func NewStateError(op, object string) error {
	err := &StateError{Op: op, Object: object}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}
