// Package errors defines the coded error types used across the optimizer.
// Schema and date-header errors are fatal and abort the run before any
// output is written; read/write errors wrap the underlying cause.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error codes for the failure taxonomy.
const (
	CodeSchemaInvalid     = "SCHEMA_INVALID"
	CodeDateHeaderInvalid = "DATE_HEADER_INVALID"
	CodeFileRead          = "FILE_READ"
	CodeFileWrite         = "FILE_WRITE"
)

// Error is a coded error with an optional wrapped cause.
type Error struct {
	Code    string
	Message string
	cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a new coded error
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a new coded error wrapping a cause
func Wrap(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// NewMissingColumnsError reports the identifying columns absent from the
// input header. The message enumerates every missing name.
func NewMissingColumnsError(missing []string) *Error {
	return New(CodeSchemaInvalid,
		fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
}

// NewNoDateColumnsError reports an input with no date columns at all.
func NewNoDateColumnsError() *Error {
	return New(CodeSchemaInvalid, "no date columns found in the format 'MMM/YY'")
}

// NewDateHeaderError reports a date column header whose month abbreviation
// is not one of the twelve known values. This aborts the whole run.
func NewDateHeaderError(column string) *Error {
	return New(CodeDateHeaderInvalid,
		fmt.Sprintf("unrecognized month abbreviation in column %q", column))
}

// NewReadError reports a failure reading the input file.
func NewReadError(path string, cause error) *Error {
	return Wrap(CodeFileRead, fmt.Sprintf("failed to read %s", path), cause)
}

// NewWriteError reports a failure writing the output file.
func NewWriteError(path string, cause error) *Error {
	return Wrap(CodeFileWrite, fmt.Sprintf("failed to write %s", path), cause)
}

// CodeOf returns the code of the first coded error in err's chain, or ""
// if there is none.
func CodeOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}
