package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// PreconditionError indicates that an operation was rejected because the
// session is not in a state that allows it (eg. adding a course before a
// student profile exists). Always recoverable.
type PreconditionError struct {
	Err error
}

func NewPreconditionError(err error) error {
	return &PreconditionError{err}
}

func (err PreconditionError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// ExportError indicates that a report could not be rendered or written.
// In-memory state is unaffected.
type ExportError struct {
	Err error
}

func NewExportError(err error) error {
	return &ExportError{err}
}

func (err ExportError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
