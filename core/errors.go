package core

import (
	"fmt"

	"github.com/pkg/errors"
)

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
		if len(err.Fields) > 0 {
			return err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

// ParseError reports malformed content in a data file.
// Line is 1-based; the count header is line 1.
type ParseError struct {
	Line int
	Err  error
}

func NewParseError(line int, err error) error {
	return &ParseError{Line: line, Err: err}
}

func (err ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", err.Line, err.Err)
}

func (err ParseError) Unwrap() error { return err.Err }

// IOError reports a data file that could not be read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

func (err IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", err.Op, err.Path, err.Err)
}

func (err IOError) Unwrap() error { return err.Err }

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func IsParseError(err error) bool {
	var pErr *ParseError
	return errors.As(err, &pErr)
}

func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
