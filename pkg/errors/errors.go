package errors

import (
	"fmt"
)

// ParseError represents a theme file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError reports a target primitive that failed mid-render. Op names the
// primitive (push_attr, push_str, newline).
type RenderError struct {
	Op  string
	Err error
}

// NewRenderError constructs a RenderError for the failed primitive.
func NewRenderError(op string, err error) error {
	return &RenderError{Op: op, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("render error in %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the backend error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
