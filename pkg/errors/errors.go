package errors

import (
	"fmt"
)

// ParseError represents a document that could not be decoded, with optional
// line metadata.
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

// ValidationError captures a document or options field that failed its
// shape check.
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

// FetchError represents a failure to retrieve a source document.
type FetchError struct {
	Location   string
	StatusCode int
	Err        error
}

// NewFetchError constructs a FetchError for a transport or filesystem failure.
func NewFetchError(location string, err error) error {
	return &FetchError{Location: location, Err: err}
}

// NewStatusError constructs a FetchError for a non-2xx HTTP response.
func NewStatusError(location string, status int) error {
	return &FetchError{Location: location, StatusCode: status}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch error: %s: unexpected status %d", e.Location, e.StatusCode)
	}
	return fmt.Sprintf("fetch error: %s: %v", e.Location, e.Err)
}

// Unwrap exposes the root error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError indicates the rendering engine rejected a chart.
type RenderError struct {
	Target  string
	Message string
	Err     error
}

// NewRenderError constructs a RenderError for the given render target.
func NewRenderError(target string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RenderError{Target: target, Message: message, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("render error [%s]: %s", e.Target, e.Message)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
