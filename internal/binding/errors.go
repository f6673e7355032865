package binding

import (
	"errors"
	"fmt"
)

// ErrorCode identifies why a binding run failed.
type ErrorCode string

const (
	ErrCodeFetch     ErrorCode = "FETCH_FAILED"
	ErrCodeMalformed ErrorCode = "MALFORMED_PAYLOAD"
	ErrCodeTimeout   ErrorCode = "TIMEOUT"
	ErrCodeCancelled ErrorCode = "CANCELLED"
	ErrCodeRender    ErrorCode = "RENDER_FAILED"
	ErrCodeState     ErrorCode = "INVALID_STATE"
)

// Error is returned for every failed run. Nothing is rendered when a run
// fails before the render step.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another *Error with the same code. A target without a message
// matches any message.
func (e *Error) Is(target error) bool {
	var other *Error
	if e == nil || !errors.As(target, &other) || other == nil {
		return false
	}
	if e.Code != other.Code {
		return false
	}
	return other.Message == "" || other.Message == e.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *Error) WithContext(ctx map[string]interface{}) *Error {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var bindErr *Error
	if errors.As(err, &bindErr) {
		return bindErr.Code
	}
	return ""
}

func newError(code ErrorCode, message string, cause error, context map[string]interface{}) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newStateError(message string) *Error {
	return newError(ErrCodeState, message, nil, nil)
}

func newMalformedError(source string, cause error) *Error {
	return newError(ErrCodeMalformed, "source document does not have the expected shape", cause, map[string]interface{}{
		"source": source,
	})
}
