package core

import (
	"fmt"
)

// ExecutionError represents a structured error with category and details
type ExecutionError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: element_not_found, invalid_target, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an ExecutionError with the same code.
// Copies made by WithCause, WithMessage and WithDetails still match their sentinel.
func (e *ExecutionError) Is(target error) bool {
	t, ok := target.(*ExecutionError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause
func (e *ExecutionError) WithCause(cause error) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *ExecutionError) WithMessage(msg string) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details
func (e *ExecutionError) WithDetails(details map[string]interface{}) *ExecutionError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors
var (
	// Transport errors
	ErrTransport = &ExecutionError{
		Category: ErrCategoryTransport,
		Code:     "transport_failed",
		Message:  "command channel could not reach the device",
	}

	// Capture errors
	ErrCaptureFailed = &ExecutionError{
		Category: ErrCategoryCapture,
		Code:     "capture_failed",
		Message:  "hierarchy dump contained no recognizable XML",
	}

	// Parse errors
	ErrParseFailed = &ExecutionError{
		Category: ErrCategoryParse,
		Code:     "parse_failed",
		Message:  "hierarchy snapshot is not well-formed XML",
	}

	// Assertion errors
	ErrElementNotFound = &ExecutionError{
		Category: ErrCategoryAssertion,
		Code:     "element_not_found",
		Message:  "element not found",
	}

	// Input errors
	ErrInvalidTarget = &ExecutionError{
		Category: ErrCategoryInput,
		Code:     "invalid_target",
		Message:  "invalid target",
	}
	ErrInvalidKeyEvent = &ExecutionError{
		Category: ErrCategoryInput,
		Code:     "invalid_key_event",
		Message:  "invalid key event",
	}
	ErrInvalidText = &ExecutionError{
		Category: ErrCategoryInput,
		Code:     "invalid_text",
		Message:  "invalid text",
	}

	// Validation errors
	ErrInvalidDevice = &ExecutionError{
		Category: ErrCategoryValidation,
		Code:     "invalid_device",
		Message:  "device identifier must not be empty",
	}
	ErrNilChannel = &ExecutionError{
		Category: ErrCategoryValidation,
		Code:     "nil_channel",
		Message:  "command channel must not be nil",
	}
	ErrInvalidPackage = &ExecutionError{
		Category: ErrCategoryValidation,
		Code:     "invalid_package",
		Message:  "package name must not be empty",
	}
	ErrInvalidQuery = &ExecutionError{
		Category: ErrCategoryValidation,
		Code:     "invalid_query",
		Message:  "invalid path query",
	}
	ErrInvalidConfig = &ExecutionError{
		Category: ErrCategoryValidation,
		Code:     "invalid_config",
		Message:  "invalid configuration",
	}
)

// NewExecutionError creates a new ExecutionError with the given parameters
func NewExecutionError(category ErrorCategory, code, message string) *ExecutionError {
	return &ExecutionError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// RemoteFault is an uncaught fault raised by the remote runtime and reported
// on the console, e.g. "java.lang.SecurityException: Injecting to another application".
type RemoteFault struct {
	Kind    string // Type name without the namespace prefix: SecurityException
	Message string
}

// Error implements the error interface
func (f *RemoteFault) Error() string {
	if f.Message == "" {
		return "remote fault: " + f.Kind
	}
	return fmt.Sprintf("remote fault: %s: %s", f.Kind, f.Message)
}
