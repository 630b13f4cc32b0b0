// Package errors provides a lightweight structured error type (RenderError)
// for category-based classification across the rendering pipeline and CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// As re-exports errors.As so callers need only one errors import.
func As(err error, target any) bool { return stderrors.As(err, target) }

// ErrorCategory classifies a RenderError.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Documentation-model and rendering errors
	CategoryModel    ErrorCategory = "model"
	CategoryLocation ErrorCategory = "location"
	CategoryRender   ErrorCategory = "render"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryServer     ErrorCategory = "server"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// ContextFields carries structured context for RenderError.
type ContextFields map[string]any

// RenderError is a structured error with category, severity, and context.
type RenderError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// WithContext adds one context field and returns the error for chaining.
func (e *RenderError) WithContext(key string, value any) *RenderError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new RenderError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *RenderError {
	return &RenderError{Category: category, Severity: severity, Message: message}
}

// Wrap creates a new RenderError that wraps an existing error.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *RenderError {
	return &RenderError{Category: category, Severity: severity, Message: message, Cause: err}
}

// IsCategory reports whether err is a RenderError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var re *RenderError
	if !As(err, &re) {
		return false
	}
	return re.Category == category
}

