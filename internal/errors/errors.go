// Package errors provides a small classified error type used by the CLI to
// report configuration, loading and output failures.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category classifies an error by the layer that produced it.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryLoad       Category = "load"
	CategoryFileSystem Category = "filesystem"
	CategoryInternal   Category = "internal"
)

// Severity indicates how critical an error is.
type Severity string

const (
	SeverityFatal   Severity = "fatal"   // Stops execution
	SeverityError   Severity = "error"   // Error, but not fatal
	SeverityWarning Severity = "warning" // Continues with degraded output
)

// ContextFields carries structured context for an Error.
type ContextFields map[string]any

// Error is a structured error with category, severity and context.
type Error struct {
	Category Category
	Severity Severity
	Message  string
	Cause    error
	Context  ContextFields
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new Error.
func New(category Category, severity Severity, message string) *Error {
	return &Error{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new Error that wraps an existing error.
func Wrap(err error, category Category, severity Severity, message string) *Error {
	return &Error{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory reports whether any error in err's chain belongs to category.
func IsCategory(err error, category Category) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns
// CategoryInternal if err is not an *Error.
func GetCategory(err error) Category {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Category
	}
	return CategoryInternal
}
