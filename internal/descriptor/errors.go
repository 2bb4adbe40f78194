package descriptor

import (
	"errors"
	"fmt"
)

// DescriptorErrorType represents the type of descriptor error.
type DescriptorErrorType int

const (
	// DescriptorNotFound indicates no descriptor file could be found or read.
	DescriptorNotFound DescriptorErrorType = iota
	// DescriptorInvalid indicates the descriptor file could not be parsed.
	DescriptorInvalid
	// MalformedVersion indicates a version string has a non-numeric or out-of-range component.
	MalformedVersion
	// KeyNotFound indicates a requested key is absent from the descriptor.
	KeyNotFound
)

// DescriptorError represents a descriptor-related error.
type DescriptorError struct {
	// Type is the error type.
	Type DescriptorErrorType
	// Message is the error message.
	Message string
	// File is the descriptor file path.
	File string
	// Field is the descriptor key that caused the error.
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *DescriptorError) Error() string {
	if e.Field != "" {
		if e.Cause != nil {
			return fmt.Sprintf("descriptor error in %s [field: %s]: %s: %v", e.File, e.Field, e.Message, e.Cause)
		}
		return fmt.Sprintf("descriptor error in %s [field: %s]: %s", e.File, e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("descriptor error in %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("descriptor error in %s: %s", e.File, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *DescriptorError) Unwrap() error {
	return e.Cause
}

func newDescriptorError(typ DescriptorErrorType, file, message string, cause error) *DescriptorError {
	return &DescriptorError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

func newFieldError(typ DescriptorErrorType, file, field, message string, cause error) *DescriptorError {
	return &DescriptorError{
		Type:    typ,
		File:    file,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is a DescriptorError of the given type.
func IsType(err error, typ DescriptorErrorType) bool {
	var descErr *DescriptorError
	if !errors.As(err, &descErr) {
		return false
	}
	return descErr.Type == typ
}
