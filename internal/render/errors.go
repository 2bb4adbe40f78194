package render

import "fmt"

// RenderErrorType categorizes renderer errors.
type RenderErrorType int

const (
	// ReadFailed indicates a template or existing output could not be read.
	ReadFailed RenderErrorType = iota
	// WriteFailed indicates an output file write failed.
	WriteFailed
	// DiscoverFailed indicates the template tree could not be walked.
	DiscoverFailed
)

// RenderError represents renderer-specific errors.
type RenderError struct {
	// Type categorizes the error.
	Type RenderErrorType
	// Message is the error message.
	Message string
	// File is the file path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

func newRenderError(typ RenderErrorType, message, file string, cause error) *RenderError {
	return &RenderError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}
