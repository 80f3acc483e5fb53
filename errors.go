// Package gemmkit structured error types for the harness boundary
package gemmkit

import "fmt"

// ErrorType represents categories of harness errors. The kernels
// themselves have no fallible paths: they never allocate and treat
// inconsistent dimensions as a caller contract violation. Errors only
// arise at the boundary around them — buffer allocation, result I/O and
// command-line input.
type ErrorType int

const (
	// Memory errors (buffer allocation for A, B or C)
	ErrTypeMemory ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Result file I/O errors
	ErrTypeIO
)

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeMemory:
		return "Memory"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeIO:
		return "IO"
	default:
		return "Unknown"
	}
}

// HarnessError represents a structured error with context
type HarnessError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *HarnessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gemmkit %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("gemmkit %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *HarnessError) Unwrap() error {
	return e.Err
}

// NewMemoryError creates an allocation-related error
func NewMemoryError(op string, message string, err error) error {
	return &HarnessError{
		Type:    ErrTypeMemory,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewInvalidArgError creates an invalid-argument error
func NewInvalidArgError(op string, message string) error {
	return &HarnessError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewIOError creates a result I/O error
func NewIOError(op string, message string, err error) error {
	return &HarnessError{
		Type:    ErrTypeIO,
		Op:      op,
		Message: message,
		Err:     err,
	}
}
