package errors

import "fmt"

// ValidationError represents a validation error for a request.
type ValidationError struct {
	Field   string
	Message string
	Err     error // Underlying error for wrapping
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("dify: validation error for field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code implements DifyError.
func (e *ValidationError) Code() ErrorCode {
	return ErrCodeValidation
}

// IsRetryable returns false for validation errors (they should be fixed, not retried).
func (e *ValidationError) IsRetryable() bool {
	return false
}

// GetRequestID returns an empty string; nothing was sent.
func (e *ValidationError) GetRequestID() string {
	return ""
}

var _ DifyError = (*ValidationError)(nil)

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorWithCause creates a new validation error with an underlying cause.
func NewValidationErrorWithCause(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     cause,
	}
}

// Required returns a ValidationError for a missing required field.
func Required(field string) *ValidationError {
	return NewValidationError(field, "is required")
}

// RequireFields returns a Required error for the first empty value.
// Arguments alternate field name and value.
func RequireFields(nameValues ...string) error {
	for i := 0; i+1 < len(nameValues); i += 2 {
		if nameValues[i+1] == "" {
			return Required(nameValues[i])
		}
	}
	return nil
}
