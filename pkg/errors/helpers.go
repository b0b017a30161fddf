package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// IsRetryable returns true if the error represents a retryable condition.
// The SDK itself never retries; this is for callers with their own policy.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var difyErr DifyError
	if errors.As(err, &difyErr) {
		return difyErr.IsRetryable()
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

// AsAPIError extracts an APIError from the error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AsValidationError extracts a ValidationError from the error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}

// AsStreamError extracts a StreamError from the error chain.
func AsStreamError(err error) (*StreamError, bool) {
	var streamErr *StreamError
	if errors.As(err, &streamErr) {
		return streamErr, true
	}
	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.StatusCode
	}
	if streamErr, ok := AsStreamError(err); ok {
		return streamErr.Status
	}
	return 0
}

// RetryAfter returns the suggested retry delay from a rate limit error.
// Returns 0 if the error is not a rate limit error or has no Retry-After hint.
func RetryAfter(err error) time.Duration {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.RetryAfter
	}
	return 0
}

// ErrorCodeOf returns the error code for an error.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var difyErr DifyError
	if errors.As(err, &difyErr) {
		return difyErr.Code()
	}

	switch {
	case errors.Is(err, ErrMissingAPIKey),
		errors.Is(err, ErrMissingBaseURL),
		errors.Is(err, ErrInvalidConfig):
		return ErrCodeConfig
	case errors.Is(err, ErrNilRequest):
		return ErrCodeValidation
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return ErrCodeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrCodeTimeout
		}
		return ErrCodeNetwork
	}

	return ErrCodeInternal
}

// WrapError wraps an error with additional context.
// It returns nil if err is nil.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("dify: %s: %w", message, err)
}

// WrapErrorf wraps an error with a formatted message.
// It returns nil if err is nil.
func WrapErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("dify: %s: %w", fmt.Sprintf(format, args...), err)
}
