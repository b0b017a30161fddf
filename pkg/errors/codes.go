package errors

import "errors"

// ErrorCode represents a category of error for metrics and logging.
type ErrorCode string

// Error codes for categorization.
const (
	ErrCodeConfig     ErrorCode = "CONFIG"     // Configuration errors
	ErrCodeValidation ErrorCode = "VALIDATION" // Request validation errors
	ErrCodeNetwork    ErrorCode = "NETWORK"    // Transport failures
	ErrCodeAPI        ErrorCode = "API"        // API response errors
	ErrCodeAuth       ErrorCode = "AUTH"       // Authentication/authorization errors
	ErrCodeRateLimit  ErrorCode = "RATE_LIMIT" // Rate limiting errors
	ErrCodeTimeout    ErrorCode = "TIMEOUT"    // Deadline exceeded or cancelled
	ErrCodeStream     ErrorCode = "STREAM"     // Error events on an SSE stream
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal SDK errors
)

// DifyError is the common interface for all SDK errors.
type DifyError interface {
	error

	// Code returns a machine-readable error code for categorization.
	Code() ErrorCode

	// IsRetryable reports whether repeating the call could succeed.
	IsRetryable() bool

	// GetRequestID returns the request ID sent with the failing call, if any.
	GetRequestID() string
}

// Sentinel errors for configuration and argument checks.
var (
	ErrMissingAPIKey  = errors.New("dify: API key is required")
	ErrMissingBaseURL = errors.New("dify: base URL is required")
	ErrInvalidConfig  = errors.New("dify: invalid configuration")
	ErrNilRequest     = errors.New("dify: request cannot be nil")
)
