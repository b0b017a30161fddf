package dify

import (
	pkgerrors "github.com/jdziat/dify-go/pkg/errors"
)

// Error types re-exported from pkg/errors.
type (
	// ErrorCode represents a category of error for metrics and logging.
	ErrorCode = pkgerrors.ErrorCode

	// DifyError is the common interface for all SDK errors.
	//
	//	var difyErr dify.DifyError
	//	if errors.As(err, &difyErr) {
	//	    log.Printf("code=%s request_id=%s", difyErr.Code(), difyErr.GetRequestID())
	//	}
	DifyError = pkgerrors.DifyError

	// APIError is returned for every non-2xx reply.
	APIError = pkgerrors.APIError

	// ValidationError is returned for invalid arguments before any request
	// is sent.
	ValidationError = pkgerrors.ValidationError

	// StreamError is an error event received on an event stream.
	StreamError = pkgerrors.StreamError
)

// Error codes.
const (
	ErrCodeConfig     = pkgerrors.ErrCodeConfig
	ErrCodeValidation = pkgerrors.ErrCodeValidation
	ErrCodeNetwork    = pkgerrors.ErrCodeNetwork
	ErrCodeAPI        = pkgerrors.ErrCodeAPI
	ErrCodeAuth       = pkgerrors.ErrCodeAuth
	ErrCodeRateLimit  = pkgerrors.ErrCodeRateLimit
	ErrCodeTimeout    = pkgerrors.ErrCodeTimeout
	ErrCodeStream     = pkgerrors.ErrCodeStream
	ErrCodeInternal   = pkgerrors.ErrCodeInternal
)

// Sentinel errors. The status sentinels match any *APIError with the same
// status code through errors.Is.
var (
	ErrMissingAPIKey  = pkgerrors.ErrMissingAPIKey
	ErrMissingBaseURL = pkgerrors.ErrMissingBaseURL
	ErrInvalidConfig  = pkgerrors.ErrInvalidConfig
	ErrNilRequest     = pkgerrors.ErrNilRequest

	ErrBadRequest   = pkgerrors.ErrBadRequest
	ErrUnauthorized = pkgerrors.ErrUnauthorized
	ErrForbidden    = pkgerrors.ErrForbidden
	ErrNotFound     = pkgerrors.ErrNotFound
	ErrConflict     = pkgerrors.ErrConflict
	ErrTooLarge     = pkgerrors.ErrTooLarge
	ErrUnsupported  = pkgerrors.ErrUnsupported
	ErrRateLimited  = pkgerrors.ErrRateLimited
)

// Error helpers re-exported from pkg/errors.
var (
	IsRetryable        = pkgerrors.IsRetryable
	AsAPIError         = pkgerrors.AsAPIError
	AsValidationError  = pkgerrors.AsValidationError
	AsStreamError      = pkgerrors.AsStreamError
	StatusCode         = pkgerrors.StatusCode
	RetryAfter         = pkgerrors.RetryAfter
	ErrorCodeOf        = pkgerrors.ErrorCodeOf
	NewValidationError = pkgerrors.NewValidationError
)
