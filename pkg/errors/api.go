package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Sentinel APIError values for use with errors.Is().
// These match on status code only.
var (
	ErrBadRequest   = &APIError{StatusCode: http.StatusBadRequest}
	ErrUnauthorized = &APIError{StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &APIError{StatusCode: http.StatusForbidden}
	ErrNotFound     = &APIError{StatusCode: http.StatusNotFound}
	ErrConflict     = &APIError{StatusCode: http.StatusConflict}
	ErrTooLarge     = &APIError{StatusCode: http.StatusRequestEntityTooLarge}
	ErrUnsupported  = &APIError{StatusCode: http.StatusUnsupportedMediaType}
	ErrRateLimited  = &APIError{StatusCode: http.StatusTooManyRequests}
)

// APIError is a non-2xx response from the Dify API.
//
// Dify reports failures as {"code": "...", "message": "...", "status": 400}.
// When the body is not in that shape the raw body is kept in Body and used
// as the message.
type APIError struct {
	StatusCode int           `json:"-"`
	DifyCode   string        `json:"code"`
	Message    string        `json:"message"`
	Status     int           `json:"status"`
	Body       []byte        `json:"-"`
	RequestID  string        `json:"-"`
	RetryAfter time.Duration `json:"-"`
	Err        error         `json:"-"`
}

// NewAPIError builds an APIError from a response status and body.
func NewAPIError(statusCode int, body []byte) *APIError {
	e := &APIError{StatusCode: statusCode, Body: body}
	if len(body) == 0 {
		return e
	}
	if err := json.Unmarshal(body, e); err != nil || (e.Message == "" && e.DifyCode == "") {
		e.Message = strings.TrimSpace(string(body))
	}
	return e
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dify: API error (status %d", e.StatusCode)
	if e.DifyCode != "" {
		fmt.Fprintf(&b, ", code %s", e.DifyCode)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, ", request %s", e.RequestID)
	}
	b.WriteString(")")
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// String returns a compact string representation for debugging.
func (e *APIError) String() string {
	return fmt.Sprintf("APIError{Status: %d, Code: %q, Message: %q}", e.StatusCode, e.DifyCode, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches on status code, allowing comparisons like:
//
//	if errors.Is(err, dify.ErrRateLimited) { ... }
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// BodyString returns the raw response body.
func (e *APIError) BodyString() string {
	return string(e.Body)
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized returns true if the error is a 401 Unauthorized error.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsForbidden returns true if the error is a 403 Forbidden error.
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsRateLimited returns true if the error is a 429 Too Many Requests error.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsClientError returns true for 4xx responses.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsRetryable reports rate limits and server errors.
func (e *APIError) IsRetryable() bool {
	return e.IsRateLimited() || e.IsServerError()
}

// Code implements DifyError.
func (e *APIError) Code() ErrorCode {
	switch {
	case e.IsUnauthorized(), e.IsForbidden():
		return ErrCodeAuth
	case e.IsRateLimited():
		return ErrCodeRateLimit
	default:
		return ErrCodeAPI
	}
}

// GetRequestID implements DifyError.
func (e *APIError) GetRequestID() string {
	return e.RequestID
}

var _ DifyError = (*APIError)(nil)
