package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   string
		wantMsg    string
		wantStatus int
	}{
		{
			name:       "dify envelope",
			status:     400,
			body:       `{"code":"invalid_param","message":"query is required","status":400}`,
			wantCode:   "invalid_param",
			wantMsg:    "query is required",
			wantStatus: 400,
		},
		{
			name:    "plain text body",
			status:  502,
			body:    "Bad Gateway\n",
			wantMsg: "Bad Gateway",
		},
		{
			name:    "json without envelope",
			status:  500,
			body:    `{"detail":"boom"}`,
			wantMsg: `{"detail":"boom"}`,
		},
		{
			name:   "empty body",
			status: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewAPIError(tt.status, []byte(tt.body))
			if e.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", e.StatusCode, tt.status)
			}
			if e.DifyCode != tt.wantCode {
				t.Errorf("DifyCode = %q, want %q", e.DifyCode, tt.wantCode)
			}
			if e.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", e.Message, tt.wantMsg)
			}
			if e.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", e.Status, tt.wantStatus)
			}
			if e.BodyString() != tt.body {
				t.Errorf("BodyString() = %q, want %q", e.BodyString(), tt.body)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name      string
		apiErr    *APIError
		wantMsg   string
		wantCode  ErrorCode
		wantRetry bool
	}{
		{
			name:     "not found",
			apiErr:   &APIError{StatusCode: 404, DifyCode: "not_found", Message: "Conversation Not Exists."},
			wantMsg:  "dify: API error (status 404, code not_found): Conversation Not Exists.",
			wantCode: ErrCodeAPI,
		},
		{
			name:     "unauthorized with request id",
			apiErr:   &APIError{StatusCode: 401, Message: "Access token is invalid", RequestID: "req-123"},
			wantMsg:  "dify: API error (status 401, request req-123): Access token is invalid",
			wantCode: ErrCodeAuth,
		},
		{
			name:      "rate limited",
			apiErr:    &APIError{StatusCode: 429},
			wantMsg:   "dify: API error (status 429)",
			wantCode:  ErrCodeRateLimit,
			wantRetry: true,
		},
		{
			name:      "server error",
			apiErr:    &APIError{StatusCode: 500, Message: "Internal Server Error"},
			wantMsg:   "dify: API error (status 500): Internal Server Error",
			wantCode:  ErrCodeAPI,
			wantRetry: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.apiErr.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.apiErr.Code(); got != tt.wantCode {
				t.Errorf("Code() = %q, want %q", got, tt.wantCode)
			}
			if got := tt.apiErr.IsRetryable(); got != tt.wantRetry {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.wantRetry)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"matches rate limited", &APIError{StatusCode: 429}, ErrRateLimited, true},
		{"matches not found", &APIError{StatusCode: 404, Message: "x"}, ErrNotFound, true},
		{"matches wrapped", fmt.Errorf("ctx: %w", &APIError{StatusCode: 400}), ErrBadRequest, true},
		{"different status", &APIError{StatusCode: 500}, ErrRateLimited, false},
		{"non-APIError target", &APIError{StatusCode: 404}, ErrMissingAPIKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIError_Methods(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		wantNotFound  bool
		wantUnauth    bool
		wantForbidden bool
		wantRateLimit bool
		wantClientErr bool
		wantServerErr bool
	}{
		{"not found", 404, true, false, false, false, true, false},
		{"unauthorized", 401, false, true, false, false, true, false},
		{"forbidden", 403, false, false, true, false, true, false},
		{"rate limited", 429, false, false, false, true, true, false},
		{"server error 500", 500, false, false, false, false, false, true},
		{"server error 503", 503, false, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := &APIError{StatusCode: tt.statusCode}

			if got := apiErr.IsNotFound(); got != tt.wantNotFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.wantNotFound)
			}
			if got := apiErr.IsUnauthorized(); got != tt.wantUnauth {
				t.Errorf("IsUnauthorized() = %v, want %v", got, tt.wantUnauth)
			}
			if got := apiErr.IsForbidden(); got != tt.wantForbidden {
				t.Errorf("IsForbidden() = %v, want %v", got, tt.wantForbidden)
			}
			if got := apiErr.IsRateLimited(); got != tt.wantRateLimit {
				t.Errorf("IsRateLimited() = %v, want %v", got, tt.wantRateLimit)
			}
			if got := apiErr.IsClientError(); got != tt.wantClientErr {
				t.Errorf("IsClientError() = %v, want %v", got, tt.wantClientErr)
			}
			if got := apiErr.IsServerError(); got != tt.wantServerErr {
				t.Errorf("IsServerError() = %v, want %v", got, tt.wantServerErr)
			}
		})
	}
}

func TestAsAPIError(t *testing.T) {
	apiErr := &APIError{StatusCode: 404}
	wrapped := WrapError(apiErr, "get document")

	got, ok := AsAPIError(wrapped)
	if !ok {
		t.Fatal("AsAPIError() ok = false, want true")
	}
	if got != apiErr {
		t.Errorf("AsAPIError() = %v, want %v", got, apiErr)
	}

	if _, ok := AsAPIError(errors.New("plain")); ok {
		t.Error("AsAPIError(plain) ok = true, want false")
	}
}

func TestValidationError(t *testing.T) {
	err := Required("user")
	if got, want := err.Error(), `dify: validation error for field "user": is required`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Code() != ErrCodeValidation {
		t.Errorf("Code() = %q, want %q", err.Code(), ErrCodeValidation)
	}
	if err.IsRetryable() {
		t.Error("IsRetryable() = true, want false")
	}

	cause := errors.New("bad json")
	withCause := NewValidationErrorWithCause("inputs", "cannot encode", cause)
	if !errors.Is(withCause, cause) {
		t.Error("errors.Is(withCause, cause) = false, want true")
	}
	if _, ok := AsValidationError(fmt.Errorf("wrap: %w", withCause)); !ok {
		t.Error("AsValidationError() ok = false, want true")
	}
}

func TestRequireFields(t *testing.T) {
	if err := RequireFields("user", "u1", "query", "hi"); err != nil {
		t.Errorf("RequireFields() = %v, want nil", err)
	}
	err := RequireFields("user", "u1", "query", "", "inputs", "")
	v, ok := AsValidationError(err)
	if !ok || v.Field != "query" {
		t.Errorf("RequireFields() = %v, want query required", err)
	}
}

func TestStreamError(t *testing.T) {
	err := &StreamError{Status: 400, DifyCode: "completion_request_error", Message: "model quota exceeded"}
	want := "dify: stream error (status 400, code completion_request_error): model quota exceeded"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.IsRetryable() {
		t.Error("IsRetryable() = true, want false")
	}
	if !(&StreamError{Status: 503}).IsRetryable() {
		t.Error("IsRetryable() for 503 = false, want true")
	}
	if got := StatusCode(fmt.Errorf("x: %w", err)); got != 400 {
		t.Errorf("StatusCode() = %d, want 400", got)
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limit", &APIError{StatusCode: 429}, true},
		{"server error", WrapError(&APIError{StatusCode: 502}, "run"), true},
		{"bad request", &APIError{StatusCode: 400}, false},
		{"validation", Required("query"), false},
		{"net timeout", timeoutErr{}, true},
		{"plain", errors.New("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	err := WrapError(&APIError{StatusCode: 429, RetryAfter: 3 * time.Second}, "chat")
	if got := RetryAfter(err); got != 3*time.Second {
		t.Errorf("RetryAfter() = %v, want 3s", got)
	}
	if got := RetryAfter(errors.New("x")); got != 0 {
		t.Errorf("RetryAfter(plain) = %v, want 0", got)
	}
}

func TestErrorCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"missing key", ErrMissingAPIKey, ErrCodeConfig},
		{"nil request", ErrNilRequest, ErrCodeValidation},
		{"validation", Required("name"), ErrCodeValidation},
		{"auth", &APIError{StatusCode: 403}, ErrCodeAuth},
		{"stream", &StreamError{Status: 500}, ErrCodeStream},
		{"deadline", fmt.Errorf("x: %w", context.DeadlineExceeded), ErrCodeTimeout},
		{"net timeout", timeoutErr{}, ErrCodeTimeout},
		{"unknown", errors.New("x"), ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCodeOf(tt.err); got != tt.want {
				t.Errorf("ErrorCodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "x") != nil {
		t.Error("WrapError(nil) != nil")
	}
	base := errors.New("boom")
	got := WrapErrorf(base, "delete segment %s", "seg-1")
	if got.Error() != "dify: delete segment seg-1: boom" {
		t.Errorf("WrapErrorf() = %q", got.Error())
	}
	if !errors.Is(got, base) {
		t.Error("errors.Is(wrapped, base) = false")
	}
}
