package dify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	pkgerrors "github.com/jdziat/dify-go/pkg/errors"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusRequestEntityTooLarge, ErrTooLarge},
		{http.StatusUnsupportedMediaType, ErrUnsupported},
		{http.StatusTooManyRequests, ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", pkgerrors.NewAPIError(tt.status, []byte(`{"code":"x","message":"m"}`)))
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%d, sentinel) = false", tt.status)
			}
			if StatusCode(err) != tt.status {
				t.Errorf("StatusCode() = %d, want %d", StatusCode(err), tt.status)
			}
		})
	}
}

func TestErrorCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"unauthorized", pkgerrors.NewAPIError(401, nil), ErrCodeAuth},
		{"rate limited", pkgerrors.NewAPIError(429, nil), ErrCodeRateLimit},
		{"server", pkgerrors.NewAPIError(500, nil), ErrCodeAPI},
		{"validation", NewValidationError("user", "is required"), ErrCodeValidation},
		{"stream", &StreamError{Status: 500, Message: "boom"}, ErrCodeStream},
		{"missing key", ErrMissingAPIKey, ErrCodeConfig},
		{"nil request", ErrNilRequest, ErrCodeValidation},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), ErrCodeTimeout},
		{"other", errors.New("boom"), ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCodeOf(tt.err); got != tt.want {
				t.Errorf("ErrorCodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryableHelper(t *testing.T) {
	limited := pkgerrors.NewAPIError(429, nil)
	limited.RetryAfter = 2 * time.Second

	if !IsRetryable(limited) {
		t.Error("429 should be retryable")
	}
	if RetryAfter(limited) != 2*time.Second {
		t.Errorf("RetryAfter() = %v", RetryAfter(limited))
	}
	if IsRetryable(pkgerrors.NewAPIError(400, nil)) {
		t.Error("400 should not be retryable")
	}
	if !IsRetryable(&StreamError{Status: 503}) {
		t.Error("stream 503 should be retryable")
	}
}

func TestAsHelpers(t *testing.T) {
	var err error = fmt.Errorf("outer: %w", NewValidationError("query", "is required"))
	if v, ok := AsValidationError(err); !ok || v.Field != "query" {
		t.Errorf("AsValidationError() = %v, %v", v, ok)
	}
	if _, ok := AsAPIError(err); ok {
		t.Error("AsAPIError() matched a validation error")
	}

	err = &StreamError{Status: 400, DifyCode: "invalid_param", Message: "bad"}
	if s, ok := AsStreamError(err); !ok || s.DifyCode != "invalid_param" {
		t.Errorf("AsStreamError() = %v, %v", s, ok)
	}
}
