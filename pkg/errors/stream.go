package errors

import "fmt"

// StreamError is an "error" event received on a server-sent event stream.
// Dify sends it after a 200 response has started, so it never surfaces
// as an APIError.
type StreamError struct {
	Status    int    `json:"status"`
	DifyCode  string `json:"code"`
	Message   string `json:"message"`
	TaskID    string `json:"task_id,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	RequestID string `json:"-"`
}

// Error implements the error interface.
func (e *StreamError) Error() string {
	if e.DifyCode != "" {
		return fmt.Sprintf("dify: stream error (status %d, code %s): %s", e.Status, e.DifyCode, e.Message)
	}
	return fmt.Sprintf("dify: stream error (status %d): %s", e.Status, e.Message)
}

// Code implements DifyError.
func (e *StreamError) Code() ErrorCode {
	return ErrCodeStream
}

// IsRetryable reports server-side failures as retryable.
func (e *StreamError) IsRetryable() bool {
	return e.Status >= 500 || e.Status == 429
}

// GetRequestID implements DifyError.
func (e *StreamError) GetRequestID() string {
	return e.RequestID
}

var _ DifyError = (*StreamError)(nil)
