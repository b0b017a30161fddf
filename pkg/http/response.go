package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jdziat/dify-go/pkg/config"
	pkgerrors "github.com/jdziat/dify-go/pkg/errors"
)

// Response wraps an *http.Response. The body is either consumed once
// through Bytes/Decode (buffered, size limited) or handed over through
// Body/Events for streaming.
type Response struct {
	raw       *http.Response
	requestID string

	mu      sync.Mutex
	body    []byte
	readErr error
	read    bool
	closed  bool
	onClose []func()
}

// NewResponse wraps resp. requestID is the X-Request-ID sent with the call.
func NewResponse(resp *http.Response, requestID string) *Response {
	return &Response{raw: resp, requestID: requestID}
}

// Raw returns the underlying *http.Response.
func (r *Response) Raw() *http.Response { return r.raw }

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int { return r.raw.StatusCode }

// Header returns the response headers.
func (r *Response) Header() http.Header { return r.raw.Header }

// Cookies returns the cookies set by the response.
func (r *Response) Cookies() []*http.Cookie { return r.raw.Cookies() }

// RequestID returns the request ID sent with the call.
func (r *Response) RequestID() string { return r.requestID }

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.raw.StatusCode >= 200 && r.raw.StatusCode < 300
}

// ContentType returns the media type of the body without parameters.
func (r *Response) ContentType() string {
	ct := r.raw.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}
	return mt
}

// IsEventStream reports whether the body is text/event-stream.
func (r *Response) IsEventStream() bool {
	return r.ContentType() == ContentTypeEventStream
}

// OnClose registers fn to run when the response is closed.
func (r *Response) OnClose(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onClose = append(r.onClose, fn)
}

// Body returns the response body for streaming reads. Closing it closes
// the response.
func (r *Response) Body() io.ReadCloser {
	return &responseBody{Reader: r.raw.Body, resp: r}
}

// Events returns an SSE reader over the body. Closing it closes the
// response.
func (r *Response) Events() *EventReader {
	return NewEventReader(r.Body()).WithRequestID(r.requestID)
}

// Bytes reads the whole body (up to the SDK size limit) and closes the
// response. Subsequent calls return the same bytes.
func (r *Response) Bytes() ([]byte, error) {
	return r.readBody(config.MaxResponseSize)
}

// ReadAll reads the whole body without a size limit and closes the
// response. It is meant for binary downloads such as file previews and
// synthesized audio.
func (r *Response) ReadAll() ([]byte, error) {
	return r.readBody(-1)
}

func (r *Response) readBody(limit int64) ([]byte, error) {
	r.mu.Lock()
	if r.read {
		r.mu.Unlock()
		return r.body, r.readErr
	}
	r.read = true
	r.mu.Unlock()

	var src io.Reader = r.raw.Body
	if limit >= 0 {
		src = io.LimitReader(r.raw.Body, limit+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		err = fmt.Errorf("dify: failed to read response body (request_id=%s): %w", r.requestID, err)
	} else if limit >= 0 && int64(len(data)) > limit {
		err = fmt.Errorf("dify: response body exceeded maximum size of %d bytes (request_id=%s)",
			limit, r.requestID)
	}
	_ = r.Close()

	r.mu.Lock()
	r.body, r.readErr = data, err
	r.mu.Unlock()
	return data, err
}

// Decode reads the body and unmarshals it as JSON into v.
// An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	data, err := r.Bytes()
	if err != nil {
		return err
	}
	if v == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("dify: failed to unmarshal response (request_id=%s): %w", r.requestID, err)
	}
	return nil
}

// Err returns nil for 2xx responses. Otherwise it consumes the body and
// returns an *errors.APIError describing the failure.
func (r *Response) Err() error {
	if r.IsSuccess() {
		return nil
	}
	body, _ := r.Bytes()
	apiErr := pkgerrors.NewAPIError(r.raw.StatusCode, body)
	apiErr.RequestID = r.requestID
	if r.raw.StatusCode == http.StatusTooManyRequests || r.raw.StatusCode == http.StatusServiceUnavailable {
		apiErr.RetryAfter = ParseRetryAfter(r.raw.Header.Get("Retry-After"))
	}
	return apiErr
}

// Close releases the body and runs OnClose callbacks. It is safe to call
// more than once.
func (r *Response) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	callbacks := r.onClose
	r.onClose = nil
	r.mu.Unlock()

	err := r.raw.Body.Close()
	for _, fn := range callbacks {
		fn()
	}
	return err
}

type responseBody struct {
	io.Reader
	resp *Response
}

func (b *responseBody) Close() error { return b.resp.Close() }

// ParseRetryAfter parses the Retry-After header value.
// It supports both seconds (integer) and HTTP-date formats.
func ParseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
