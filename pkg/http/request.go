package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jdziat/dify-go/pkg/config"
)

// Common media types.
const (
	ContentTypeJSON        = "application/json"
	ContentTypeEventStream = "text/event-stream"
)

// Request describes one call to the Dify API before it is bound to a base
// URL and context. Builder methods return the receiver so calls chain:
//
//	req := http.NewRequest(http.MethodGet, "/messages").
//		Query("conversation_id", id).
//		Query("user", user).
//		Header("X-Tenant", "acme")
type Request struct {
	method      string
	path        string
	query       url.Values
	header      http.Header
	cookies     []*http.Cookie
	json        any
	hasJSON     bool
	form        *MultipartForm
	body        io.Reader
	contentType string
	stream      bool
}

// NewRequest creates a request for the given method and API path.
func NewRequest(method, path string) *Request {
	return &Request{
		method: method,
		path:   path,
		query:  url.Values{},
		header: http.Header{},
	}
}

// Method returns the HTTP method.
func (r *Request) Method() string { return r.method }

// Path returns the API path relative to the base URL.
func (r *Request) Path() string { return r.path }

// IsStreaming reports whether the request expects an event stream.
func (r *Request) IsStreaming() bool { return r.stream }

// Query adds a query parameter. Empty values are skipped.
func (r *Request) Query(key, value string) *Request {
	if value != "" {
		r.query.Add(key, value)
	}
	return r
}

// QueryValues merges v into the query string.
func (r *Request) QueryValues(v url.Values) *Request {
	for k, vals := range v {
		for _, val := range vals {
			r.query.Add(k, val)
		}
	}
	return r
}

// Header sets a request header, replacing any previous value.
func (r *Request) Header(key, value string) *Request {
	r.header.Set(key, value)
	return r
}

// Headers sets every header in h.
func (r *Request) Headers(h map[string]string) *Request {
	for k, v := range h {
		r.header.Set(k, v)
	}
	return r
}

// Cookie attaches a cookie to the request.
func (r *Request) Cookie(c *http.Cookie) *Request {
	if c != nil {
		r.cookies = append(r.cookies, c)
	}
	return r
}

// JSON sets a JSON body. A nil body sends no payload.
func (r *Request) JSON(body any) *Request {
	r.json = body
	r.hasJSON = body != nil
	r.form = nil
	r.body = nil
	return r
}

// Multipart sets a multipart/form-data body.
func (r *Request) Multipart(form *MultipartForm) *Request {
	r.form = form
	r.json, r.hasJSON = nil, false
	r.body = nil
	return r
}

// Body sets a raw body with the given content type.
func (r *Request) Body(body io.Reader, contentType string) *Request {
	r.body = body
	r.contentType = contentType
	r.json, r.hasJSON = nil, false
	r.form = nil
	return r
}

// Accept sets the Accept header.
func (r *Request) Accept(mediaType string) *Request {
	return r.Header("Accept", mediaType)
}

// Streaming marks the request as expecting text/event-stream.
func (r *Request) Streaming() *Request {
	r.stream = true
	return r.Accept(ContentTypeEventStream)
}

// URL resolves the request path and query against baseURL.
func (r *Request) URL(baseURL string) string {
	u := strings.TrimSuffix(baseURL, "/") + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	return u
}

// Build creates the *http.Request for baseURL.
func (r *Request) Build(ctx context.Context, baseURL string) (*http.Request, error) {
	var (
		body        io.Reader
		contentType string
	)

	switch {
	case r.hasJSON:
		data, err := json.Marshal(r.json)
		if err != nil {
			return nil, fmt.Errorf("dify: failed to marshal request body: %w", err)
		}
		if len(data) > config.MaxRequestBodySize {
			return nil, fmt.Errorf("dify: request body size %d bytes exceeds maximum %d bytes",
				len(data), config.MaxRequestBodySize)
		}
		body = bytes.NewReader(data)
		contentType = ContentTypeJSON
	case r.form != nil:
		buf, ct, err := r.form.Encode()
		if err != nil {
			return nil, err
		}
		body = buf
		contentType = ct
	case r.body != nil:
		body = r.body
		contentType = r.contentType
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.URL(baseURL), body)
	if err != nil {
		return nil, fmt.Errorf("dify: failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.header.Get("Accept") == "" {
		req.Header.Set("Accept", ContentTypeJSON)
	}
	for k, v := range r.header {
		req.Header[k] = append([]string(nil), v...)
	}
	for _, c := range r.cookies {
		req.AddCookie(c)
	}
	return req, nil
}
