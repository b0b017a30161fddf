package dify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// httpClient is the request pipeline behind every endpoint client. It
// implements pkg/http.Doer and sends each request exactly once.
type httpClient struct {
	executor  pkghttp.Executor
	baseURL   string
	apiKey    string
	userAgent string
	timeout   time.Duration
	headers   map[string]string
	cookies   []*http.Cookie
	requestID func() string
	hooks     HTTPHook
	logger    StructuredLogger
}

// newHTTPClient creates a pipeline that authenticates with apiKey.
func newHTTPClient(cfg *Config, executor pkghttp.Executor, apiKey string) *httpClient {
	return &httpClient{
		executor:  executor,
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:    apiKey,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		headers:   cfg.Headers,
		cookies:   cfg.Cookies,
		requestID: cfg.RequestIDFunc,
		hooks:     buildHooks(cfg),
		logger:    resolveLogger(cfg),
	}
}

var _ pkghttp.Doer = (*httpClient)(nil)

// Send executes req once and returns the open response. Non-2xx replies are
// consumed and returned as *APIError.
func (h *httpClient) Send(ctx context.Context, req *pkghttp.Request) (*pkghttp.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = h.requestID()
	}

	// Streams run until the server ends them; only the caller's context
	// bounds them.
	cancel := context.CancelFunc(func() {})
	if h.timeout > 0 && !req.IsStreaming() {
		if _, ok := ctx.Deadline(); !ok {
			ctx, cancel = context.WithTimeout(ctx, h.timeout)
		}
	}

	httpReq, err := req.Build(ctx, h.baseURL)
	if err != nil {
		cancel()
		return nil, err
	}
	h.applyDefaults(ctx, httpReq, requestID)

	if h.hooks != nil {
		if err := h.hooks.BeforeRequest(ctx, httpReq); err != nil {
			cancel()
			return nil, err
		}
	}

	start := time.Now()
	resp, err := h.executor.Do(httpReq)
	duration := time.Since(start)

	if h.hooks != nil {
		h.hooks.AfterResponse(ctx, httpReq, resp, duration, err)
	}

	if err != nil {
		cancel()
		h.logger.Warn("dify: request failed",
			"method", httpReq.Method, "path", req.Path(), "request_id", requestID,
			"duration", duration, "error", err)
		return nil, fmt.Errorf("dify: %s %s failed (request_id=%s): %w", httpReq.Method, req.Path(), requestID, err)
	}

	out := pkghttp.NewResponse(resp, requestID)
	out.OnClose(cancel)

	h.logger.Debug("dify: request completed",
		"method", httpReq.Method, "path", req.Path(), "status", resp.StatusCode,
		"request_id", requestID, "duration", duration)

	if err := out.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// applyDefaults sets the client headers and cookies the request did not
// set itself.
func (h *httpClient) applyDefaults(ctx context.Context, req *http.Request, requestID string) {
	if req.Header.Get("Authorization") == "" {
		key := APIKeyFromContext(ctx)
		if key == "" {
			key = h.apiKey
		}
		req.Header.Set("Authorization", "Bearer "+key)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	for k, v := range h.headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	for _, c := range h.cookies {
		if _, err := req.Cookie(c.Name); err != nil {
			req.AddCookie(c)
		}
	}
}

// Do executes req and decodes the JSON reply into result.
func (h *httpClient) Do(ctx context.Context, req *pkghttp.Request, result any) error {
	resp, err := h.Send(ctx, req)
	if err != nil {
		return err
	}
	return resp.Decode(result)
}

// Get performs an HTTP GET request.
func (h *httpClient) Get(ctx context.Context, path string, query url.Values, result any) error {
	return h.Do(ctx, pkghttp.NewRequest(http.MethodGet, path).QueryValues(query), result)
}

// Post performs an HTTP POST request with a JSON body.
func (h *httpClient) Post(ctx context.Context, path string, body, result any) error {
	return h.Do(ctx, pkghttp.NewRequest(http.MethodPost, path).JSON(body), result)
}

// Put performs an HTTP PUT request with a JSON body.
func (h *httpClient) Put(ctx context.Context, path string, body, result any) error {
	return h.Do(ctx, pkghttp.NewRequest(http.MethodPut, path).JSON(body), result)
}

// Patch performs an HTTP PATCH request with a JSON body.
func (h *httpClient) Patch(ctx context.Context, path string, body, result any) error {
	return h.Do(ctx, pkghttp.NewRequest(http.MethodPatch, path).JSON(body), result)
}

// Delete performs an HTTP DELETE request with an optional JSON body.
func (h *httpClient) Delete(ctx context.Context, path string, body, result any) error {
	return h.Do(ctx, pkghttp.NewRequest(http.MethodDelete, path).JSON(body), result)
}

// Upload performs a multipart/form-data POST.
func (h *httpClient) Upload(ctx context.Context, path string, form *pkghttp.MultipartForm, result any) error {
	if form == nil {
		return ErrNilRequest
	}
	return h.Do(ctx, pkghttp.NewRequest(http.MethodPost, path).Multipart(form), result)
}

// Stream performs a POST answered with text/event-stream. Closing the
// returned reader releases the connection.
func (h *httpClient) Stream(ctx context.Context, path string, body any) (*pkghttp.EventReader, error) {
	resp, err := h.Send(ctx, pkghttp.NewRequest(http.MethodPost, path).Streaming().JSON(body))
	if err != nil {
		return nil, err
	}
	if resp.ContentType() == pkghttp.ContentTypeJSON {
		data, err := resp.Bytes()
		if err != nil {
			return nil, fmt.Errorf("dify: expected an event stream from %s, got JSON (request_id=%s): %w",
				path, resp.RequestID(), err)
		}
		return nil, fmt.Errorf("dify: expected an event stream from %s, got JSON (request_id=%s): %s",
			path, resp.RequestID(), truncate(string(data), 256))
	}
	return resp.Events(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
