package difytest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
)

// APIPrefix is the path prefix of the Dify service API.
const APIPrefix = "/v1"

// MockServer is a test HTTP server that records requests for verification.
// Routes registered with Handle are matched first; everything else is
// answered by ResponseFunc, or a Dify-style 404 when it is nil.
type MockServer struct {
	*httptest.Server

	router *mux.Router

	mu       sync.Mutex
	requests []*RecordedRequest

	// ResponseFunc allows customizing responses for unrouted requests.
	ResponseFunc func(r *http.Request) (int, any)

	// header is added to fallback responses.
	header http.Header
}

// RecordedRequest represents a recorded HTTP request.
type RecordedRequest struct {
	Method      string
	Path        string
	Query       url.Values
	Header      http.Header
	Body        []byte
	ContentType string
}

// JSON decodes the recorded body into a generic map.
func (r *RecordedRequest) JSON() map[string]any {
	var m map[string]any
	_ = json.Unmarshal(r.Body, &m)
	return m
}

// NewMockServer creates a new mock server for testing.
func NewMockServer() *MockServer {
	ms := &MockServer{
		router:   mux.NewRouter(),
		requests: make([]*RecordedRequest, 0),
	}
	ms.router.NotFoundHandler = http.HandlerFunc(ms.fallback)

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		ms.mu.Lock()
		ms.requests = append(ms.requests, &RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.Query(),
			Header:      r.Header.Clone(),
			Body:        body,
			ContentType: r.Header.Get("Content-Type"),
		})
		ms.mu.Unlock()

		ms.router.ServeHTTP(w, r)
	}))

	return ms
}

// BaseURL returns the URL to configure the client with.
func (ms *MockServer) BaseURL() string {
	return ms.URL + APIPrefix
}

func (ms *MockServer) fallback(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	fn := ms.ResponseFunc
	for k, v := range ms.header {
		w.Header()[k] = v
	}
	ms.mu.Unlock()

	if fn == nil {
		WriteError(w, http.StatusNotFound, "not_found", "The requested URL was not found on the server.")
		return
	}
	status, body := fn(r)
	WriteJSON(w, status, body)
}

// Handle registers handler for method and a path below APIPrefix. Path
// variables use gorilla/mux syntax and are read with mux.Vars.
//
//	server.Handle(http.MethodGet, "/datasets/{id}", func(w http.ResponseWriter, r *http.Request) {
//	    difytest.WriteJSON(w, 200, map[string]string{"id": mux.Vars(r)["id"]})
//	})
func (ms *MockServer) Handle(method, path string, handler http.HandlerFunc) {
	ms.router.HandleFunc(APIPrefix+path, handler).Methods(method)
}

// HandleJSON registers a route that always answers with status and body.
func (ms *MockServer) HandleJSON(method, path string, status int, body any) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

// HandleStream registers a route that answers with an event stream of the
// given events, each encoded as JSON.
func (ms *MockServer) HandleStream(method, path string, events ...any) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		StreamEvents(w, events...)
	})
}

// WriteJSON writes body as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// WriteError writes a Dify error body.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, map[string]any{
		"code":    code,
		"message": message,
		"status":  status,
	})
}

// StreamEvents writes events as server-sent events, flushing after each.
// String values are written as raw event data.
func StreamEvents(w http.ResponseWriter, events ...any) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	for _, ev := range events {
		var data []byte
		switch v := ev.(type) {
		case string:
			data = []byte(v)
		default:
			data, _ = json.Marshal(v)
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// Requests returns all recorded requests.
func (ms *MockServer) Requests() []*RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*RecordedRequest{}, ms.requests...)
}

// RequestCount returns the number of recorded requests.
func (ms *MockServer) RequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

// Reset clears recorded requests and the fallback response. Registered
// routes are kept.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests = make([]*RecordedRequest, 0)
	ms.ResponseFunc = nil
	ms.header = nil
}

// LastRequest returns the most recent request, or nil if none.
func (ms *MockServer) LastRequest() *RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.requests) == 0 {
		return nil
	}
	return ms.requests[len(ms.requests)-1]
}

// RequestAt returns the request at the given index, or nil if out of bounds.
func (ms *MockServer) RequestAt(index int) *RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if index < 0 || index >= len(ms.requests) {
		return nil
	}
	return ms.requests[index]
}

// SetResponseFunc sets the response function for unrouted requests.
func (ms *MockServer) SetResponseFunc(fn func(r *http.Request) (int, any)) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.ResponseFunc = fn
	ms.header = nil
}

// Response scenarios

// RespondWith configures unrouted requests to get a custom status and body.
func (ms *MockServer) RespondWith(statusCode int, body any) {
	ms.SetResponseFunc(func(r *http.Request) (int, any) {
		return statusCode, body
	})
}

// RespondWithSuccess configures unrouted requests to get {"result":"success"}.
func (ms *MockServer) RespondWithSuccess() {
	ms.RespondWith(http.StatusOK, map[string]string{"result": "success"})
}

// RespondWithError configures unrouted requests to get a Dify error.
func (ms *MockServer) RespondWithError(statusCode int, code, message string) {
	ms.RespondWith(statusCode, map[string]any{
		"code":    code,
		"message": message,
		"status":  statusCode,
	})
}

// RespondWithRateLimit configures unrouted requests to get a 429 with a
// Retry-After header.
func (ms *MockServer) RespondWithRateLimit(retryAfter int) {
	ms.RespondWithError(http.StatusTooManyRequests, "too_many_requests", "Rate limit exceeded.")
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.header = http.Header{"Retry-After": {strconv.Itoa(retryAfter)}}
}

// RespondWithUnauthorized configures unrouted requests to get a 401.
func (ms *MockServer) RespondWithUnauthorized() {
	ms.RespondWithError(http.StatusUnauthorized, "unauthorized",
		"Access token is invalid")
}

// RespondWithServerError configures unrouted requests to get a 500.
func (ms *MockServer) RespondWithServerError() {
	ms.RespondWithError(http.StatusInternalServerError, "internal_server_error",
		"The server encountered an internal error.")
}

// HasRequestWithPath returns true if any request matched the given path.
func (ms *MockServer) HasRequestWithPath(path string) bool {
	return len(ms.RequestsWithPath(path)) > 0
}

// RequestsWithPath returns all requests that matched the given path.
func (ms *MockServer) RequestsWithPath(path string) []*RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	var matched []*RecordedRequest
	for _, req := range ms.requests {
		if req.Path == path {
			matched = append(matched, req)
		}
	}
	return matched
}
