// Package http is the transport layer of the Dify SDK.
//
// It is built around three pieces: an Executor that performs a single HTTP
// exchange (any *http.Client works), a Request builder that normalizes
// headers, cookies, query strings and JSON or multipart bodies, and a
// Response that exposes status, headers, cookies and the body, and turns
// non-2xx replies into *errors.APIError. Server-sent event streams are read
// with EventReader and decoded with Stream.
package http

import (
	"context"
	"net/url"
)

// Doer is the interface API clients use to talk to Dify.
// It decouples the endpoint packages from the root client and allows
// substituting a fake in tests.
type Doer interface {
	// Get performs an HTTP GET request.
	Get(ctx context.Context, path string, query url.Values, result any) error

	// Post performs an HTTP POST request with a JSON body.
	Post(ctx context.Context, path string, body, result any) error

	// Put performs an HTTP PUT request with a JSON body.
	Put(ctx context.Context, path string, body, result any) error

	// Patch performs an HTTP PATCH request with a JSON body.
	Patch(ctx context.Context, path string, body, result any) error

	// Delete performs an HTTP DELETE request. Some Dify endpoints take a
	// JSON body on DELETE; pass nil when there is none.
	Delete(ctx context.Context, path string, body, result any) error

	// Upload performs a multipart/form-data POST.
	Upload(ctx context.Context, path string, form *MultipartForm, result any) error

	// Stream performs a POST that answers with text/event-stream.
	// The caller must close the returned reader.
	Stream(ctx context.Context, path string, body any) (*EventReader, error)

	// Do executes a prebuilt request and decodes the JSON response into result.
	Do(ctx context.Context, req *Request, result any) error

	// Send executes a prebuilt request and returns the open response.
	// Non-2xx responses are returned as errors and already closed.
	// The caller must close a successful response.
	Send(ctx context.Context, req *Request) (*Response, error)
}
