package dify

import (
	"context"

	"github.com/jdziat/dify-go/pkg/id"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	apiKeyKey
)

// WithRequestID returns a context whose requests carry id as X-Request-ID
// instead of a generated one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID set with WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithAPIKey returns a context whose requests authenticate with key
// instead of the client's configured key. It lets one client serve
// several Dify apps.
func WithAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, apiKeyKey, key)
}

// APIKeyFromContext returns the key set with WithAPIKey.
func APIKeyFromContext(ctx context.Context) string {
	key, _ := ctx.Value(apiKeyKey).(string)
	return key
}

func newRequestID() string {
	return id.New()
}
