package config

import (
	"time"
)

// Default configuration values.
const (
	// DefaultBaseURL is the Dify cloud service API endpoint.
	DefaultBaseURL = "https://api.dify.ai/v1"

	// DefaultTimeout bounds non-streaming requests. Blocking chat and
	// workflow calls can run for a long time on the server.
	DefaultTimeout = 100 * time.Second

	// DefaultMaxIdleConns is the default maximum number of idle connections.
	DefaultMaxIdleConns = 100

	// DefaultMaxIdleConnsPerHost is the default maximum idle connections per host.
	DefaultMaxIdleConnsPerHost = 10

	// DefaultIdleConnTimeout is the default timeout for idle connections.
	DefaultIdleConnTimeout = 90 * time.Second

	// DefaultUser is sent as the end-user identifier when none is configured.
	DefaultUser = "dify-go"

	// MaxTimeout is the maximum allowed request timeout.
	MaxTimeout = 10 * time.Minute

	// MaxResponseSize limits buffered response bodies.
	MaxResponseSize = 10 * 1024 * 1024

	// MaxRequestBodySize limits encoded JSON request bodies.
	MaxRequestBodySize = 10 * 1024 * 1024

	// MinKeyLength is the minimum length for API keys.
	MinKeyLength = 8

	// AppKeyPrefix is the prefix of application API keys.
	AppKeyPrefix = "app-"

	// DatasetKeyPrefix is the prefix of knowledge base API keys.
	DatasetKeyPrefix = "dataset-"
)

// KeyKind classifies a Dify API key by its prefix.
type KeyKind string

const (
	KeyKindApp     KeyKind = "app"
	KeyKindDataset KeyKind = "dataset"
	KeyKindUnknown KeyKind = "unknown"
)

// KindOf returns the kind of the given API key.
func KindOf(apiKey string) KeyKind {
	switch {
	case len(apiKey) > len(AppKeyPrefix) && apiKey[:len(AppKeyPrefix)] == AppKeyPrefix:
		return KeyKindApp
	case len(apiKey) > len(DatasetKeyPrefix) && apiKey[:len(DatasetKeyPrefix)] == DatasetKeyPrefix:
		return KeyKindDataset
	default:
		return KeyKindUnknown
	}
}
