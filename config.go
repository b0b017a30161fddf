package dify

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	pkgconfig "github.com/jdziat/dify-go/pkg/config"
	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// Default configuration values (re-exported from pkg/config).
const (
	// DefaultBaseURL is the Dify cloud API endpoint.
	DefaultBaseURL = pkgconfig.DefaultBaseURL

	// DefaultTimeout is the default deadline of non-streaming requests.
	DefaultTimeout = pkgconfig.DefaultTimeout

	// DefaultMaxIdleConns is the default maximum number of idle connections.
	DefaultMaxIdleConns = pkgconfig.DefaultMaxIdleConns

	// DefaultMaxIdleConnsPerHost is the default maximum idle connections per host.
	DefaultMaxIdleConnsPerHost = pkgconfig.DefaultMaxIdleConnsPerHost

	// DefaultIdleConnTimeout is the default timeout for idle connections.
	DefaultIdleConnTimeout = pkgconfig.DefaultIdleConnTimeout

	// DefaultUser is the end-user identifier used when none is configured.
	DefaultUser = pkgconfig.DefaultUser

	// MaxTimeout is the maximum allowed request timeout.
	MaxTimeout = pkgconfig.MaxTimeout

	// MinKeyLength is the minimum length for API keys.
	MinKeyLength = pkgconfig.MinKeyLength
)

// TransportConfig holds the connection pool knobs of the default executor.
type TransportConfig = pkgconfig.TransportConfig

// FileConfig is the YAML form of client settings read by NewFromFile.
type FileConfig = pkgconfig.FileConfig

// Config holds the configuration for the Dify client.
type Config struct {
	// APIKey is the app API key ("app-..."). Either APIKey or
	// DatasetAPIKey is required.
	APIKey string

	// DatasetAPIKey is the knowledge base API key ("dataset-..."). When set,
	// the knowledge clients use it instead of APIKey.
	DatasetAPIKey string

	// BaseURL is the base URL of the Dify API, including the /v1 suffix.
	// Defaults to DefaultBaseURL.
	BaseURL string

	// User is the default end-user identifier for tools built on the SDK.
	// Request DTOs always carry their own user field.
	User string

	// Executor performs HTTP exchanges. If nil, an *http.Client built from
	// Transport is used.
	Executor pkghttp.Executor

	// Timeout bounds each non-streaming request through its context.
	// Streams are bounded only by the caller's context.
	// Defaults to 100 seconds. A negative value disables the deadline.
	Timeout time.Duration

	// Transport configures the default executor. It is ignored when
	// Executor is set.
	Transport TransportConfig

	// Headers are added to every request.
	Headers map[string]string

	// Cookies are added to every request.
	Cookies []*http.Cookie

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// RequestIDFunc generates X-Request-ID values. Defaults to UUIDv4.
	RequestIDFunc func() string

	// Debug enables debug logging of requests and responses with
	// credentials masked.
	Debug bool

	// Logger is used for SDK logging (printf-style).
	// If nil, logging is disabled unless Debug is true.
	Logger Logger

	// StructuredLogger is used for structured SDK logging.
	// If set, this takes precedence over Logger.
	StructuredLogger StructuredLogger

	// Metrics receives request counters and durations.
	Metrics Metrics

	// LogRequests logs one entry per call (method, path, status,
	// request ID, Dify error code) at Info or Warn level.
	LogRequests bool

	// HTTPHooks are called before and after each HTTP request.
	HTTPHooks []HTTPHook

	// ClassifiedHooks are priority-aware HTTP hooks. Critical hooks abort
	// the request on error; observational hooks only log. They run after
	// HTTPHooks, which are treated as critical.
	ClassifiedHooks []ClassifiedHook
}

// String returns a string representation of the config with masked
// credentials. This is safe to use in logs and debug output.
func (c *Config) String() string {
	return fmt.Sprintf("Config{APIKey: %q, DatasetAPIKey: %q, BaseURL: %q, Timeout: %v, Debug: %v}",
		MaskCredential(c.APIKey),
		MaskCredential(c.DatasetAPIKey),
		c.BaseURL,
		c.Timeout,
		c.Debug,
	)
}

// applyDefaults sets default values for unset configuration options.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	if c.Transport.MaxIdleConns == 0 {
		c.Transport.MaxIdleConns = DefaultMaxIdleConns
	}

	if c.Transport.MaxIdleConnsPerHost == 0 {
		c.Transport.MaxIdleConnsPerHost = DefaultMaxIdleConnsPerHost
	}

	if c.Transport.IdleConnTimeout == 0 {
		c.Transport.IdleConnTimeout = DefaultIdleConnTimeout
	}

	if c.UserAgent == "" {
		c.UserAgent = UserAgent
	}

	if c.RequestIDFunc == nil {
		c.RequestIDFunc = newRequestID
	}

	// Set default logger if debug is enabled and no logger is set
	if c.Debug && c.Logger == nil && c.StructuredLogger == nil {
		c.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
}

// validate checks that the configuration is valid.
func (c *Config) validate() error {
	if c.APIKey == "" && c.DatasetAPIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}

	for _, key := range []string{c.APIKey, c.DatasetAPIKey} {
		if key != "" && len(key) < MinKeyLength {
			return fmt.Errorf("dify: API key is too short (minimum %d characters)", MinKeyLength)
		}
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("dify: invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("dify: base URL must use http or https, got %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("dify: base URL has no host: %q", c.BaseURL)
	}

	if c.Timeout > MaxTimeout {
		return fmt.Errorf("dify: timeout cannot exceed %v", MaxTimeout)
	}

	if c.Transport.MaxIdleConns < 0 || c.Transport.MaxIdleConnsPerHost < 0 {
		return fmt.Errorf("dify: idle connection limits cannot be negative")
	}
	if c.Transport.MaxIdleConnsPerHost > c.Transport.MaxIdleConns {
		return fmt.Errorf("dify: max idle connections per host (%d) cannot exceed total max idle connections (%d)",
			c.Transport.MaxIdleConnsPerHost, c.Transport.MaxIdleConns)
	}

	return nil
}

// appKey returns the key used by app endpoints.
func (c *Config) appKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return c.DatasetAPIKey
}

// datasetKey returns the key used by knowledge endpoints.
func (c *Config) datasetKey() string {
	if c.DatasetAPIKey != "" {
		return c.DatasetAPIKey
	}
	return c.APIKey
}

// DefaultConfig returns a configuration for the Dify cloud service.
//
// Example:
//
//	cfg := dify.DefaultConfig("app-xxx")
//	client, err := dify.NewWithConfig(cfg)
func DefaultConfig(apiKey string) *Config {
	return &Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
	}
}

// SelfHostedConfig returns a configuration for a self-hosted Dify
// installation at baseURL (for example "http://localhost/v1").
func SelfHostedConfig(apiKey, baseURL string) *Config {
	return &Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
	}
}

// DevelopmentConfig returns a configuration suitable for development
// against a local Dify with debug logging enabled and keep-alives disabled.
//
// Example:
//
//	cfg := dify.DevelopmentConfig("app-xxx")
//	client, err := dify.NewWithConfig(cfg)
func DevelopmentConfig(apiKey string) *Config {
	return &Config{
		APIKey:    apiKey,
		BaseURL:   "http://localhost/v1",
		Debug:     true,
		Transport: TransportConfig{DisableKeepAlives: true},
	}
}

// fileOptions converts a configuration file into options for New.
func fileOptions(fc *pkgconfig.FileConfig) []ConfigOption {
	opts := make([]ConfigOption, 0, 8)
	if fc.DatasetAPIKey != "" {
		opts = append(opts, WithDatasetAPIKey(fc.DatasetAPIKey))
	}
	if fc.BaseURL != "" {
		opts = append(opts, WithBaseURL(fc.BaseURL))
	}
	if fc.Timeout != 0 {
		opts = append(opts, WithTimeout(fc.Timeout))
	}
	if fc.User != "" {
		opts = append(opts, WithUser(fc.User))
	}
	if fc.Debug {
		opts = append(opts, WithDebug(true))
	}
	if len(fc.Headers) > 0 {
		opts = append(opts, WithHeaders(fc.Headers))
	}
	opts = append(opts, WithTransport(fc.Transport))
	return opts
}
