package dify

import (
	"net/http"
	"time"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithBaseURL sets the base URL of the Dify API, for example
// "http://localhost/v1" for a self-hosted installation.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithDatasetAPIKey sets the knowledge base API key used by the dataset,
// document, segment, tag and metadata clients.
func WithDatasetAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.DatasetAPIKey = key
	}
}

// WithUser sets the default end-user identifier.
func WithUser(user string) ConfigOption {
	return func(c *Config) {
		c.User = user
	}
}

// WithExecutor sets the HTTP executor.
func WithExecutor(executor pkghttp.Executor) ConfigOption {
	return func(c *Config) {
		c.Executor = executor
	}
}

// WithHTTPClient sets a custom HTTP client as the executor.
// A Timeout on the client also cuts off event streams.
func WithHTTPClient(client *http.Client) ConfigOption {
	return func(c *Config) {
		if client != nil {
			c.Executor = client
		}
	}
}

// WithTimeout sets the deadline of non-streaming requests.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithTransport replaces the connection pool settings of the default
// executor.
func WithTransport(t TransportConfig) ConfigOption {
	return func(c *Config) {
		c.Transport = t
	}
}

// WithMaxIdleConns sets the maximum number of idle connections.
func WithMaxIdleConns(n int) ConfigOption {
	return func(c *Config) {
		c.Transport.MaxIdleConns = n
	}
}

// WithMaxIdleConnsPerHost sets the maximum number of idle connections per host.
func WithMaxIdleConnsPerHost(n int) ConfigOption {
	return func(c *Config) {
		c.Transport.MaxIdleConnsPerHost = n
	}
}

// WithIdleConnTimeout sets the idle connection timeout.
func WithIdleConnTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.Transport.IdleConnTimeout = d
	}
}

// WithDisableKeepAlives turns off HTTP keep-alives.
func WithDisableKeepAlives(disable bool) ConfigOption {
	return func(c *Config) {
		c.Transport.DisableKeepAlives = disable
	}
}

// WithProxy routes requests through an HTTP proxy.
func WithProxy(proxyURL string) ConfigOption {
	return func(c *Config) {
		c.Transport.Proxy = proxyURL
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) ConfigOption {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}
		c.Headers[key] = value
	}
}

// WithHeaders adds headers to every request.
func WithHeaders(headers map[string]string) ConfigOption {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.Headers[k] = v
		}
	}
}

// WithCookie adds a cookie to every request.
func WithCookie(cookie *http.Cookie) ConfigOption {
	return func(c *Config) {
		if cookie != nil {
			c.Cookies = append(c.Cookies, cookie)
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ConfigOption {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithRequestIDFunc sets the generator of X-Request-ID values.
func WithRequestIDFunc(fn func() string) ConfigOption {
	return func(c *Config) {
		c.RequestIDFunc = fn
	}
}

// WithDebug enables debug logging.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithLogger sets a custom logger (printf-style).
//
// Prefer WithStructuredLogger with WrapPrintfLogger:
//
//	client, _ := dify.New(key,
//	    dify.WithStructuredLogger(dify.WrapStdLogger(log.Default())),
//	)
func WithLogger(logger Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStructuredLogger sets a structured logger.
// This takes precedence over Logger set via WithLogger.
//
// Example with slog:
//
//	client, _ := dify.New(key,
//	    dify.WithStructuredLogger(dify.NewSlogAdapter(slog.Default())),
//	)
func WithStructuredLogger(logger StructuredLogger) ConfigOption {
	return func(c *Config) {
		c.StructuredLogger = logger
	}
}

// WithMetrics sets a metrics collector.
func WithMetrics(metrics Metrics) ConfigOption {
	return func(c *Config) {
		c.Metrics = metrics
	}
}

// WithRequestLogging logs every call through the configured logger.
func WithRequestLogging(enabled bool) ConfigOption {
	return func(c *Config) {
		c.LogRequests = enabled
	}
}

// WithHTTPHooks appends hooks called around every HTTP request.
func WithHTTPHooks(hooks ...HTTPHook) ConfigOption {
	return func(c *Config) {
		c.HTTPHooks = append(c.HTTPHooks, hooks...)
	}
}

// WithClassifiedHooks appends priority-aware hooks.
//
// Example:
//
//	client, _ := dify.New(key,
//	    dify.WithClassifiedHooks(
//	        dify.CriticalHeaderHook("tenant", map[string]string{"X-Tenant": "acme"}),
//	        dify.ObservationalLoggingHook(slog.Default()),
//	    ),
//	)
func WithClassifiedHooks(hooks ...ClassifiedHook) ConfigOption {
	return func(c *Config) {
		c.ClassifiedHooks = append(c.ClassifiedHooks, hooks...)
	}
}

// WithFileConfig applies the settings of a loaded configuration file,
// including its API key when set. Options after it override file values.
func WithFileConfig(fc *FileConfig) ConfigOption {
	return func(c *Config) {
		if fc == nil {
			return
		}
		if fc.APIKey != "" {
			c.APIKey = fc.APIKey
		}
		for _, opt := range fileOptions(fc) {
			opt(c)
		}
	}
}
