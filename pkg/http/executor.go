package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/jdziat/dify-go/pkg/config"
)

// Executor performs a single HTTP exchange. *http.Client satisfies it, as
// does any wrapper around one (tracing, recording, fakes).
type Executor interface {
	Do(req *http.Request) (*http.Response, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(req *http.Request) (*http.Response, error)

// Do implements Executor.
func (f ExecutorFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

var _ Executor = (*http.Client)(nil)

// NewTransport builds an *http.Transport from pool settings.
// Zero values fall back to the SDK defaults.
func NewTransport(cfg config.TransportConfig) (*http.Transport, error) {
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = config.DefaultMaxIdleConns
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = config.DefaultMaxIdleConnsPerHost
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = config.DefaultIdleConnTimeout
	}

	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = cfg.MaxIdleConns
	t.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	t.IdleConnTimeout = cfg.IdleConnTimeout
	t.DisableKeepAlives = cfg.DisableKeepAlives

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("dify: invalid proxy URL: %w", err)
		}
		t.Proxy = http.ProxyURL(proxyURL)
	}
	return t, nil
}

// NewExecutor returns an *http.Client over NewTransport.
//
// The client has no overall timeout: it would cut off event streams.
// Request deadlines are applied per call through the context instead.
func NewExecutor(cfg config.TransportConfig) (*http.Client, error) {
	t, err := NewTransport(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Client{Transport: t}, nil
}
