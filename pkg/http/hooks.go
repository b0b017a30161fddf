package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// HTTPHook observes or modifies every call the pipeline sends.
//
// BeforeRequest runs after the SDK has set its own headers (auth,
// User-Agent, X-Request-ID) and may add more or abort the call by
// returning an error. AfterResponse runs once the executor returns, before
// the body is read; resp is nil when err is set.
type HTTPHook interface {
	BeforeRequest(ctx context.Context, req *http.Request) error
	AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// HTTPHookFunc builds a hook from optional functions.
type HTTPHookFunc struct {
	Before func(ctx context.Context, req *http.Request) error
	After  func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// BeforeRequest implements HTTPHook.
func (f HTTPHookFunc) BeforeRequest(ctx context.Context, req *http.Request) error {
	if f.Before == nil {
		return nil
	}
	return f.Before(ctx, req)
}

// AfterResponse implements HTTPHook.
func (f HTTPHookFunc) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	if f.After != nil {
		f.After(ctx, req, resp, duration, err)
	}
}

type hookList []HTTPHook

func (l hookList) BeforeRequest(ctx context.Context, req *http.Request) error {
	for _, h := range l {
		if err := h.BeforeRequest(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// AfterResponse unwinds in reverse so the first hook sees the call last.
func (l hookList) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	for i := len(l) - 1; i >= 0; i-- {
		l[i].AfterResponse(ctx, req, resp, duration, err)
	}
}

// CombineHooks runs hooks in order. It returns nil for no hooks and the
// hook itself for one.
func CombineHooks(hooks []HTTPHook) HTTPHook {
	switch len(hooks) {
	case 0:
		return nil
	case 1:
		return hooks[0]
	}
	return hookList(hooks)
}

// HookPriority decides what a hook failure does to the call.
type HookPriority int

const (
	// HookPriorityObservational hooks (logging, metrics, tracing) are
	// logged and skipped when they fail.
	HookPriorityObservational HookPriority = iota
	// HookPriorityCritical hooks (tenant headers, request checks) abort
	// the call when they fail.
	HookPriorityCritical
)

func (p HookPriority) String() string {
	switch p {
	case HookPriorityObservational:
		return "observational"
	case HookPriorityCritical:
		return "critical"
	}
	return "unknown"
}

// ClassifiedHook is a named hook with a priority.
type ClassifiedHook struct {
	Name     string
	Hook     HTTPHook
	Priority HookPriority
}

// NewClassifiedHook names hook and assigns its priority.
func NewClassifiedHook(name string, hook HTTPHook, priority HookPriority) ClassifiedHook {
	return ClassifiedHook{Name: name, Hook: hook, Priority: priority}
}

// ClassifiedHookChain runs classified hooks in order. Panics in any hook
// are recovered and counted; only critical BeforeRequest failures reach
// the caller.
//
// Counters: dify.hooks.failures, dify.hooks.failures.<name>,
// dify.hooks.panics.
type ClassifiedHookChain struct {
	hooks   []ClassifiedHook
	logger  StructuredLogger
	metrics Metrics
}

// NewClassifiedHookChain creates an empty chain. logger and metrics may
// be nil.
func NewClassifiedHookChain(logger StructuredLogger, metrics Metrics) *ClassifiedHookChain {
	return &ClassifiedHookChain{logger: logger, metrics: metrics}
}

// Add appends hook under name.
func (c *ClassifiedHookChain) Add(name string, hook HTTPHook, priority HookPriority) {
	c.hooks = append(c.hooks, NewClassifiedHook(name, hook, priority))
}

// AddClassified appends a classified hook.
func (c *ClassifiedHookChain) AddClassified(ch ClassifiedHook) {
	c.hooks = append(c.hooks, ch)
}

// Len returns the number of hooks.
func (c *ClassifiedHookChain) Len() int { return len(c.hooks) }

// BeforeRequest implements HTTPHook.
func (c *ClassifiedHookChain) BeforeRequest(ctx context.Context, req *http.Request) error {
	for _, ch := range c.hooks {
		if err := c.before(ctx, req, ch); err != nil {
			return err
		}
	}
	return nil
}

func (c *ClassifiedHookChain) before(ctx context.Context, req *http.Request, ch ClassifiedHook) error {
	defer c.recoverHook(req, ch, "BeforeRequest")

	err := ch.Hook.BeforeRequest(ctx, req)
	if err == nil {
		return nil
	}
	c.count("dify.hooks.failures")
	c.count("dify.hooks.failures." + ch.Name)

	if ch.Priority == HookPriorityObservational {
		c.warn("dify: hook failed, continuing", req, ch, "error", err)
		return nil
	}
	return fmt.Errorf("dify: %s hook %q failed: %w", ch.Priority, ch.Name, err)
}

// AfterResponse implements HTTPHook. Hooks run in reverse order.
func (c *ClassifiedHookChain) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	for i := len(c.hooks) - 1; i >= 0; i-- {
		c.after(ctx, req, resp, duration, err, c.hooks[i])
	}
}

func (c *ClassifiedHookChain) after(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error, ch ClassifiedHook) {
	defer c.recoverHook(req, ch, "AfterResponse")
	ch.Hook.AfterResponse(ctx, req, resp, duration, err)
}

func (c *ClassifiedHookChain) recoverHook(req *http.Request, ch ClassifiedHook, phase string) {
	if r := recover(); r != nil {
		c.count("dify.hooks.panics")
		c.warn("dify: hook panicked", req, ch, "phase", phase, "panic", r)
	}
}

func (c *ClassifiedHookChain) warn(msg string, req *http.Request, ch ClassifiedHook, args ...any) {
	if c.logger == nil {
		return
	}
	attrs := []any{"hook", ch.Name, "priority", ch.Priority.String(), "request_id", req.Header.Get("X-Request-ID")}
	c.logger.Warn(msg, append(attrs, args...)...)
}

func (c *ClassifiedHookChain) count(name string) {
	if c.metrics != nil {
		c.metrics.IncrementCounter(name, 1)
	}
}

// HeaderHook sets fixed headers on every call, overriding SDK defaults.
func HeaderHook(headers map[string]string) HTTPHook {
	return HTTPHookFunc{
		Before: func(ctx context.Context, req *http.Request) error {
			for k, v := range headers {
				req.Header.Set(k, v)
			}
			return nil
		},
	}
}

// LoggingHook writes one entry per call: Info on success, Warn with the
// Dify error code on an API error and Warn on a transport failure.
func LoggingHook(logger StructuredLogger) HTTPHook {
	return HTTPHookFunc{
		After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
			attrs := callAttrs(req, resp, duration)
			switch {
			case err != nil || resp == nil:
				logger.Warn("dify: request failed", append(attrs, "error", err)...)
			case resp.StatusCode >= 400:
				logger.Warn("dify: api error", append(attrs, "dify_code", ErrorCodeOf(resp))...)
			default:
				logger.Info("dify: request completed", attrs...)
			}
		},
	}
}

// MetricsHook records, per call:
//   - dify.http.requests and dify.http.duration
//   - dify.http.errors on transport failure
//   - dify.http.status.<code>
//   - dify.http.streams for event-stream replies
//   - dify.api.errors.<dify code> for API errors that carry one
func MetricsHook(m Metrics) HTTPHook {
	if m == nil {
		return HTTPHookFunc{}
	}
	return HTTPHookFunc{
		After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
			m.IncrementCounter("dify.http.requests", 1)
			m.RecordDuration("dify.http.duration", duration)
			if err != nil || resp == nil {
				m.IncrementCounter("dify.http.errors", 1)
				return
			}
			m.IncrementCounter("dify.http.status."+strconv.Itoa(resp.StatusCode), 1)
			if isEventStream(resp) {
				m.IncrementCounter("dify.http.streams", 1)
			}
			if resp.StatusCode >= 400 {
				if code := ErrorCodeOf(resp); code != "" {
					m.IncrementCounter("dify.api.errors."+code, 1)
				}
			}
		},
	}
}

// DebugHook logs every call at Debug level with full URL and headers.
// Credentials are masked with MaskAuthHeader.
func DebugHook(logger StructuredLogger) HTTPHook {
	return HTTPHookFunc{
		Before: func(ctx context.Context, req *http.Request) error {
			logger.Debug("dify: sending request",
				"method", req.Method,
				"url", req.URL.String(),
				"request_id", req.Header.Get("X-Request-ID"),
				"headers", maskedHeaders(req.Header))
			return nil
		},
		After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
			attrs := callAttrs(req, resp, duration)
			if err != nil || resp == nil {
				logger.Debug("dify: request failed", append(attrs, "error", err)...)
				return
			}
			attrs = append(attrs, "headers", maskedHeaders(resp.Header))
			if resp.StatusCode >= 400 {
				attrs = append(attrs, "dify_code", ErrorCodeOf(resp))
			}
			logger.Debug("dify: received response", attrs...)
		},
	}
}

// ObservationalLoggingHook is LoggingHook as an observational hook named
// "logging".
func ObservationalLoggingHook(logger StructuredLogger) ClassifiedHook {
	return NewClassifiedHook("logging", LoggingHook(logger), HookPriorityObservational)
}

// ObservationalMetricsHook is MetricsHook as an observational hook named
// "metrics".
func ObservationalMetricsHook(m Metrics) ClassifiedHook {
	return NewClassifiedHook("metrics", MetricsHook(m), HookPriorityObservational)
}

// ObservationalDebugHook is DebugHook as an observational hook named
// "debug".
func ObservationalDebugHook(logger StructuredLogger) ClassifiedHook {
	return NewClassifiedHook("debug", DebugHook(logger), HookPriorityObservational)
}

// CriticalHeaderHook is HeaderHook as a critical hook.
func CriticalHeaderHook(name string, headers map[string]string) ClassifiedHook {
	return NewClassifiedHook(name, HeaderHook(headers), HookPriorityCritical)
}

// CriticalValidationHook rejects calls for which validate returns an error.
func CriticalValidationHook(name string, validate func(*http.Request) error) ClassifiedHook {
	return NewClassifiedHook(name, HTTPHookFunc{
		Before: func(ctx context.Context, req *http.Request) error {
			return validate(req)
		},
	}, HookPriorityCritical)
}

func callAttrs(req *http.Request, resp *http.Response, duration time.Duration) []any {
	attrs := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get("X-Request-ID"),
		"duration", duration,
	}
	if resp != nil {
		attrs = append(attrs, "status", resp.StatusCode)
	}
	return attrs
}

func isEventStream(resp *http.Response) bool {
	return (&Response{raw: resp}).IsEventStream()
}

// maxErrorPeek bounds how much of an error body hooks read ahead.
const maxErrorPeek = 64 << 10

// peekedBody replays the head read by ErrorCodeOf before the rest of the
// original body.
type peekedBody struct {
	io.Reader
	closer io.Closer
	code   string
}

func (b *peekedBody) Close() error { return b.closer.Close() }

// ErrorCodeOf returns the Dify "code" field of an error reply without
// consuming the body: the bytes it reads are replayed to later readers.
// It returns "" when the body is not a Dify error document.
func ErrorCodeOf(resp *http.Response) string {
	if resp == nil || resp.Body == nil {
		return ""
	}
	if pb, ok := resp.Body.(*peekedBody); ok {
		return pb.code
	}

	head, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorPeek))
	var doc struct {
		Code string `json:"code"`
	}
	_ = json.Unmarshal(head, &doc)

	resp.Body = &peekedBody{
		Reader: io.MultiReader(bytes.NewReader(head), resp.Body),
		closer: resp.Body,
		code:   doc.Code,
	}
	return doc.Code
}
