package dify

import (
	"strconv"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// Hook types re-exported from pkg/http.
type (
	// HTTPHook allows customizing HTTP request/response handling.
	HTTPHook = pkghttp.HTTPHook

	// HTTPHookFunc is a function adapter for simple hooks.
	HTTPHookFunc = pkghttp.HTTPHookFunc

	// HookPriority determines how hook failures are handled.
	HookPriority = pkghttp.HookPriority

	// ClassifiedHook wraps an HTTPHook with priority information.
	ClassifiedHook = pkghttp.ClassifiedHook

	// ClassifiedHookChain runs hooks with priority-aware error handling.
	ClassifiedHookChain = pkghttp.ClassifiedHookChain
)

// Hook priorities.
const (
	HookPriorityObservational = pkghttp.HookPriorityObservational
	HookPriorityCritical      = pkghttp.HookPriorityCritical
)

// Hook constructors re-exported from pkg/http.
var (
	NewClassifiedHookChain   = pkghttp.NewClassifiedHookChain
	NewClassifiedHook        = pkghttp.NewClassifiedHook
	CombineHooks             = pkghttp.CombineHooks
	HeaderHook               = pkghttp.HeaderHook
	LoggingHook              = pkghttp.LoggingHook
	MetricsHook              = pkghttp.MetricsHook
	DebugHook                = pkghttp.DebugHook
	ObservationalLoggingHook = pkghttp.ObservationalLoggingHook
	ObservationalMetricsHook = pkghttp.ObservationalMetricsHook
	ObservationalDebugHook   = pkghttp.ObservationalDebugHook
	CriticalHeaderHook       = pkghttp.CriticalHeaderHook
	CriticalValidationHook   = pkghttp.CriticalValidationHook
)

// buildHooks assembles the hook chain for a client: HTTPHooks as critical
// hooks, then ClassifiedHooks, then the observational logging, debug and
// metrics hooks the config enables. All of them log through the resolved
// structured logger.
func buildHooks(cfg *Config) HTTPHook {
	if len(cfg.ClassifiedHooks) == 0 && !cfg.Debug && !cfg.LogRequests && cfg.Metrics == nil {
		return pkghttp.CombineHooks(cfg.HTTPHooks)
	}

	logger := resolveLogger(cfg)
	chain := pkghttp.NewClassifiedHookChain(logger, cfg.Metrics)
	for i, h := range cfg.HTTPHooks {
		chain.Add("hook-"+strconv.Itoa(i), h, HookPriorityCritical)
	}
	for _, h := range cfg.ClassifiedHooks {
		chain.AddClassified(h)
	}
	if cfg.LogRequests {
		chain.AddClassified(ObservationalLoggingHook(logger))
	}
	if cfg.Debug {
		chain.AddClassified(ObservationalDebugHook(logger))
	}
	if cfg.Metrics != nil {
		chain.AddClassified(ObservationalMetricsHook(cfg.Metrics))
	}
	return chain
}
