package dify

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// Logger is a printf-style logger such as *log.Logger. The SDK wraps it
// with WrapPrintfLogger; prefer StructuredLogger for leveled output.
type Logger = pkghttp.Logger

// StructuredLogger is the leveled logger the pipeline and hooks write to.
// *slog.Logger satisfies it directly:
//
//	client, _ := dify.New(key, dify.WithStructuredLogger(slog.Default()))
type StructuredLogger = pkghttp.StructuredLogger

// Metrics receives request counters and durations from MetricsHook and
// the hook chain.
type Metrics = pkghttp.Metrics

// Credential masking for logs.
var (
	MaskCredential = pkghttp.MaskCredential
	MaskAuthHeader = pkghttp.MaskAuthHeader
)

// levelPrefixLogger renders leveled entries through a printf logger as
// "[LEVEL] msg | k=v k=v".
type levelPrefixLogger struct {
	out Logger
}

// WrapPrintfLogger adapts a printf-style Logger to StructuredLogger.
func WrapPrintfLogger(l Logger) StructuredLogger {
	return &levelPrefixLogger{out: l}
}

// WrapStdLogger is WrapPrintfLogger for a *log.Logger.
func WrapStdLogger(l *log.Logger) StructuredLogger {
	return &levelPrefixLogger{out: l}
}

func (l *levelPrefixLogger) Debug(msg string, args ...any) { l.emit("DEBUG", msg, args) }
func (l *levelPrefixLogger) Info(msg string, args ...any)  { l.emit("INFO", msg, args) }
func (l *levelPrefixLogger) Warn(msg string, args ...any)  { l.emit("WARN", msg, args) }
func (l *levelPrefixLogger) Error(msg string, args ...any) { l.emit("ERROR", msg, args) }

func (l *levelPrefixLogger) emit(level, msg string, args []any) {
	var b strings.Builder
	b.WriteString("[" + level + "] " + msg)
	// A trailing key without a value is dropped.
	for i := 0; i+1 < len(args); i += 2 {
		if i == 0 {
			b.WriteString(" |")
		}
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	l.out.Printf("%s", b.String())
}

// NopLogger discards everything. It satisfies both Logger and
// StructuredLogger.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
func (NopLogger) Debug(string, ...any)  {}
func (NopLogger) Info(string, ...any)   {}
func (NopLogger) Warn(string, ...any)   {}
func (NopLogger) Error(string, ...any)  {}

var (
	_ Logger           = NopLogger{}
	_ StructuredLogger = NopLogger{}
	_ StructuredLogger = (*levelPrefixLogger)(nil)
)

// resolveLogger picks the structured logger the pipeline and hooks write
// to: StructuredLogger first, then a wrapped Logger, else NopLogger.
func resolveLogger(cfg *Config) StructuredLogger {
	switch {
	case cfg.StructuredLogger != nil:
		return cfg.StructuredLogger
	case cfg.Logger != nil:
		return WrapPrintfLogger(cfg.Logger)
	default:
		return NopLogger{}
	}
}

// SlogAdapter is a *slog.Logger that also satisfies Logger, so one value
// can be passed to both WithLogger and WithStructuredLogger.
//
//	logger := dify.NewSlogAdapter(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
//	client, _ := dify.New(key, dify.WithStructuredLogger(logger.With("app", "support-bot")))
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when it is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{Logger: logger}
}

// Printf logs the formatted message at Info level.
func (a *SlogAdapter) Printf(format string, v ...any) {
	a.Info(fmt.Sprintf(format, v...))
}

// With returns an adapter that adds args to every entry.
func (a *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{Logger: a.Logger.With(args...)}
}

// WithGroup returns an adapter that nests attributes under name.
func (a *SlogAdapter) WithGroup(name string) *SlogAdapter {
	return &SlogAdapter{Logger: a.Logger.WithGroup(name)}
}
