package http

import (
	"net/http"
	"strings"
	"time"
)

// Logger is a printf-style logger such as *log.Logger.
type Logger interface {
	Printf(format string, v ...any)
}

// StructuredLogger is a leveled key-value logger. *slog.Logger satisfies it.
type StructuredLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Metrics receives request counters and durations.
type Metrics interface {
	IncrementCounter(name string, value int64)
	RecordDuration(name string, duration time.Duration)
}

// MaskCredential hides all but the key type prefix ("app-", "dataset-")
// and the last four characters of a credential.
//
//	MaskCredential("app-1234567890abcdef")     // "app-************cdef"
//	MaskCredential("dataset-abcd1234efgh5678") // "dataset-************5678"
//	MaskCredential("short")                    // "****hort"
func MaskCredential(s string) string {
	const visible = 4
	switch {
	case s == "":
		return ""
	case len(s) <= visible:
		return "****"
	}

	tail := s[len(s)-visible:]
	prefixEnd := strings.IndexByte(s, '-') + 1
	if prefixEnd > 0 && prefixEnd+visible < len(s) {
		return s[:prefixEnd] + strings.Repeat("*", len(s)-prefixEnd-visible) + tail
	}
	if len(s) <= 8 {
		return "****" + tail
	}
	return strings.Repeat("*", len(s)-visible) + tail
}

// MaskAuthHeader masks the key in a bearer Authorization value. Any other
// scheme is hidden entirely.
func MaskAuthHeader(header string) string {
	key, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || key == "" {
		return "********"
	}
	return "Bearer " + MaskCredential(key)
}

// maskedHeaders flattens h for logging with credentials masked.
func maskedHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		switch http.CanonicalHeaderKey(k) {
		case "Authorization":
			out[k] = MaskAuthHeader(strings.Join(v, ", "))
		case "Cookie", "Set-Cookie":
			out[k] = "********"
		default:
			out[k] = strings.Join(v, ", ")
		}
	}
	return out
}
