package dify

import (
	"bytes"
	"log"
	"log/slog"
	"strings"
	"testing"
)

func TestMaskCredential(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", "****"},
		{"short", "****hort"},
		{"app-1234567890abcdef", "app-************cdef"},
		{"dataset-abcd1234efgh5678", "dataset-************5678"},
		{"nohyphenkey12345", "************2345"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MaskCredential(tt.input); got != tt.want {
				t.Errorf("MaskCredential(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaskAuthHeader(t *testing.T) {
	if got := MaskAuthHeader("Bearer app-1234567890abcdef"); got != "Bearer app-************cdef" {
		t.Errorf("MaskAuthHeader() = %q", got)
	}
	if got := MaskAuthHeader("Basic dXNlcjpwYXNz"); got != "********" {
		t.Errorf("MaskAuthHeader(basic) = %q", got)
	}
}

func TestWrapStdLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := WrapStdLogger(log.New(&buf, "", 0))

	logger.Info("request completed", "status", 200, "path", "/info")
	logger.Error("dangling", "key")

	out := buf.String()
	if !strings.Contains(out, "[INFO] request completed | status=200 path=/info") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "[ERROR] dangling\n") {
		t.Errorf("dangling key should be dropped, output = %q", out)
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(base).With("component", "sdk").WithGroup("req")

	adapter.Debug("sent", "id", "r1")
	adapter.Printf("status %d", 200)

	out := buf.String()
	if !strings.Contains(out, "component=sdk") || !strings.Contains(out, "req.id=r1") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, `msg="status 200"`) {
		t.Errorf("Printf output = %q", out)
	}

	if NewSlogAdapter(nil) == nil {
		t.Error("NewSlogAdapter(nil) should fall back to slog.Default")
	}
}

func TestResolveLogger(t *testing.T) {
	structured := NewSlogAdapter(nil)
	if got := resolveLogger(&Config{StructuredLogger: structured, Logger: NopLogger{}}); got != structured {
		t.Error("StructuredLogger should take precedence")
	}
	if _, ok := resolveLogger(&Config{Logger: &captureLogger{}}).(*levelPrefixLogger); !ok {
		t.Error("printf logger should be wrapped")
	}
	if _, ok := resolveLogger(&Config{}).(NopLogger); !ok {
		t.Error("default should be NopLogger")
	}
}
