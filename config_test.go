package dify

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfigApplyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected Config
	}{
		{
			name:   "empty config gets defaults",
			config: Config{},
			expected: Config{
				BaseURL:   DefaultBaseURL,
				Timeout:   DefaultTimeout,
				UserAgent: UserAgent,
				Transport: TransportConfig{
					MaxIdleConns:        DefaultMaxIdleConns,
					MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
					IdleConnTimeout:     DefaultIdleConnTimeout,
				},
			},
		},
		{
			name: "custom values are preserved",
			config: Config{
				BaseURL:   "http://localhost/v1",
				Timeout:   2 * time.Minute,
				UserAgent: "my-app/1.0",
				Transport: TransportConfig{
					MaxIdleConns:        10,
					MaxIdleConnsPerHost: 5,
					IdleConnTimeout:     time.Second,
				},
			},
			expected: Config{
				BaseURL:   "http://localhost/v1",
				Timeout:   2 * time.Minute,
				UserAgent: "my-app/1.0",
				Transport: TransportConfig{
					MaxIdleConns:        10,
					MaxIdleConnsPerHost: 5,
					IdleConnTimeout:     time.Second,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			cfg.applyDefaults()

			if cfg.BaseURL != tt.expected.BaseURL {
				t.Errorf("BaseURL = %v, want %v", cfg.BaseURL, tt.expected.BaseURL)
			}
			if cfg.Timeout != tt.expected.Timeout {
				t.Errorf("Timeout = %v, want %v", cfg.Timeout, tt.expected.Timeout)
			}
			if cfg.UserAgent != tt.expected.UserAgent {
				t.Errorf("UserAgent = %v, want %v", cfg.UserAgent, tt.expected.UserAgent)
			}
			if cfg.Transport != tt.expected.Transport {
				t.Errorf("Transport = %+v, want %+v", cfg.Transport, tt.expected.Transport)
			}
			if cfg.RequestIDFunc == nil {
				t.Error("RequestIDFunc should be set")
			}
		})
	}
}

func TestConfigApplyDefaults_DebugLogger(t *testing.T) {
	cfg := Config{Debug: true}
	cfg.applyDefaults()
	if cfg.Logger == nil {
		t.Error("debug mode should install a default logger")
	}

	custom := &captureLogger{}
	cfg = Config{Debug: true, Logger: custom}
	cfg.applyDefaults()
	if cfg.Logger != custom {
		t.Error("debug mode replaced a configured logger")
	}

	cfg = Config{Debug: true, StructuredLogger: NopLogger{}}
	cfg.applyDefaults()
	if cfg.Logger != nil {
		t.Error("debug mode should log through the configured structured logger")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "valid app key",
			config: Config{APIKey: "app-1234567890", BaseURL: DefaultBaseURL},
		},
		{
			name:   "dataset key only",
			config: Config{DatasetAPIKey: "dataset-1234567890", BaseURL: DefaultBaseURL},
		},
		{
			name:    "missing keys",
			config:  Config{BaseURL: DefaultBaseURL},
			wantErr: "API key is required",
		},
		{
			name:    "short key",
			config:  Config{APIKey: "app-1", BaseURL: DefaultBaseURL},
			wantErr: "too short",
		},
		{
			name:    "bad scheme",
			config:  Config{APIKey: "app-1234567890", BaseURL: "ftp://dify.example.com/v1"},
			wantErr: "http or https",
		},
		{
			name:    "no host",
			config:  Config{APIKey: "app-1234567890", BaseURL: "http:///v1"},
			wantErr: "no host",
		},
		{
			name:    "timeout too large",
			config:  Config{APIKey: "app-1234567890", BaseURL: DefaultBaseURL, Timeout: MaxTimeout + time.Second},
			wantErr: "timeout cannot exceed",
		},
		{
			name: "negative idle conns",
			config: Config{APIKey: "app-1234567890", BaseURL: DefaultBaseURL,
				Transport: TransportConfig{MaxIdleConns: -1}},
			wantErr: "cannot be negative",
		},
		{
			name: "per host exceeds total",
			config: Config{APIKey: "app-1234567890", BaseURL: DefaultBaseURL,
				Transport: TransportConfig{MaxIdleConns: 5, MaxIdleConnsPerHost: 10}},
			wantErr: "cannot exceed total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigKeys(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantApp     string
		wantDataset string
	}{
		{"app only", Config{APIKey: "app-a"}, "app-a", "app-a"},
		{"dataset only", Config{DatasetAPIKey: "dataset-d"}, "dataset-d", "dataset-d"},
		{"both", Config{APIKey: "app-a", DatasetAPIKey: "dataset-d"}, "app-a", "dataset-d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.appKey(); got != tt.wantApp {
				t.Errorf("appKey() = %v, want %v", got, tt.wantApp)
			}
			if got := tt.config.datasetKey(); got != tt.wantDataset {
				t.Errorf("datasetKey() = %v, want %v", got, tt.wantDataset)
			}
		})
	}
}

func TestConfigString_MasksKeys(t *testing.T) {
	cfg := Config{APIKey: "app-1234567890abcdef", DatasetAPIKey: "dataset-abcd1234efgh5678"}
	s := cfg.String()
	if strings.Contains(s, "1234567890abcdef") || strings.Contains(s, "abcd1234efgh5678") {
		t.Errorf("String() leaks keys: %s", s)
	}
	if !strings.Contains(s, "cdef") || !strings.Contains(s, "5678") {
		t.Errorf("String() = %s, want key suffixes", s)
	}
}

func TestConfigOptions(t *testing.T) {
	hc := &http.Client{}
	cfg := &Config{}
	opts := []ConfigOption{
		WithBaseURL("http://localhost/v1"),
		WithDatasetAPIKey("dataset-key-123"),
		WithUser("alice"),
		WithHTTPClient(hc),
		WithTimeout(time.Minute),
		WithMaxIdleConns(20),
		WithMaxIdleConnsPerHost(4),
		WithIdleConnTimeout(time.Second),
		WithDisableKeepAlives(true),
		WithProxy("http://proxy:3128"),
		WithHeader("X-A", "1"),
		WithHeaders(map[string]string{"X-B": "2"}),
		WithCookie(&http.Cookie{Name: "sid", Value: "s"}),
		WithUserAgent("ua/1"),
		WithDebug(true),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.BaseURL != "http://localhost/v1" {
		t.Errorf("BaseURL = %v", cfg.BaseURL)
	}
	if cfg.DatasetAPIKey != "dataset-key-123" {
		t.Errorf("DatasetAPIKey = %v", cfg.DatasetAPIKey)
	}
	if cfg.User != "alice" {
		t.Errorf("User = %v", cfg.User)
	}
	if cfg.Executor != hc {
		t.Error("WithHTTPClient did not set the executor")
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	want := TransportConfig{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     time.Second,
		DisableKeepAlives:   true,
		Proxy:               "http://proxy:3128",
	}
	if cfg.Transport != want {
		t.Errorf("Transport = %+v, want %+v", cfg.Transport, want)
	}
	if cfg.Headers["X-A"] != "1" || cfg.Headers["X-B"] != "2" {
		t.Errorf("Headers = %v", cfg.Headers)
	}
	if len(cfg.Cookies) != 1 || cfg.Cookies[0].Name != "sid" {
		t.Errorf("Cookies = %v", cfg.Cookies)
	}
	if cfg.UserAgent != "ua/1" || !cfg.Debug {
		t.Errorf("UserAgent = %v, Debug = %v", cfg.UserAgent, cfg.Debug)
	}
}

func TestConfigPresets(t *testing.T) {
	if cfg := DefaultConfig("app-1234567890"); cfg.BaseURL != DefaultBaseURL {
		t.Errorf("DefaultConfig BaseURL = %v", cfg.BaseURL)
	}
	if cfg := SelfHostedConfig("app-1234567890", "http://dify.lan/v1"); cfg.BaseURL != "http://dify.lan/v1" {
		t.Errorf("SelfHostedConfig BaseURL = %v", cfg.BaseURL)
	}
	cfg := DevelopmentConfig("app-1234567890")
	if !cfg.Debug || !cfg.Transport.DisableKeepAlives {
		t.Errorf("DevelopmentConfig = %+v", cfg)
	}
	if _, err := NewWithConfig(cfg); err != nil {
		t.Errorf("NewWithConfig(DevelopmentConfig) error = %v", err)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvDatasetAPIKey, "")
	if _, err := NewFromEnv(); err == nil {
		t.Error("NewFromEnv() without keys should fail")
	}

	t.Setenv(EnvAPIKey, "app-from-env-123")
	t.Setenv(EnvDatasetAPIKey, "dataset-from-env-123")
	t.Setenv(EnvBaseURL, "http://env.example.com/v1")
	t.Setenv(EnvTimeout, "45s")
	t.Setenv(EnvUser, "env-user")

	client, err := NewFromEnv(WithTimeout(time.Minute))
	if err != nil {
		t.Fatalf("NewFromEnv() error = %v", err)
	}
	cfg := client.Config()
	if cfg.APIKey != "app-from-env-123" || cfg.DatasetAPIKey != "dataset-from-env-123" {
		t.Errorf("keys = %q, %q", cfg.APIKey, cfg.DatasetAPIKey)
	}
	if cfg.BaseURL != "http://env.example.com/v1" {
		t.Errorf("BaseURL = %v", cfg.BaseURL)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %v, want explicit option to win", cfg.Timeout)
	}
	if client.User() != "env-user" {
		t.Errorf("User() = %v", client.User())
	}
}

func TestNewFromFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvDatasetAPIKey, "")
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvUser, "")
	t.Setenv("TEST_DIFY_KEY", "app-file-key-123")

	path := filepath.Join(t.TempDir(), "dify.yaml")
	content := `api_key: ${TEST_DIFY_KEY}
base_url: http://file.example.com/v1
timeout: 30s
user: file-user
headers:
  X-Tenant: acme
transport:
  max_idle_conns: 50
  max_idle_conns_per_host: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	client, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile() error = %v", err)
	}
	cfg := client.Config()
	if cfg.APIKey != "app-file-key-123" {
		t.Errorf("APIKey = %v", cfg.APIKey)
	}
	if cfg.BaseURL != "http://file.example.com/v1" || cfg.Timeout != 30*time.Second {
		t.Errorf("BaseURL = %v, Timeout = %v", cfg.BaseURL, cfg.Timeout)
	}
	if cfg.Headers["X-Tenant"] != "acme" {
		t.Errorf("Headers = %v", cfg.Headers)
	}
	if cfg.Transport.MaxIdleConns != 50 || cfg.Transport.MaxIdleConnsPerHost != 5 {
		t.Errorf("Transport = %+v", cfg.Transport)
	}
	if client.User() != "file-user" {
		t.Errorf("User() = %v", client.User())
	}

	if _, err := NewFromFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}
